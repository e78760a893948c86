package http

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/portfolio-builder/internal/application/store"
	"github.com/khoahotran/portfolio-builder/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-builder/internal/render"
	"github.com/khoahotran/portfolio-builder/pkg/apperror"
	"github.com/khoahotran/portfolio-builder/pkg/logger"
)

type PreviewHandler struct {
	store    *store.Store
	renderer *render.Renderer
	logger   logger.Logger
}

func NewPreviewHandler(st *store.Store, r *render.Renderer, log logger.Logger) *PreviewHandler {
	return &PreviewHandler{store: st, renderer: r, logger: log}
}

// Preview renders the current record, or the sample portfolio when nothing
// has ever been entered.
func (h *PreviewHandler) Preview(c *gin.Context) {
	rec := portfolio.Sample()
	if h.store.HasData() {
		rec = h.store.Record()
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, rec); err != nil {
		_ = c.Error(apperror.NewInternal("failed to render preview", err))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
