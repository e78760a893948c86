package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/portfolio-builder/internal/application/store"
	"github.com/khoahotran/portfolio-builder/internal/application/wizard"
	"github.com/khoahotran/portfolio-builder/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-builder/pkg/apperror"
	"github.com/khoahotran/portfolio-builder/pkg/logger"
)

type PortfolioHandler struct {
	store  *store.Store
	wizard *wizard.Controller
	logger logger.Logger
}

func NewPortfolioHandler(st *store.Store, c *wizard.Controller, log logger.Logger) *PortfolioHandler {
	return &PortfolioHandler{store: st, wizard: c, logger: log}
}

func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	c.JSON(http.StatusOK, PortfolioDTO{
		Data:    h.store.Record(),
		HasData: h.store.HasData(),
		Status:  h.store.Status().String(),
	})
}

// ReplaceSection overwrites one section with the request body. Editors
// mirroring that section are remounted on their next use.
func (h *PortfolioHandler) ReplaceSection(c *gin.Context) {
	key, err := portfolio.ParseSectionKey(c.Param("section"))
	if err != nil {
		_ = c.Error(apperror.NewNotFound("section", c.Param("section")))
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		_ = c.Error(apperror.NewInvalidInput("cannot read request body", err))
		return
	}
	value, err := portfolio.DecodeSection(key, body)
	if err != nil {
		_ = c.Error(apperror.NewInvalidInput("invalid "+string(key)+" value", err))
		return
	}

	err = h.wizard.ReplaceSection(c.Request.Context(), value)
	respond(c, h.logger, err, http.StatusOK, h.store.Section(key))
}
