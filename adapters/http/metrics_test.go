package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-builder/internal/application/store"
	"github.com/khoahotran/portfolio-builder/internal/application/wizard"
	"github.com/khoahotran/portfolio-builder/internal/render"
	"github.com/khoahotran/portfolio-builder/pkg/idgen"
	"github.com/khoahotran/portfolio-builder/pkg/logger"
)

func TestMetricsEndpointCountsRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := logger.NewNop()

	st := store.New(&flakySlot{}, log)
	_, err := st.Load(context.Background())
	require.NoError(t, err)
	ctrl := wizard.NewController(st, idgen.NewSequence(""), log)
	renderer, err := render.New(time.Now)
	require.NoError(t, err)

	metrics, err := NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	router := NewRouter(Handlers{
		Portfolio: NewPortfolioHandler(st, ctrl, log),
		Wizard:    NewWizardHandler(ctrl, log),
		Preview:   NewPreviewHandler(st, renderer, log),
		Metrics:   metrics,
	}, log)

	for _, path := range []string{"/api/wizard/projects", "/api/wizard/projects", "/nowhere"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `portfolio_http_requests_total{method="GET",route="/api/wizard/projects",status="200"} 2`)
	assert.Contains(t, body, `portfolio_http_requests_total{method="GET",route="unmatched",status="404"} 1`)
}
