package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-builder/adapters/event"
	httpAdapter "github.com/khoahotran/portfolio-builder/adapters/http"
	"github.com/khoahotran/portfolio-builder/adapters/persistence"
	"github.com/khoahotran/portfolio-builder/internal/application/store"
	"github.com/khoahotran/portfolio-builder/internal/application/wizard"
	"github.com/khoahotran/portfolio-builder/internal/config"
	"github.com/khoahotran/portfolio-builder/internal/render"
	"github.com/khoahotran/portfolio-builder/pkg/idgen"
	"github.com/khoahotran/portfolio-builder/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer func() { _ = appLogger.Sync() }()
	appLogger.Info("Start Portfolio Builder API Server...", zap.String("env", cfg.App.Env))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	slotMetrics, err := persistence.NewSlotMetrics(registry)
	if err != nil {
		appLogger.Fatal("Cannot register slot metrics", err)
	}
	httpMetrics, err := httpAdapter.NewMetrics(registry)
	if err != nil {
		appLogger.Fatal("Cannot register HTTP metrics", err)
	}

	// Storage slot and events
	rawSlot, closeSlot, err := persistence.NewSlot(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot open storage slot", err)
	}
	defer closeSlot()
	slot := slotMetrics.Instrument(rawSlot)

	publisher, closePublisher, err := event.NewPublisher(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot init Kafka", err)
	}
	defer closePublisher()

	// Store: nothing is written before the saved record has been read.
	st := store.New(slot, appLogger, store.WithPublisher(publisher))
	status, err := st.Load(ctx)
	if err != nil {
		appLogger.Fatal("Cannot load saved portfolio", err)
	}
	appLogger.Info("Portfolio loaded", zap.Stringer("status", status))

	ids, err := idgen.New(cfg.IDs.Strategy)
	if err != nil {
		appLogger.Fatal("Invalid id strategy", err)
	}
	controller := wizard.NewController(st, ids, appLogger)

	renderer, err := render.New(time.Now)
	if err != nil {
		appLogger.Fatal("Cannot build page renderer", err)
	}

	// HTTP
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httpAdapter.NewRouter(httpAdapter.Handlers{
		Portfolio: httpAdapter.NewPortfolioHandler(st, controller, appLogger),
		Wizard:    httpAdapter.NewWizardHandler(controller, appLogger),
		Preview:   httpAdapter.NewPreviewHandler(st, renderer, appLogger),
		Metrics:   httpMetrics,
	}, appLogger)

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Cannot run server", err)
			stop()
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}

	// Retry any write that failed during the session.
	if err := st.Save(shutdownCtx); err != nil {
		appLogger.Warn("Final save failed", zap.Error(err))
	}
}
