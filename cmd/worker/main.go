package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-builder/adapters/event"
	"github.com/khoahotran/portfolio-builder/internal/config"
	"github.com/khoahotran/portfolio-builder/pkg/logger"
)

const groupID = "portfolio-audit-group"

// The worker tails the section event topic and writes one audit log line
// per persisted section.
func main() {
	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer func() { _ = appLogger.Sync() }()

	if len(cfg.Kafka.Brokers) == 0 {
		appLogger.Warn("No Kafka brokers configured, nothing to consume")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := event.NewSectionConsumer(cfg.Kafka.Brokers, cfg.Kafka.Topic, groupID, appLogger)
	defer func() {
		if err := consumer.Close(); err != nil {
			appLogger.Warn("Closing Kafka reader failed", zap.Error(err))
		}
	}()

	appLogger.Info("Worker listening", zap.String("topic", cfg.Kafka.Topic), zap.String("group", groupID))

	err = consumer.Run(ctx, func(_ context.Context, evt event.SectionEvent) error {
		appLogger.Info("Section saved",
			zap.String("section", string(evt.Section)),
			zap.Time("saved_at", evt.SavedAt),
			zap.Int("bytes", evt.Bytes),
		)
		return nil
	})
	if err != nil {
		appLogger.Error("Worker stopped", err)
	}
}
