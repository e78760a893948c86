package persistence

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-builder/internal/config"
	"github.com/khoahotran/portfolio-builder/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-builder/pkg/logger"
)

// NewSlot opens the storage slot named by cfg.Storage. The returned close
// func releases any connection the slot holds and is never nil.
func NewSlot(ctx context.Context, cfg config.Config, log logger.Logger) (portfolio.Repository, func(), error) {
	key := cfg.Storage.SlotKey
	if key == "" {
		key = portfolio.DefaultSlotKey
	}
	log = log.With(zap.String("driver", cfg.Storage.Driver), zap.String("slot_key", key))

	switch cfg.Storage.Driver {
	case "", config.DriverFile:
		log.Info("Using file storage", zap.String("dir", cfg.Storage.FileDir))
		return NewFileSlot(afero.NewOsFs(), cfg.Storage.FileDir, key, log), func() {}, nil

	case config.DriverMemory:
		log.Warn("Using in-memory storage, data is lost on restart")
		return NewMemorySlot(), func() {}, nil

	case config.DriverRedis:
		rdb, err := NewRedisClient(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		return NewRedisSlot(rdb, key, log), func() { _ = rdb.Close() }, nil

	case config.DriverPostgres:
		pool, err := NewPostgresPool(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		return NewPostgresSlot(pool, key, log), pool.Close, nil

	case config.DriverMongo:
		client, err := NewMongoClient(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() { _ = client.Disconnect(context.Background()) }
		return NewMongoSlot(client.Database(cfg.Mongo.Database), key, log), closeFn, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
