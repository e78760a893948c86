package persistence

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/khoahotran/portfolio-builder/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-builder/pkg/apperror"
	"github.com/khoahotran/portfolio-builder/pkg/logger"
)

type redisSlot struct {
	rdb    redis.UniversalClient
	key    string
	logger logger.Logger
}

// NewRedisSlot stores the record as a plain string value with no expiry.
func NewRedisSlot(rdb redis.UniversalClient, key string, log logger.Logger) portfolio.Repository {
	return &redisSlot{rdb: rdb, key: key, logger: log}
}

func (s *redisSlot) Get(ctx context.Context) ([]byte, error) {
	data, err := s.rdb.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, portfolio.ErrNoSavedData
		}
		return nil, apperror.NewUnavailable("failed to read portfolio from redis", err)
	}
	return data, nil
}

func (s *redisSlot) Put(ctx context.Context, data []byte) error {
	if err := s.rdb.Set(ctx, s.key, data, 0).Err(); err != nil {
		return apperror.NewUnavailable("failed to write portfolio to redis", err)
	}
	return nil
}
