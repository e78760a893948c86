package persistence

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-builder/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-builder/pkg/apperror"
	"github.com/khoahotran/portfolio-builder/pkg/logger"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type postgresSlot struct {
	db     *pgxpool.Pool
	key    string
	logger logger.Logger
	now    func() time.Time
}

func NewPostgresSlot(db *pgxpool.Pool, key string, log logger.Logger) portfolio.Repository {
	return &postgresSlot{db: db, key: key, logger: log, now: time.Now}
}

func (s *postgresSlot) Get(ctx context.Context) ([]byte, error) {
	query, args, err := psql.Select("payload").
		From("portfolio_slots").
		Where(sq.Eq{"slot_key": s.key}).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build slot query", err)
	}

	var payload string
	if err := s.db.QueryRow(ctx, query, args...).Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, portfolio.ErrNoSavedData
		}
		s.logger.Error("Failed to query portfolio slot", err, zap.String("slot_key", s.key))
		return nil, apperror.NewUnavailable("failed to query portfolio slot", err)
	}
	return []byte(payload), nil
}

func (s *postgresSlot) Put(ctx context.Context, data []byte) error {
	query, args, err := psql.Insert("portfolio_slots").
		Columns("slot_key", "payload", "updated_at").
		Values(s.key, string(data), s.now().UTC()).
		Suffix("ON CONFLICT (slot_key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build slot upsert", err)
	}

	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		s.logger.Error("Failed to upsert portfolio slot", err, zap.String("slot_key", s.key))
		return apperror.NewUnavailable("failed to upsert portfolio slot", err)
	}
	return nil
}
