package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-builder/internal/config"
	"github.com/khoahotran/portfolio-builder/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-builder/pkg/apperror"
	"github.com/khoahotran/portfolio-builder/pkg/logger"
)

const mongoSlotCollection = "portfolio_slots"

type slotDocument struct {
	Key       string    `bson:"_id"`
	Payload   string    `bson:"payload"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func NewMongoClient(ctx context.Context, cfg config.Config, log logger.Logger) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("can not connect MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping MongoDB failed: %w", err)
	}

	log.Info("Connect MongoDB successfully.")
	return client, nil
}

type mongoSlot struct {
	coll   *mongo.Collection
	key    string
	logger logger.Logger
	now    func() time.Time
}

// NewMongoSlot keeps the record as one document whose _id is the slot key.
func NewMongoSlot(db *mongo.Database, key string, log logger.Logger) portfolio.Repository {
	return &mongoSlot{coll: db.Collection(mongoSlotCollection), key: key, logger: log, now: time.Now}
}

func (s *mongoSlot) Get(ctx context.Context) ([]byte, error) {
	var doc slotDocument
	if err := s.coll.FindOne(ctx, bson.M{"_id": s.key}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, portfolio.ErrNoSavedData
		}
		s.logger.Error("Failed to find portfolio document", err, zap.String("slot_key", s.key))
		return nil, apperror.NewUnavailable("failed to read portfolio from mongo", err)
	}
	return []byte(doc.Payload), nil
}

func (s *mongoSlot) Put(ctx context.Context, data []byte) error {
	doc := slotDocument{Key: s.key, Payload: string(data), UpdatedAt: s.now().UTC()}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": s.key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		s.logger.Error("Failed to upsert portfolio document", err, zap.String("slot_key", s.key))
		return apperror.NewUnavailable("failed to write portfolio to mongo", err)
	}
	return nil
}
