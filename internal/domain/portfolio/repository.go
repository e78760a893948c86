package portfolio

import (
	"context"
	"errors"
	"time"
)

// DefaultSlotKey names the single storage slot holding the serialized record.
const DefaultSlotKey = "portfolioData"

var ErrNoSavedData = errors.New("no saved portfolio data")

// Repository is one named slot holding the whole record as JSON text.
// Get returns ErrNoSavedData when the slot has never been written.
type Repository interface {
	Get(ctx context.Context) ([]byte, error)
	Put(ctx context.Context, data []byte) error
}

type SectionUpdated struct {
	Section SectionKey `json:"section"`
	SavedAt time.Time  `json:"saved_at"`
	Bytes   int        `json:"bytes"`
}

// EventPublisher is told about every section that reached storage.
type EventPublisher interface {
	PublishSectionUpdated(ctx context.Context, evt SectionUpdated) error
}
