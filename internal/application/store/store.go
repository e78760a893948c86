// Package store owns the in-memory portfolio record and keeps it in sync with
// its storage slot.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-builder/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-builder/pkg/logger"
)

var ErrNotReady = errors.New("store has not finished loading")

type LoadStatus int

const (
	// LoadEmpty: the slot was never written; the record is the default.
	LoadEmpty LoadStatus = iota + 1
	// LoadRestored: the saved record was read back.
	LoadRestored
	// LoadDiscarded: the slot held unreadable text; the record is the default.
	LoadDiscarded
)

func (s LoadStatus) String() string {
	switch s {
	case LoadEmpty:
		return "empty"
	case LoadRestored:
		return "restored"
	case LoadDiscarded:
		return "discarded"
	}
	return "unknown"
}

type Store struct {
	mu        sync.RWMutex
	repo      portfolio.Repository
	publisher portfolio.EventPublisher
	logger    logger.Logger
	now       func() time.Time

	record  portfolio.Record
	ready   bool
	hasData bool
	status  LoadStatus
}

type Option func(*Store)

func WithPublisher(p portfolio.EventPublisher) Option {
	return func(s *Store) { s.publisher = p }
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(repo portfolio.Repository, log logger.Logger, opts ...Option) *Store {
	s := &Store{
		repo:   repo,
		logger: log,
		now:    time.Now,
		record: portfolio.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the slot and replaces the in-memory record with what it finds.
// Unparseable data is dropped in favour of the default record and reported
// through LoadDiscarded, not as an error. Only a failing slot returns an
// error, in which case the store stays not ready and will not write.
func (s *Store) Load(ctx context.Context) (LoadStatus, error) {
	raw, err := s.repo.Get(ctx)
	switch {
	case errors.Is(err, portfolio.ErrNoSavedData):
		s.mu.Lock()
		s.record = portfolio.Default()
		s.markLoaded(LoadEmpty, false)
		s.mu.Unlock()
		s.logger.Info("No saved portfolio found, starting from defaults")
		return LoadEmpty, nil
	case err != nil:
		return 0, fmt.Errorf("read portfolio slot: %w", err)
	}

	rec := portfolio.Default()
	if err := json.Unmarshal(raw, &rec); err != nil {
		s.logger.Warn("Discarding unreadable saved portfolio",
			zap.Int("bytes", len(raw)),
			zap.Error(err),
		)
		s.mu.Lock()
		s.record = portfolio.Default()
		s.markLoaded(LoadDiscarded, false)
		s.mu.Unlock()
		return LoadDiscarded, nil
	}

	s.mu.Lock()
	s.record = rec.Normalize()
	s.markLoaded(LoadRestored, true)
	s.mu.Unlock()
	s.logger.Info("Saved portfolio restored", zap.Int("bytes", len(raw)))
	return LoadRestored, nil
}

func (s *Store) markLoaded(status LoadStatus, hasData bool) {
	s.status = status
	s.ready = true
	s.hasData = s.hasData || hasData
}

// UpdateSection replaces one section wholesale. Once the store is ready the
// full record is written to the slot. The in-memory change always sticks; a
// returned error only reports that the write failed.
func (s *Store) UpdateSection(ctx context.Context, v portfolio.SectionValue) error {
	section := v.SectionKey()

	s.mu.Lock()
	s.record = s.record.With(v).Clone()
	s.hasData = true
	if !s.ready {
		s.mu.Unlock()
		s.logger.Debug("Store not ready, keeping update in memory", zap.String("section", string(section)))
		return nil
	}
	n, err := s.writeLocked(ctx)
	s.mu.Unlock()
	if err != nil {
		s.logger.Error("Failed to save portfolio", err, zap.String("section", string(section)))
		return err
	}

	s.publish(ctx, section, n)
	return nil
}

// Save writes the whole record to the slot.
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return ErrNotReady
	}
	if _, err := s.writeLocked(ctx); err != nil {
		s.logger.Error("Failed to save portfolio", err)
		return err
	}
	return nil
}

// writeLocked runs under s.mu so slot writes land in the order the updates
// were applied.
func (s *Store) writeLocked(ctx context.Context) (int, error) {
	data, err := json.Marshal(s.record)
	if err != nil {
		return 0, fmt.Errorf("encode portfolio: %w", err)
	}
	if err := s.repo.Put(ctx, data); err != nil {
		return 0, fmt.Errorf("write portfolio slot: %w", err)
	}
	return len(data), nil
}

func (s *Store) publish(ctx context.Context, section portfolio.SectionKey, n int) {
	if s.publisher == nil {
		return
	}
	evt := portfolio.SectionUpdated{Section: section, SavedAt: s.now().UTC(), Bytes: n}
	if err := s.publisher.PublishSectionUpdated(ctx, evt); err != nil {
		s.logger.Warn("Failed to publish section update", zap.String("section", string(section)), zap.Error(err))
	}
}

// Record returns a deep copy of the current record.
func (s *Store) Record() portfolio.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.record.Clone()
}

func (s *Store) Section(key portfolio.SectionKey) portfolio.SectionValue {
	return s.Record().Section(key)
}

func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// HasData reports whether the record was restored from the slot or edited
// during this session.
func (s *Store) HasData() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasData
}

func (s *Store) Status() LoadStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}
