package persistence

import (
	"context"
	"sync"

	"github.com/khoahotran/portfolio-builder/internal/domain/portfolio"
)

// MemorySlot is a process-local slot. Nothing survives a restart.
type MemorySlot struct {
	mu   sync.RWMutex
	data []byte
	set  bool
}

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

func (s *MemorySlot) Get(_ context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.set {
		return nil, portfolio.ErrNoSavedData
	}
	return append([]byte(nil), s.data...), nil
}

func (s *MemorySlot) Put(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), data...)
	s.set = true
	return nil
}
