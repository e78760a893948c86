// Package idgen provides the identifier sources used for list entries
// (projects, experience, testimonials).
package idgen

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	StrategyTime     = "time"
	StrategyUUID     = "uuid"
	StrategySequence = "sequence"
)

type Generator interface {
	NewID() string
}

// TimeGenerator issues millisecond timestamps, bumped forward when two ids
// are requested within the same millisecond so consecutive ids never repeat.
type TimeGenerator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func NewTimeGenerator(now func() time.Time) *TimeGenerator {
	if now == nil {
		now = time.Now
	}
	return &TimeGenerator{now: now}
}

func (g *TimeGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return strconv.FormatInt(ms, 10)
}

// Sequence issues "<prefix>-1", "<prefix>-2", ... and is meant for tests.
type Sequence struct {
	mu     sync.Mutex
	prefix string
	n      int
}

func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

func (s *Sequence) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	if s.prefix == "" {
		return strconv.Itoa(s.n)
	}
	return fmt.Sprintf("%s-%d", s.prefix, s.n)
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// New picks a generator by configured strategy name.
func New(strategy string) (Generator, error) {
	switch strategy {
	case "", StrategyTime:
		return NewTimeGenerator(nil), nil
	case StrategyUUID:
		return UUIDGenerator{}, nil
	case StrategySequence:
		return NewSequence("entry"), nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q", strategy)
	}
}
