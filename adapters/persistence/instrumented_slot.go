package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/khoahotran/portfolio-builder/internal/domain/portfolio"
)

type SlotMetrics struct {
	ops      *prometheus.CounterVec
	duration *prometheus.HistogramVec
	bytes    prometheus.Gauge
}

func NewSlotMetrics(reg prometheus.Registerer) (*SlotMetrics, error) {
	m := &SlotMetrics{
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio",
			Subsystem: "slot",
			Name:      "operations_total",
			Help:      "Slot reads and writes by outcome.",
		}, []string{"op", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "portfolio",
			Subsystem: "slot",
			Name:      "operation_duration_seconds",
			Help:      "Slot operation latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
		bytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "portfolio",
			Subsystem: "slot",
			Name:      "record_bytes",
			Help:      "Size of the last record read or written.",
		}),
	}
	for _, c := range []prometheus.Collector{m.ops, m.duration, m.bytes} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Instrument wraps repo so every Get and Put is counted and timed.
func (m *SlotMetrics) Instrument(repo portfolio.Repository) portfolio.Repository {
	return &instrumentedSlot{next: repo, metrics: m}
}

type instrumentedSlot struct {
	next    portfolio.Repository
	metrics *SlotMetrics
}

func (s *instrumentedSlot) Get(ctx context.Context) ([]byte, error) {
	start := time.Now()
	data, err := s.next.Get(ctx)
	s.observe("get", start, err)
	if err == nil {
		s.metrics.bytes.Set(float64(len(data)))
	}
	return data, err
}

func (s *instrumentedSlot) Put(ctx context.Context, data []byte) error {
	start := time.Now()
	err := s.next.Put(ctx, data)
	s.observe("put", start, err)
	if err == nil {
		s.metrics.bytes.Set(float64(len(data)))
	}
	return err
}

func (s *instrumentedSlot) observe(op string, start time.Time, err error) {
	outcome := "ok"
	switch {
	case errors.Is(err, portfolio.ErrNoSavedData):
		outcome = "empty"
	case err != nil:
		outcome = "error"
	}
	s.metrics.ops.WithLabelValues(op, outcome).Inc()
	s.metrics.duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
