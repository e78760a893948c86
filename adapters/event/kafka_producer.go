package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-builder/internal/config"
	"github.com/khoahotran/portfolio-builder/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-builder/pkg/logger"
)

const (
	DefaultTopic = "portfolio.events"

	EventSectionUpdated = "section.updated"
)

// messageWriter is the part of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// SectionEvent is the JSON value of every message on the topic.
type SectionEvent struct {
	EventType string `json:"event_type"`
	portfolio.SectionUpdated
}

// KafkaPublisher announces every persisted section on one topic, keyed by
// section so a section's events stay ordered within a partition.
type KafkaPublisher struct {
	writer messageWriter
	logger logger.Logger
}

func NewKafkaPublisher(cfg config.Config, log logger.Logger) (*KafkaPublisher, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}
	topic := cfg.Kafka.Topic
	if topic == "" {
		topic = DefaultTopic
	}

	log = log.With(zap.String("topic", topic))
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.Hash{},
		Async:    true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				log.Warn("Kafka delivery failed", zap.Int("messages", len(messages)), zap.Error(err))
			}
		},
	}

	log.Info("Initialize Kafka publisher successfully.")
	return newKafkaPublisher(writer, log), nil
}

func newKafkaPublisher(w messageWriter, log logger.Logger) *KafkaPublisher {
	return &KafkaPublisher{writer: w, logger: log}
}

func (p *KafkaPublisher) PublishSectionUpdated(ctx context.Context, evt portfolio.SectionUpdated) error {
	value, err := json.Marshal(SectionEvent{EventType: EventSectionUpdated, SectionUpdated: evt})
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", EventSectionUpdated, err)
	}

	msg := kafka.Message{Key: []byte(evt.Section), Value: value}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish %s event: %w", EventSectionUpdated, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() {
	if err := p.writer.Close(); err != nil {
		p.logger.Warn("Closing Kafka writer failed", zap.Error(err))
		return
	}
	p.logger.Info("Closed Kafka publisher")
}

// NoopPublisher drops every event. Used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishSectionUpdated(context.Context, portfolio.SectionUpdated) error {
	return nil
}

// NewPublisher returns a Kafka publisher when brokers are configured and a
// NoopPublisher otherwise. The close func is never nil.
func NewPublisher(cfg config.Config, log logger.Logger) (portfolio.EventPublisher, func(), error) {
	if len(cfg.Kafka.Brokers) == 0 {
		log.Info("No Kafka brokers configured, section events are disabled")
		return NoopPublisher{}, func() {}, nil
	}
	p, err := NewKafkaPublisher(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return p, p.Close, nil
}
