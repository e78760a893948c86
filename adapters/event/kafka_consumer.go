package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-builder/pkg/logger"
)

// messageReader is the part of *kafka.Reader the consumer needs.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

func DecodeSectionEvent(msg kafka.Message) (SectionEvent, error) {
	var evt SectionEvent
	if err := json.Unmarshal(msg.Value, &evt); err != nil {
		return SectionEvent{}, fmt.Errorf("decode event at offset %d: %w", msg.Offset, err)
	}
	if evt.EventType != EventSectionUpdated {
		return SectionEvent{}, fmt.Errorf("unexpected event type %q", evt.EventType)
	}
	return evt, nil
}

const defaultFetchBackoff = time.Second

// SectionConsumer hands every section.updated event to a handler and commits
// it. Messages that cannot be decoded are logged and committed so they do
// not block the partition.
type SectionConsumer struct {
	reader  messageReader
	logger  logger.Logger
	backoff time.Duration
}

func NewSectionConsumer(brokers []string, topic, groupID string, log logger.Logger) *SectionConsumer {
	if topic == "" {
		topic = DefaultTopic
	}
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	return newSectionConsumer(reader, log.With(zap.String("topic", topic)))
}

func newSectionConsumer(r messageReader, log logger.Logger) *SectionConsumer {
	return &SectionConsumer{reader: r, logger: log, backoff: defaultFetchBackoff}
}

// Run blocks until ctx is cancelled, the reader is closed, or the handler
// fails. A failed event is not committed and Run returns, so the group offset
// stays on it and the next consumer of the group starts there. Transient fetch
// errors are retried after a backoff.
func (c *SectionConsumer) Run(ctx context.Context, handle func(context.Context, SectionEvent) error) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("kafka reader closed: %w", err)
			}
			c.logger.Error("Failed to read message from Kafka", err, zap.Duration("retry_in", c.backoff))
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(c.backoff):
			}
			continue
		}

		evt, err := DecodeSectionEvent(msg)
		if err != nil {
			c.logger.Warn("Skipping undecodable message", zap.ByteString("key", msg.Key), zap.Error(err))
			c.commit(ctx, msg)
			continue
		}

		if err := handle(ctx, evt); err != nil {
			return fmt.Errorf("handle %s event at offset %d: %w", evt.Section, msg.Offset, err)
		}
		c.commit(ctx, msg)
	}
}

func (c *SectionConsumer) commit(ctx context.Context, msg kafka.Message) {
	if err := c.reader.CommitMessages(ctx, msg); err != nil {
		c.logger.Error("Failed to commit message", err)
	}
}

func (c *SectionConsumer) Close() error {
	return c.reader.Close()
}
