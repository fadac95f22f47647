package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Chetan55567/portfolio-api/internal/config"
)

const TopicPortfolioEvents = "portfolio.events"

const (
	ContentEventProfileUpdated  = "profile.updated"
	ContentEventSettingsUpdated = "settings.updated"
	ContentEventPhotoUploaded   = "photo.uploaded"
	ContentEventPhotoRemoved    = "photo.removed"
	ContentEventResumeUploaded  = "resume.uploaded"
)

type ContentEventPayload struct {
	EventType  string    `json:"event_type"`
	Path       string    `json:"path,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type KafkaProducerClient struct {
	contentEventsWriter *kafka.Writer
}

// NewKafkaProducerClient returns (nil, nil) when no brokers are configured;
// callers nil-check and skip publishing.
func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, nil
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicPortfolioEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{contentEventsWriter: writer}, nil
}

func (c *KafkaProducerClient) PublishContentEvent(ctx context.Context, payload ContentEventPayload) error {
	if c == nil {
		return nil
	}

	if payload.OccurredAt.IsZero() {
		payload.OccurredAt = time.Now().UTC()
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal content event: %w", err)
	}

	return c.contentEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.EventType),
		Value: value,
	})
}

func (c *KafkaProducerClient) Close() {
	if c != nil && c.contentEventsWriter != nil {
		c.contentEventsWriter.Close()
	}
}
