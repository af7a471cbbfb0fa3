package repository

import (
	"context"
	"time"

	"marketcontext/internal/domain/models"
	domrepo "marketcontext/internal/domain/repository"
	pkgkafka "marketcontext/pkg/kafka"
)

// KafkaSink publishes each captured snapshot as one JSON message, keyed by
// capture time so consumers can partition deterministically.
type KafkaSink struct {
	producer *pkgkafka.Producer
	topic    string
}

// NewKafkaSink creates a Kafka-backed snapshot sink.
func NewKafkaSink(producer *pkgkafka.Producer, topic string) domrepo.SnapshotSink {
	return &KafkaSink{producer: producer, topic: topic}
}

func (s *KafkaSink) Record(ctx context.Context, snap *models.MarketSnapshot) error {
	if snap == nil {
		return nil
	}
	key := []byte(snap.CapturedAt.UTC().Format(time.RFC3339))
	return s.producer.Publish(ctx, s.topic, key, snap)
}

func (s *KafkaSink) Close() error {
	return s.producer.Close()
}
