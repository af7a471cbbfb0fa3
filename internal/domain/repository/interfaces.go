package repository

import (
	"context"

	"marketcontext/internal/domain/models"
)

// SnapshotSink records captured snapshots for later inspection. Sinks are a
// side-channel: the aggregator never reads them back, and a sink failure must
// not affect the snapshot result.
type SnapshotSink interface {
	Record(ctx context.Context, s *models.MarketSnapshot) error
	Close() error
}

type Metrics interface {
	RecordSnapshot(outcome string)
	RecordPhaseError(phase string)
	RecordLastPrice(index string, price float64)
	RecordLatency(phase string, seconds float64)
}
