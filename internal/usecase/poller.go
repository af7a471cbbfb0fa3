package usecase

import (
	"context"
	"time"

	domrepo "marketcontext/internal/domain/repository"
	"marketcontext/pkg/logger"
)

// Poller captures snapshots on a fixed interval and hands them to the
// configured sink. Sink failures are logged and dropped; they never stop the
// loop or alter what the builder returned.
type Poller struct {
	builder  *SnapshotBuilder
	sink     domrepo.SnapshotSink
	log      *logger.Logger
	interval time.Duration
}

func NewPoller(builder *SnapshotBuilder, sink domrepo.SnapshotSink, log *logger.Logger, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &Poller{builder: builder, sink: sink, log: log, interval: interval}
}

// Start blocks until ctx is cancelled, capturing one snapshot immediately and
// then one per interval.
func (p *Poller) Start(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.capture(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.capture(ctx)
		}
	}
}

func (p *Poller) capture(ctx context.Context) {
	snap := p.builder.Fetch(ctx)
	if snap == nil {
		p.log.Warn("snapshot capture produced no data")
		return
	}

	p.log.Info("snapshot captured",
		logger.Int("quotes", len(snap.Quotes)),
		logger.Int("news", len(snap.News)))

	if p.sink == nil {
		return
	}
	if err := p.sink.Record(ctx, snap); err != nil {
		p.log.Error("snapshot sink record failed", logger.Error(err))
	}
}
