package usecase

import (
	"context"
	"sort"
	"time"

	"marketcontext/internal/domain/models"
	domrepo "marketcontext/internal/domain/repository"
	"marketcontext/internal/service/fmp"
	"marketcontext/pkg/logger"
)

const defaultNewsLimit = 10

// MarketDataSource fetches the raw provider datasets.
type MarketDataSource interface {
	Quotes(ctx context.Context, symbols []string) ([]fmp.Quote, error)
	News(ctx context.Context, limit int) ([]fmp.Article, error)
}

// SnapshotBuilder assembles a MarketSnapshot from the provider's quote and
// news endpoints. Quotes are the mandatory signal: without them the whole
// snapshot fails closed and Fetch returns nil. News is supplementary and may
// be absent from an otherwise valid snapshot. No error ever escapes Fetch;
// each phase downgrades its own failures to "absent" and logs them.
type SnapshotBuilder struct {
	source  MarketDataSource
	apiKey  string
	log     *logger.Logger
	metrics domrepo.Metrics
}

func NewSnapshotBuilder(source MarketDataSource, apiKey string, log *logger.Logger, metrics domrepo.Metrics) *SnapshotBuilder {
	return &SnapshotBuilder{source: source, apiKey: apiKey, log: log, metrics: metrics}
}

// Fetch captures one snapshot with the default news request bound.
func (b *SnapshotBuilder) Fetch(ctx context.Context) *models.MarketSnapshot {
	return b.FetchWithNewsLimit(ctx, defaultNewsLimit)
}

// FetchWithNewsLimit captures one snapshot, requesting at most newsLimit raw
// articles. The normalized news sequence is still capped independently.
func (b *SnapshotBuilder) FetchWithNewsLimit(ctx context.Context, newsLimit int) *models.MarketSnapshot {
	if b.apiKey == "" {
		b.log.Warn("no provider API key configured, skipping snapshot")
		b.metrics.RecordPhaseError("credentials")
		b.metrics.RecordSnapshot("absent")
		return nil
	}
	if newsLimit <= 0 {
		newsLimit = defaultNewsLimit
	}

	quotes := b.fetchQuotes(ctx)
	if quotes == nil {
		b.metrics.RecordSnapshot("absent")
		return nil
	}

	news := b.fetchNews(ctx, newsLimit)

	if news == nil {
		b.metrics.RecordSnapshot("quotes_only")
	} else {
		b.metrics.RecordSnapshot("full")
	}

	return &models.MarketSnapshot{
		Quotes:     quotes,
		News:       news,
		CapturedAt: time.Now().UTC(),
	}
}

func (b *SnapshotBuilder) fetchQuotes(ctx context.Context) map[models.Index]models.QuoteRecord {
	symbols := models.IndexSymbols()
	sort.Strings(symbols)

	start := time.Now()
	raw, err := b.source.Quotes(ctx, symbols)
	elapsed := time.Since(start)
	b.metrics.RecordLatency("quotes", elapsed.Seconds())
	if err != nil {
		b.log.Warn("quote fetch failed",
			logger.Error(err),
			logger.Strings("symbols", symbols),
			logger.Duration("elapsed", elapsed))
		b.metrics.RecordPhaseError("quotes")
		return nil
	}

	quotes := NormalizeQuotes(raw, b.log)
	if quotes == nil {
		b.log.Warn("quote response contained no usable records",
			logger.Int("raw_records", len(raw)))
		b.metrics.RecordPhaseError("quotes")
		return nil
	}

	for idx, q := range quotes {
		b.metrics.RecordLastPrice(string(idx), q.Price)
		b.log.Debug("quote normalized",
			logger.String("index", string(idx)),
			logger.Float64("price", q.Price))
	}
	return quotes
}

func (b *SnapshotBuilder) fetchNews(ctx context.Context, limit int) []models.NewsItem {
	start := time.Now()
	raw, err := b.source.News(ctx, limit)
	elapsed := time.Since(start)
	b.metrics.RecordLatency("news", elapsed.Seconds())
	if err != nil {
		b.log.Warn("news fetch failed, snapshot proceeds without news",
			logger.Error(err),
			logger.Duration("elapsed", elapsed))
		b.metrics.RecordPhaseError("news")
		return nil
	}
	return NormalizeNews(raw)
}
