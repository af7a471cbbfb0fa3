package usecase

import (
	"marketcontext/internal/domain/models"
	"marketcontext/internal/service/fmp"
	"marketcontext/pkg/logger"
	"marketcontext/pkg/util"
)

// NormalizeQuotes maps raw provider quotes onto the tracked indices.
// Records whose ticker is not tracked are dropped silently; a record whose
// timestamp cannot be normalized is dropped with a warning. Returns nil when
// nothing usable remains, which callers treat as "no quote data".
func NormalizeQuotes(raw []fmp.Quote, log *logger.Logger) map[models.Index]models.QuoteRecord {
	if len(raw) == 0 {
		return nil
	}

	out := make(map[models.Index]models.QuoteRecord, len(raw))
	for _, q := range raw {
		idx, ok := models.IndexBySymbol(q.Symbol)
		if !ok {
			continue
		}

		ts, ok := util.ParseTime(q.Timestamp.String())
		if !ok {
			log.Warn("quote timestamp unusable, dropping record",
				logger.String("symbol", q.Symbol),
				logger.String("timestamp", q.Timestamp.String()))
			continue
		}

		out[idx] = models.QuoteRecord{
			Index:         idx,
			Symbol:        q.Symbol,
			Price:         q.Price,
			Change:        q.Change,
			ChangePercent: q.ChangesPercentage,
			DayLow:        q.DayLow,
			DayHigh:       q.DayHigh,
			Volume:        q.Volume,
			Timestamp:     util.ISO8601(ts),
		}
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
