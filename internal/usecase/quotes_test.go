package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"marketcontext/internal/domain/models"
	"marketcontext/internal/service/fmp"
	"marketcontext/pkg/logger"
)

func rawQuote(symbol string, price float64, ts string) fmp.Quote {
	return fmp.Quote{
		Symbol:            symbol,
		Price:             price,
		Change:            10,
		ChangesPercentage: 0.2,
		DayLow:            price - 50,
		DayHigh:           price + 10,
		Volume:            1000000,
		Timestamp:         fmp.Timestamp(ts),
	}
}

func TestNormalizeQuotes_MatchedIdentifiersOnly(t *testing.T) {
	raw := []fmp.Quote{
		rawQuote("^GSPC", 5000, "1700000000"),
		rawQuote("^VIX", 14.2, "1700000000"),
		rawQuote("AAPL", 180, "1700000000"), // not a tracked index
	}

	got := NormalizeQuotes(raw, logger.Nop())
	require.Len(t, got, 2)
	require.Contains(t, got, models.IndexSP500)
	require.Contains(t, got, models.IndexVIX)

	q := got[models.IndexSP500]
	require.Equal(t, "^GSPC", q.Symbol)
	require.InEpsilon(t, 5000.0, q.Price, 1e-9)
	require.Equal(t, "2023-11-14T22:13:20Z", q.Timestamp)
}

func TestNormalizeQuotes_EmptyInput(t *testing.T) {
	require.Nil(t, NormalizeQuotes(nil, logger.Nop()))
	require.Nil(t, NormalizeQuotes([]fmp.Quote{}, logger.Nop()))
}

func TestNormalizeQuotes_NoMatches(t *testing.T) {
	raw := []fmp.Quote{
		rawQuote("AAPL", 180, "1700000000"),
		rawQuote("MSFT", 370, "1700000000"),
	}
	require.Nil(t, NormalizeQuotes(raw, logger.Nop()))
}

func TestNormalizeQuotes_BadTimestampDropsOnlyThatRecord(t *testing.T) {
	raw := []fmp.Quote{
		rawQuote("^GSPC", 5000, "not-a-time"),
		rawQuote("^IXIC", 15800, "1700000000"),
	}

	got := NormalizeQuotes(raw, logger.Nop())
	require.Len(t, got, 1)
	require.Contains(t, got, models.IndexNasdaq)
	require.NotContains(t, got, models.IndexSP500)
}

func TestNormalizeQuotes_AllTimestampsBad(t *testing.T) {
	raw := []fmp.Quote{rawQuote("^GSPC", 5000, "")}
	require.Nil(t, NormalizeQuotes(raw, logger.Nop()))
}

func TestNormalizeQuotes_DateStringTimestamp(t *testing.T) {
	raw := []fmp.Quote{rawQuote("^TNX", 4.45, "2023-11-14 16:00:00")}

	got := NormalizeQuotes(raw, logger.Nop())
	require.Len(t, got, 1)
	require.Equal(t, models.IndexUS10Y, got[models.IndexUS10Y].Index)
}
