package models

import "time"

// QuoteRecord is one normalized index quote. Numeric fields carry provider
// values verbatim; only the observation timestamp is normalized to ISO-8601.
type QuoteRecord struct {
	Index         Index   `json:"index"`
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
	DayLow        float64 `json:"day_low"`
	DayHigh       float64 `json:"day_high"`
	Volume        int64   `json:"volume"`
	Timestamp     string  `json:"timestamp"`
}

// NewsItem is one normalized macro news article. PublishedAt is the
// provider's raw date string, passed through unmodified.
type NewsItem struct {
	Title       string `json:"title"`
	Site        string `json:"site"`
	PublishedAt string `json:"published_at"`
	URL         string `json:"url"`
	Summary     string `json:"summary"`
}

// MarketSnapshot is one capture of market context. Quotes and News are
// independently optional; a nil slice or map means that dataset was absent.
// A nil *MarketSnapshot is the overall "no data" outcome.
type MarketSnapshot struct {
	Quotes     map[Index]QuoteRecord `json:"quotes,omitempty"`
	News       []NewsItem            `json:"news,omitempty"`
	CapturedAt time.Time             `json:"captured_at"`
}
