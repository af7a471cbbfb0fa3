package usecase

import (
	"marketcontext/internal/domain/models"
	"marketcontext/internal/service/fmp"
	"marketcontext/pkg/util"
)

const (
	// maxNewsItems bounds the normalized sequence regardless of how many
	// articles the provider returned.
	maxNewsItems = 5
	// summaryLimit is the character budget for an article summary.
	summaryLimit = 200
	// summaryMarker is appended to a summary only when it was truncated.
	summaryMarker = "..."
)

// NormalizeNews keeps the first maxNewsItems articles in provider order and
// shapes each into a NewsItem. PublishedDate passes through untouched; an
// absent text yields an empty summary with no marker. Returns nil for empty
// input, which callers treat as "no news data".
func NormalizeNews(raw []fmp.Article) []models.NewsItem {
	if len(raw) == 0 {
		return nil
	}

	if len(raw) > maxNewsItems {
		raw = raw[:maxNewsItems]
	}

	out := make([]models.NewsItem, 0, len(raw))
	for _, a := range raw {
		out = append(out, models.NewsItem{
			Title:       a.Title,
			Site:        a.Site,
			PublishedAt: a.PublishedDate,
			URL:         a.URL,
			Summary:     util.Truncate(a.Text, summaryLimit, summaryMarker),
		})
	}
	return out
}
