package fmp

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Timestamp holds a quote timestamp verbatim. The provider has served both
// unix seconds and date strings for this field, so decoding accepts either
// and leaves interpretation to the caller.
type Timestamp string

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("unquoting timestamp: %w", err)
		}
		*t = Timestamp(unquoted)
		return nil
	}
	*t = Timestamp(s)
	return nil
}

func (t Timestamp) String() string {
	return string(t)
}

// Quote is one raw record from the bulk-quote endpoint.
type Quote struct {
	Symbol            string    `json:"symbol"`
	Name              string    `json:"name"`
	Price             float64   `json:"price"`
	Change            float64   `json:"change"`
	ChangesPercentage float64   `json:"changesPercentage"`
	DayLow            float64   `json:"dayLow"`
	DayHigh           float64   `json:"dayHigh"`
	Volume            int64     `json:"volume"`
	Timestamp         Timestamp `json:"timestamp"`
}

// Quotes retrieves bulk quotes for the given tickers in one call.
func (c *Client) Quotes(ctx context.Context, symbols []string) ([]Quote, error) {
	if len(symbols) == 0 {
		return nil, fmt.Errorf("no symbols requested")
	}

	query := maps.Clone(c.query)
	u := fmt.Sprintf("%s/quote/%s?%s", c.baseURL, url.PathEscape(strings.Join(symbols, ",")), query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header = c.header

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("performing request: %w", err)
	}
	defer res.Body.Close()

	if err := checkStatus(res.StatusCode); err != nil {
		return nil, err
	}

	var quotes []Quote
	if err := json.NewDecoder(res.Body).Decode(&quotes); err != nil {
		return nil, fmt.Errorf("decoding quotes response: %w", err)
	}
	return quotes, nil
}

func checkStatus(code int) error {
	switch code {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("unauthorized: status %d", code)
	case http.StatusTooManyRequests:
		return fmt.Errorf("rate limited")
	default:
		return fmt.Errorf("unexpected status code: %d", code)
	}
}
