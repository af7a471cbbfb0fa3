package fmp

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"strconv"
)

// Article is one raw record from the stock news endpoint.
type Article struct {
	Symbol        string `json:"symbol"`
	PublishedDate string `json:"publishedDate"`
	Title         string `json:"title"`
	Image         string `json:"image"`
	Site          string `json:"site"`
	Text          string `json:"text"`
	URL           string `json:"url"`
}

// News retrieves the latest stock news, most relevant first, bounded by limit.
func (c *Client) News(ctx context.Context, limit int) ([]Article, error) {
	query := maps.Clone(c.query)
	query.Add("limit", strconv.Itoa(limit))

	u := fmt.Sprintf("%s/stock_news?%s", c.baseURL, query.Encode())
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

	var articles []Article
	if err := json.NewDecoder(res.Body).Decode(&articles); err != nil {
		return nil, fmt.Errorf("decoding news response: %w", err)
	}
	return articles, nil
}
