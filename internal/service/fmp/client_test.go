package fmp_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"marketcontext/internal/service/fmp"
)

var mockQuotesResponse = []map[string]any{
	{
		"symbol":            "^GSPC",
		"name":              "S&P 500",
		"price":             5000.25,
		"change":            10.5,
		"changesPercentage": 0.21,
		"dayLow":            4950.0,
		"dayHigh":           5010.0,
		"volume":            1000000,
		"timestamp":         1700000000,
	},
	{
		"symbol":            "^VIX",
		"name":              "CBOE Volatility Index",
		"price":             14.2,
		"change":            -0.3,
		"changesPercentage": -2.07,
		"dayLow":            13.9,
		"dayHigh":           14.8,
		"volume":            0,
		"timestamp":         1700000000,
	},
}

func jsonBody(t *testing.T, v any) io.ReadCloser {
	t.Helper()
	buffer := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(buffer).Encode(v))
	return io.NopCloser(buffer)
}

func TestQuotes(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)

	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			require.Equal(t, http.MethodGet, req.Method)
			require.Equal(t, "test-key", req.URL.Query().Get("apikey"))
			require.Contains(t, req.URL.Path, "/quote/")
			require.Contains(t, req.URL.Path, "^GSPC,^VIX")
			return &http.Response{StatusCode: http.StatusOK, Body: jsonBody(t, mockQuotesResponse)}, nil
		}).
		Times(1)

	client := fmp.New("test-key", fmp.WithHTTPClient(httpClient))

	quotes, err := client.Quotes(context.Background(), []string{"^GSPC", "^VIX"})
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	require.Equal(t, "^GSPC", quotes[0].Symbol)
	require.InEpsilon(t, 5000.25, quotes[0].Price, 0.0001)
	require.Equal(t, fmp.Timestamp("1700000000"), quotes[0].Timestamp)
	require.Equal(t, int64(1000000), quotes[0].Volume)
}

func TestQuotes_DateStringTimestamp(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)

	body := `[
		{"symbol": "^GSPC", "price": 5000.25, "timestamp": 1700000000},
		{"symbol": "^TNX", "price": 4.45, "timestamp": "2023-11-14 16:00:00"}
	]`
	httpClient.EXPECT().
		Do(gomock.Any()).
		Return(&http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(bytes.NewBufferString(body))}, nil).
		Times(1)

	client := fmp.New("test-key", fmp.WithHTTPClient(httpClient))

	quotes, err := client.Quotes(context.Background(), []string{"^GSPC", "^TNX"})
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	require.Equal(t, fmp.Timestamp("1700000000"), quotes[0].Timestamp)
	require.Equal(t, fmp.Timestamp("2023-11-14 16:00:00"), quotes[1].Timestamp)
}

func TestQuotes_NoSymbols(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)
	httpClient.EXPECT().Do(gomock.Any()).Times(0)

	client := fmp.New("test-key", fmp.WithHTTPClient(httpClient))

	quotes, err := client.Quotes(context.Background(), nil)
	require.Error(t, err)
	require.Nil(t, quotes)
}

func TestQuotes_ErrPerformingRequest(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)

	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			return nil, fmt.Errorf("connection refused")
		}).
		Times(1)

	client := fmp.New("test-key", fmp.WithHTTPClient(httpClient))

	quotes, err := client.Quotes(context.Background(), []string{"^GSPC"})
	require.Error(t, err)
	require.Nil(t, quotes)
}

func TestQuotes_ErrUnexpectedStatusCode(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)

	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusInternalServerError,
				Body:       io.NopCloser(bytes.NewReader(nil)),
			}, nil
		}).
		Times(1)

	client := fmp.New("test-key", fmp.WithHTTPClient(httpClient))

	quotes, err := client.Quotes(context.Background(), []string{"^GSPC"})
	require.Error(t, err)
	require.Nil(t, quotes)
}

func TestQuotes_ErrDecodingResponse(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)

	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewReader([]byte(`{"Error Message":"Invalid API KEY"}`))),
			}, nil
		}).
		Times(1)

	client := fmp.New("test-key", fmp.WithHTTPClient(httpClient))

	quotes, err := client.Quotes(context.Background(), []string{"^GSPC"})
	require.Error(t, err)
	require.Nil(t, quotes)
}

func TestNews(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)

	mockArticles := []map[string]any{
		{
			"symbol":        "AAPL",
			"publishedDate": "2023-11-14 16:00:00",
			"title":         "Markets rally",
			"site":          "Example Wire",
			"text":          "A longer article body.",
			"url":           "https://example.com/a",
		},
	}

	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			require.Contains(t, req.URL.Path, "/stock_news")
			require.Equal(t, "10", req.URL.Query().Get("limit"))
			require.Equal(t, "test-key", req.URL.Query().Get("apikey"))
			return &http.Response{StatusCode: http.StatusOK, Body: jsonBody(t, mockArticles)}, nil
		}).
		Times(1)

	client := fmp.New("test-key", fmp.WithHTTPClient(httpClient))

	articles, err := client.News(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	require.Equal(t, "Markets rally", articles[0].Title)
	require.Equal(t, "2023-11-14 16:00:00", articles[0].PublishedDate)
}

func TestNews_ErrPerformingRequest(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)

	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			return nil, fmt.Errorf("timeout")
		}).
		Times(1)

	client := fmp.New("", fmp.WithHTTPClient(httpClient))

	articles, err := client.News(context.Background(), 10)
	require.Error(t, err)
	require.Nil(t, articles)
}
