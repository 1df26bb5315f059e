package coingecko

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"timeline-api/pkg/market"
)

const (
	defaultBaseURL      = "https://api.coingecko.com/api/v3"
	defaultHTTPTimeout  = 20 * time.Second
	defaultMaxAttempts  = 3
	defaultRetryBackoff = 500 * time.Millisecond

	apiKeyHeader = "x-cg-demo-api-key"
)

// marketsQuery matches the upstream ordering contract: top 100 assets by
// descending market cap with 1h/24h/7d change columns.
const marketsQuery = "vs_currency=usd&order=market_cap_desc&per_page=100&page=1&price_change_percentage=1h,24h,7d"

// Client wraps access to the CoinGecko REST API.
type Client struct {
	baseURL      string
	apiKey       string
	httpClient   *http.Client
	maxAttempts  int
	retryBackoff time.Duration
}

// Option configures a new Client.
type Option func(*Client)

// WithHTTPClient injects a custom http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithBaseURL overrides the default API base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithAPIKey sets the demo API key sent on every request.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithRetryPolicy bounds the batch-fetch retry loop. Attempts below 1 are
// clamped to 1; a zero backoff makes retries immediate, which tests rely on.
func WithRetryPolicy(maxAttempts int, backoff time.Duration) Option {
	return func(c *Client) {
		if maxAttempts >= 1 {
			c.maxAttempts = maxAttempts
		}
		if backoff >= 0 {
			c.retryBackoff = backoff
		}
	}
}

// NewClient constructs a CoinGecko API client.
func NewClient(opts ...Option) *Client {
	client := &Client{
		baseURL:      defaultBaseURL,
		httpClient:   &http.Client{Timeout: defaultHTTPTimeout},
		maxAttempts:  defaultMaxAttempts,
		retryBackoff: defaultRetryBackoff,
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return client
}

// Markets fetches the current asset batch. This is the initial page load, so
// it retries transient failures before giving up.
func (c *Client) Markets(ctx context.Context) ([]market.AssetRecord, error) {
	var records []market.AssetRecord
	endpoint := fmt.Sprintf("%s/coins/markets?%s", c.baseURL, marketsQuery)
	if err := c.getJSON(ctx, endpoint, c.maxAttempts, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// SimplePrices fetches current USD prices for the given asset ids. An empty
// id list is a degenerate no-op, not an error. Fails fast: no retries.
func (c *Client) SimplePrices(ctx context.Context, ids []string) (map[string]float64, error) {
	if len(ids) == 0 {
		return map[string]float64{}, nil
	}
	endpoint := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=usd",
		c.baseURL, url.QueryEscape(strings.Join(ids, ",")))

	var payload map[string]map[string]float64
	if err := c.getJSON(ctx, endpoint, 1, &payload); err != nil {
		return nil, err
	}

	prices := make(map[string]float64, len(payload))
	for id, quotes := range payload {
		prices[id] = quotes["usd"]
	}
	return prices, nil
}

// MarketChart fetches the historical price series for one asset. Fails fast.
func (c *Client) MarketChart(ctx context.Context, id string, days int) ([]market.PricePoint, error) {
	endpoint := fmt.Sprintf("%s/coins/%s/market_chart?vs_currency=usd&days=%d",
		c.baseURL, url.PathEscape(id), days)

	var payload marketChartResponse
	if err := c.getJSON(ctx, endpoint, 1, &payload); err != nil {
		return nil, err
	}

	points := make([]market.PricePoint, 0, len(payload.Prices))
	for _, pair := range payload.Prices {
		if len(pair) < 2 {
			continue
		}
		points = append(points, market.PricePoint{
			TimestampMs: int64(pair[0]),
			Price:       pair[1],
		})
	}
	return points, nil
}

// getJSON performs a GET with up to attempts tries, decoding a 2xx body into
// result. Any terminal failure is reported as ErrUpstreamUnavailable.
func (c *Client) getJSON(ctx context.Context, endpoint string, attempts int, result interface{}) error {
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.retryBackoff):
			}
		}

		err := c.getJSONOnce(ctx, endpoint, result)
		if err == nil {
			return nil
		}
		if errors.Is(err, context.Canceled) {
			return err
		}
		lastErr = err
	}
	return lastErr
}

func (c *Client) getJSONOnce(ctx context.Context, endpoint string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("coingecko: build request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil && errors.Is(ctx.Err(), context.Canceled) {
			return ctx.Err()
		}
		return fmt.Errorf("coingecko: %w: %v", market.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("coingecko: %w: read response: %v", market.ErrUpstreamUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("coingecko: %w: http status %d", market.ErrUpstreamUnavailable, resp.StatusCode)
	}
	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("coingecko: %w: decode response: %v", market.ErrUpstreamUnavailable, err)
		}
	}
	return nil
}
