package coingecko

import (
	"context"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"timeline-api/pkg/market"
)

// Fallbacks when the application does not configure cache TTLs.
const (
	defaultBatchTTL   = 2 * time.Minute
	defaultPricesTTL  = 2 * time.Minute
	defaultHistoryTTL = 5 * time.Minute
)

// Cache is the minimal time-bounded store the provider memoizes through.
// Entries are valid until expiry and never invalidated early.
type Cache interface {
	Get(key string) (any, bool)
	Set(key string, value any, ttl time.Duration)
}

// Provider implements market.Provider on top of the CoinGecko client, with
// time-bounded caching keyed by the full request parameter set.
type Provider struct {
	client *Client
	cache  Cache
	name   string

	batchTTL   time.Duration
	pricesTTL  time.Duration
	historyTTL time.Duration
}

type providerConfig struct {
	cache         Cache
	clientOptions []Option
}

// ProviderOption customises the CoinGecko provider.
type ProviderOption func(*providerConfig)

// WithCache injects the memoization cache. Without one, every call hits the
// upstream API.
func WithCache(c Cache) ProviderOption {
	return func(cfg *providerConfig) {
		cfg.cache = c
	}
}

// WithClientOptions passes options to the underlying CoinGecko client.
func WithClientOptions(options ...Option) ProviderOption {
	return func(cfg *providerConfig) {
		cfg.clientOptions = append(cfg.clientOptions, options...)
	}
}

// NewProvider constructs a CoinGecko market provider.
func NewProvider(opts ...ProviderOption) *Provider {
	cfg := &providerConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Provider{
		client:     NewClient(cfg.clientOptions...),
		cache:      cfg.cache,
		name:       "coingecko",
		batchTTL:   defaultBatchTTL,
		pricesTTL:  defaultPricesTTL,
		historyTTL: defaultHistoryTTL,
	}
}

func init() {
	market.RegisterProvider("coingecko", func(name string, cfg *market.ProviderConfig) (market.Provider, error) {
		clientOptions := []Option{}
		if cfg.BaseURL != "" {
			clientOptions = append(clientOptions, WithBaseURL(cfg.BaseURL))
		}
		if cfg.APIKey != "" {
			clientOptions = append(clientOptions, WithAPIKey(cfg.APIKey))
		}
		if cfg.HTTPTimeout > 0 {
			clientOptions = append(clientOptions, WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}))
		}
		if cfg.MaxAttempts > 0 || cfg.RetryBackoff > 0 {
			clientOptions = append(clientOptions, WithRetryPolicy(cfg.MaxAttempts, cfg.RetryBackoff))
		}
		provider := NewProvider(WithClientOptions(clientOptions...))
		provider.name = name
		return provider, nil
	})
}

// SetCache wires the memoization cache after construction. The registry
// builder cannot see application caches, so the service context calls this.
func (p *Provider) SetCache(c Cache) {
	p.cache = c
}

// SetTTLs overrides the per-endpoint cache lifetimes. Zero disables caching
// for that endpoint; negative values keep the current setting.
func (p *Provider) SetTTLs(batch, prices, history time.Duration) {
	if batch >= 0 {
		p.batchTTL = batch
	}
	if prices >= 0 {
		p.pricesTTL = prices
	}
	if history >= 0 {
		p.historyTTL = history
	}
}

// Markets implements market.Provider.
func (p *Provider) Markets(ctx context.Context) ([]market.AssetRecord, error) {
	key := p.cacheKey("markets")
	if cached, ok := p.cacheGet(key); ok {
		if records, ok := cached.([]market.AssetRecord); ok {
			out := make([]market.AssetRecord, len(records))
			copy(out, records)
			return out, nil
		}
	}

	records, err := p.client.Markets(ctx)
	if err != nil {
		return nil, err
	}
	p.cacheSet(key, records, p.batchTTL)

	out := make([]market.AssetRecord, len(records))
	copy(out, records)
	return out, nil
}

// SimplePrices implements market.Provider.
func (p *Provider) SimplePrices(ctx context.Context, ids []string) (map[string]float64, error) {
	if len(ids) == 0 {
		return map[string]float64{}, nil
	}

	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Strings(sorted)

	key := p.cacheKey("simple_price", strings.Join(sorted, ","))
	if cached, ok := p.cacheGet(key); ok {
		if prices, ok := cached.(map[string]float64); ok {
			out := make(map[string]float64, len(prices))
			for id, price := range prices {
				out[id] = price
			}
			return out, nil
		}
	}

	prices, err := p.client.SimplePrices(ctx, sorted)
	if err != nil {
		return nil, err
	}
	p.cacheSet(key, prices, p.pricesTTL)

	out := make(map[string]float64, len(prices))
	for id, price := range prices {
		out[id] = price
	}
	return out, nil
}

// MarketChart implements market.Provider.
func (p *Provider) MarketChart(ctx context.Context, id string, days int) ([]market.PricePoint, error) {
	key := p.cacheKey("market_chart", id, strconv.Itoa(days))
	if cached, ok := p.cacheGet(key); ok {
		if points, ok := cached.([]market.PricePoint); ok {
			out := make([]market.PricePoint, len(points))
			copy(out, points)
			return out, nil
		}
	}

	points, err := p.client.MarketChart(ctx, id, days)
	if err != nil {
		return nil, err
	}
	p.cacheSet(key, points, p.historyTTL)

	out := make([]market.PricePoint, len(points))
	copy(out, points)
	return out, nil
}

func (p *Provider) cacheKey(parts ...string) string {
	return p.name + ":" + strings.Join(parts, ":")
}

func (p *Provider) cacheGet(key string) (any, bool) {
	if p.cache == nil {
		return nil, false
	}
	return p.cache.Get(key)
}

func (p *Provider) cacheSet(key string, value any, ttl time.Duration) {
	if p.cache != nil {
		p.cache.Set(key, value, ttl)
	}
}
