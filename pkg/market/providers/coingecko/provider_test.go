package coingecko

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCache stores entries forever and remembers the TTLs it was handed.
type fakeCache struct {
	entries map[string]any
	ttls    map[string]time.Duration
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]any{}, ttls: map[string]time.Duration{}}
}

func (f *fakeCache) Get(key string) (any, bool) {
	v, ok := f.entries[key]
	return v, ok
}

func (f *fakeCache) Set(key string, value any, ttl time.Duration) {
	f.entries[key] = value
	f.ttls[key] = ttl
}

func TestProviderMarketsCachesBatch(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(marketsBody))
	}))
	defer srv.Close()

	cache := newFakeCache()
	p := NewProvider(WithCache(cache), WithClientOptions(WithBaseURL(srv.URL)))

	first, err := p.Markets(context.Background())
	require.NoError(t, err)
	second, err := p.Markets(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "second call must be served from cache")
	assert.Equal(t, first, second)
	assert.Equal(t, 2*time.Minute, cache.ttls["coingecko:markets"])
}

func TestProviderSimplePricesCacheKeyIncludesIDs(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"bitcoin":{"usd":30000}}`))
	}))
	defer srv.Close()

	cache := newFakeCache()
	p := NewProvider(WithCache(cache), WithClientOptions(WithBaseURL(srv.URL)))

	_, err := p.SimplePrices(context.Background(), []string{"bitcoin"})
	require.NoError(t, err)
	// Different id set means a different cache key, so the upstream is hit again.
	_, err = p.SimplePrices(context.Background(), []string{"bitcoin", "ethereum"})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)

	// Same ids in a different order share a key.
	_, err = p.SimplePrices(context.Background(), []string{"ethereum", "bitcoin"})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestProviderSimplePricesEmptySetSkipsNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("unexpected upstream call")
	}))
	defer srv.Close()

	p := NewProvider(WithClientOptions(WithBaseURL(srv.URL)))
	prices, err := p.SimplePrices(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, prices)
}

func TestProviderMarketChartUsesLongTTL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"prices":[[1700000000000,64000.1]]}`))
	}))
	defer srv.Close()

	cache := newFakeCache()
	p := NewProvider(WithCache(cache), WithClientOptions(WithBaseURL(srv.URL)))

	_, err := p.MarketChart(context.Background(), "bitcoin", 7)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, cache.ttls["coingecko:market_chart:bitcoin:7"])
}

func TestProviderSetTTLsOverridesDefaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/coins/bitcoin/market_chart" {
			_, _ = w.Write([]byte(`{"prices":[[1700000000000,64000.1]]}`))
			return
		}
		_, _ = w.Write([]byte(marketsBody))
	}))
	defer srv.Close()

	cache := newFakeCache()
	p := NewProvider(WithCache(cache), WithClientOptions(WithBaseURL(srv.URL)))
	p.SetTTLs(30*time.Second, -1, 10*time.Minute)

	_, err := p.Markets(context.Background())
	require.NoError(t, err)
	_, err = p.MarketChart(context.Background(), "bitcoin", 7)
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cache.ttls["coingecko:markets"])
	// Negative keeps the built-in prices lifetime.
	assert.Equal(t, defaultPricesTTL, p.pricesTTL)
	assert.Equal(t, 10*time.Minute, cache.ttls["coingecko:market_chart:bitcoin:7"])
}

func TestProviderWithoutCacheAlwaysFetches(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(marketsBody))
	}))
	defer srv.Close()

	p := NewProvider(WithClientOptions(WithBaseURL(srv.URL)))
	_, err := p.Markets(context.Background())
	require.NoError(t, err)
	_, err = p.Markets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}
