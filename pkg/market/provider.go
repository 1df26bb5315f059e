package market

import "context"

// Provider exposes normalized market data from an external source.
//
// Every method either fully succeeds or fails with an error wrapping
// ErrUpstreamUnavailable; there is no partial-result mode.
type Provider interface {
	// Markets returns the current batch of assets ordered by descending
	// market capitalization, up to 100 entries.
	Markets(ctx context.Context) ([]AssetRecord, error)
	// SimplePrices returns current prices keyed by asset id. An empty id
	// list returns an empty map without touching the network.
	SimplePrices(ctx context.Context, ids []string) (map[string]float64, error)
	// MarketChart returns a historical price series for one asset over the
	// given day window.
	MarketChart(ctx context.Context, id string, days int) ([]PricePoint, error)
}
