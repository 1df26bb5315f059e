package market

// AssetRecord is an immutable per-asset snapshot as reported by the upstream
// market data provider. Batches are replaced wholesale on each fetch; records
// are never mutated in place.
//
// Percentage changes are pointers because the upstream distinguishes "not
// reported" from 0% and so do we.
type AssetRecord struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Symbol        string   `json:"symbol"`
	Image         string   `json:"image"`
	CurrentPrice  float64  `json:"current_price"`
	MarketCap     float64  `json:"market_cap"`
	TotalVolume   float64  `json:"total_volume"`
	MarketCapRank *int     `json:"market_cap_rank"`
	Change1h      *float64 `json:"price_change_percentage_1h_in_currency"`
	Change24h     *float64 `json:"price_change_percentage_24h"`
	Change7d      *float64 `json:"price_change_percentage_7d_in_currency"`
}

// PricePoint is one sample in a historical price series.
type PricePoint struct {
	// TimestampMs is the sample time in Unix milliseconds, as delivered on
	// the wire.
	TimestampMs int64   `json:"t"`
	Price       float64 `json:"price"`
}
