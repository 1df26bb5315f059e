package coingecko

// marketChartResponse is the wire shape of /coins/{id}/market_chart: arrays of
// [timestamp-ms, value] pairs.
type marketChartResponse struct {
	Prices [][]float64 `json:"prices"`
}
