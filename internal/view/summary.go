package view

import (
	"math"

	"timeline-api/pkg/market"
)

// avgChangeWindow is the fixed divisor for the average 24h change. The window
// covers the leading 50 records in batch order; shorter batches contribute 0
// for the missing entries, diluting the average toward zero.
const avgChangeWindow = 50

// SummaryMetrics carries the market-wide derived numbers for the header cards.
type SummaryMetrics struct {
	TotalMarketCap float64
	TotalVolume    float64
	MarketCapText  string
	VolumeText     string
	Avg24hChange   float64
	// Sentiment is a synthetic fear/greed gauge computed locally from the
	// average 24h change. It is not a real external sentiment feed.
	Sentiment int
	// ReferencePrice is the spot price of the configured reference asset,
	// 0 when the asset is absent from the batch.
	ReferencePrice float64
}

// Summarize computes market-wide metrics over a batch in its supplied order
// (market-cap descending). Missing fields count as 0.
func Summarize(batch []market.AssetRecord, referenceID string) SummaryMetrics {
	var totalCap, totalVolume, changeSum, refPrice float64
	refSeen := false

	for i, rec := range batch {
		totalCap += rec.MarketCap
		totalVolume += rec.TotalVolume

		if i < avgChangeWindow && rec.Change24h != nil {
			changeSum += *rec.Change24h
		}
		if !refSeen && rec.ID == referenceID {
			refPrice = rec.CurrentPrice
			refSeen = true
		}
	}

	avg := changeSum / avgChangeWindow
	sentiment := math.Max(0, math.Min(100, 50+avg*2.2))

	return SummaryMetrics{
		TotalMarketCap: totalCap,
		TotalVolume:    totalVolume,
		MarketCapText:  FormatCurrencyShort(totalCap),
		VolumeText:     FormatCurrencyShort(totalVolume),
		Avg24hChange:   avg,
		Sentiment:      int(math.Round(sentiment)),
		ReferencePrice: refPrice,
	}
}
