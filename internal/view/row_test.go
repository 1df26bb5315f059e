package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeline-api/pkg/market"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestFormatCurrencyShort(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"trillions", 2.26e12, "$2.26T"},
		{"billions", 1_280_000_000_000.0 / 1000, "$1.28B"},
		{"exactly one billion is B, not M", 1_000_000_000, "$1.00B"},
		{"just below one billion falls to M", 999_999_999.99, "$1000.00M"},
		{"millions", 57_910_000, "$57.91M"},
		{"exactly one million", 1_000_000, "$1.00M"},
		{"plain decimal with grouping", 5318.89, "$5,318.89"},
		{"just below one million", 999_999.99, "$999,999.99"},
		{"zero", 0, "$0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrencyShort(tt.value))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "▲ 1.82%", FormatPercent(floatPtr(1.82)))
	assert.Equal(t, "▼ 2.04%", FormatPercent(floatPtr(-2.04)))
	assert.Equal(t, "▲ 0.00%", FormatPercent(floatPtr(0)), "zero is a reported fact and points up")
	assert.Equal(t, UnknownMarker, FormatPercent(nil), "unreported must not render as 0.00%")
}

func TestPercentClass(t *testing.T) {
	assert.Equal(t, "pos", PercentClass(floatPtr(0.5)))
	assert.Equal(t, "pos", PercentClass(floatPtr(0)))
	assert.Equal(t, "neg", PercentClass(floatPtr(-0.5)))
	assert.Equal(t, "muted", PercentClass(nil))
}

func TestProjectRow(t *testing.T) {
	rec := market.AssetRecord{
		ID:            "bitcoin",
		Name:          "Bitcoin",
		Symbol:        "btc",
		Image:         "btc.png",
		CurrentPrice:  65000.5,
		MarketCap:     1.28e12,
		TotalVolume:   3.2e10,
		MarketCapRank: intPtr(1),
		Change1h:      floatPtr(0.4),
		Change24h:     floatPtr(-1.2),
	}

	row := ProjectRow(rec)
	assert.Equal(t, "BTC", row.Symbol)
	assert.Equal(t, "$65,000.50", row.PriceText)
	assert.Equal(t, "$1.28T", row.MarketCapText)
	assert.Equal(t, "$32.00B", row.VolumeText)
	assert.Equal(t, "▲ 0.40%", row.Change1hText)
	assert.Equal(t, "▼ 1.20%", row.Change24hText)
	assert.Equal(t, UnknownMarker, row.Change7dText)
	assert.Nil(t, row.Change7d)
	require.NotNil(t, row.Rank)
	assert.Equal(t, 1, *row.Rank)
}

func TestProjectRowZeroValueRecord(t *testing.T) {
	// Total projection: a record with everything missing still yields a row.
	row := ProjectRow(market.AssetRecord{ID: "ghost"})
	assert.Equal(t, "$0.00", row.PriceText)
	assert.Equal(t, "$0.00", row.MarketCapText)
	assert.Equal(t, UnknownMarker, row.Change1hText)
	assert.Nil(t, row.Rank)
}

func TestProjectedCapMatchesAggregate(t *testing.T) {
	batch := []market.AssetRecord{
		{ID: "a", MarketCap: 1.5e9},
		{ID: "b", MarketCap: 2.25e8},
		{ID: "c"},
		{ID: "d", MarketCap: 9.99e11},
	}

	var projected float64
	for _, row := range ProjectRows(batch) {
		projected += row.MarketCap
	}
	assert.InDelta(t, Summarize(batch, "bitcoin").TotalMarketCap, projected, 1e-6)
}
