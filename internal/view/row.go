// Package view turns raw asset records into presentation-ready rows and
// summary metrics. Everything here is pure and total: malformed or missing
// input degrades to defaults, it never produces an error.
package view

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"timeline-api/pkg/market"
)

// UnknownMarker is rendered where the upstream did not report a percentage
// change. "Not reported" is a materially different fact from 0%.
const UnknownMarker = "—"

var currencyPrinter = message.NewPrinter(language.English)

// DisplayRow is the per-asset presentation row. Raw numeric fields keep the
// upstream nullability for API consumers; the *Text fields are pre-formatted
// for the dashboards. Rows are regenerated on every render, never persisted.
type DisplayRow struct {
	Rank      *int     `json:"rank"`
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Symbol    string   `json:"symbol"`
	Image     string   `json:"image"`
	Price     float64  `json:"price"`
	Change1h  *float64 `json:"change1h"`
	Change24h *float64 `json:"change24h"`
	Change7d  *float64 `json:"change7d"`
	MarketCap float64  `json:"marketCap"`
	Volume24h float64  `json:"volume24h"`

	PriceText     string `json:"priceText"`
	MarketCapText string `json:"marketCapText"`
	VolumeText    string `json:"volumeText"`
	Change1hText  string `json:"change1hText"`
	Change24hText string `json:"change24hText"`
	Change7dText  string `json:"change7dText"`
}

// ProjectRow maps one asset record to its display row.
func ProjectRow(rec market.AssetRecord) DisplayRow {
	return DisplayRow{
		Rank:      rec.MarketCapRank,
		ID:        rec.ID,
		Name:      rec.Name,
		Symbol:    strings.ToUpper(rec.Symbol),
		Image:     rec.Image,
		Price:     rec.CurrentPrice,
		Change1h:  rec.Change1h,
		Change24h: rec.Change24h,
		Change7d:  rec.Change7d,
		MarketCap: rec.MarketCap,
		Volume24h: rec.TotalVolume,

		PriceText:     FormatCurrency(rec.CurrentPrice),
		MarketCapText: FormatCurrencyShort(rec.MarketCap),
		VolumeText:    FormatCurrencyShort(rec.TotalVolume),
		Change1hText:  FormatPercent(rec.Change1h),
		Change24hText: FormatPercent(rec.Change24h),
		Change7dText:  FormatPercent(rec.Change7d),
	}
}

// ProjectRows maps a whole batch in order.
func ProjectRows(batch []market.AssetRecord) []DisplayRow {
	rows := make([]DisplayRow, len(batch))
	for i, rec := range batch {
		rows[i] = ProjectRow(rec)
	}
	return rows
}

// FormatCurrencyShort renders a dollar amount with magnitude abbreviation.
// Boundaries are inclusive: exactly 1e9 is "$1.00B".
func FormatCurrencyShort(value float64) string {
	switch {
	case value >= 1e12:
		return fmt.Sprintf("$%.2fT", value/1e12)
	case value >= 1e9:
		return fmt.Sprintf("$%.2fB", value/1e9)
	case value >= 1e6:
		return fmt.Sprintf("$%.2fM", value/1e6)
	default:
		return FormatCurrency(value)
	}
}

// FormatCurrency renders a grouped-decimal dollar amount: $1,234.56.
func FormatCurrency(value float64) string {
	return currencyPrinter.Sprintf("$%.2f", value)
}

// FormatPercent renders a directional percentage ("▲ 1.23%" / "▼ 0.45%") with
// the up glyph for zero and above. nil renders the unknown marker, never
// "0.00%".
func FormatPercent(value *float64) string {
	if value == nil {
		return UnknownMarker
	}
	glyph := "▲"
	v := *value
	if v < 0 {
		glyph = "▼"
		v = -v
	}
	return fmt.Sprintf("%s %.2f%%", glyph, v)
}

// PercentClass returns the CSS class for a nullable percentage: pos, neg, or
// muted for unreported values.
func PercentClass(value *float64) string {
	switch {
	case value == nil:
		return "muted"
	case *value < 0:
		return "neg"
	default:
		return "pos"
	}
}
