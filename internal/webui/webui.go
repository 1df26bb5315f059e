// Package webui renders the two server-side dashboard variants. Both are thin
// shells over the same projection/summary core; only the watchlist variant
// carries session state (favorites, portfolio).
package webui

import (
	"embed"
	"html/template"
	"io"

	"timeline-api/internal/view"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var funcs = template.FuncMap{
	"pctClass": view.PercentClass,
	"pct": func(v float64) string {
		return view.FormatPercent(&v)
	},
	"pctClassVal": func(v float64) string {
		return view.PercentClass(&v)
	},
	"money": view.FormatCurrency,
}

var (
	replicaTmpl   = template.Must(template.New("replica.tmpl").Funcs(funcs).ParseFS(templateFS, "templates/replica.tmpl"))
	watchlistTmpl = template.Must(template.New("watchlist.tmpl").Funcs(funcs).ParseFS(templateFS, "templates/watchlist.tmpl"))
)

// ReplicaData feeds the read-only market overview page.
type ReplicaData struct {
	Query       string
	Summary     view.SummaryMetrics
	UpdatedAt   string
	Rows        []view.DisplayRow
	Chips       []string
	Unavailable bool
}

// WatchlistRow decorates a display row with the session's star state.
type WatchlistRow struct {
	view.DisplayRow
	Starred bool
}

// PositionView is one valued portfolio entry, formatted for display.
type PositionView struct {
	Index        int
	AssetID      string
	QuantityText string
	ValueText    string
}

// WatchlistData feeds the session dashboard: rows with stars plus the
// portfolio block.
type WatchlistData struct {
	Query       string
	Summary     view.SummaryMetrics
	UpdatedAt   string
	Rows        []WatchlistRow
	Favorites   []string
	Positions   []PositionView
	TotalText   string
	Flash       string
	PricesStale bool
	Unavailable bool
}

// RenderReplica writes the overview page.
func RenderReplica(w io.Writer, data ReplicaData) error {
	return replicaTmpl.ExecuteTemplate(w, "replica.tmpl", data)
}

// RenderWatchlist writes the session dashboard page.
func RenderWatchlist(w io.Writer, data WatchlistData) error {
	return watchlistTmpl.ExecuteTemplate(w, "watchlist.tmpl", data)
}
