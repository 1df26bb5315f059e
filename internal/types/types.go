// Request/response types for the JSON API. Kept in goctl layout: handlers
// parse into these, logic fills them.
package types

import (
	"timeline-api/internal/view"
	"timeline-api/pkg/market"
)

type HealthResp struct {
	Status string `json:"status"`
}

type SummaryCards struct {
	MarketCap          string  `json:"marketCap"`
	MarketCapChange24h float64 `json:"marketCapChange24h"`
	Volume24h          string  `json:"volume24h"`
	BtcPrice           float64 `json:"btcPrice"`
	FearGreed          int     `json:"fearGreed"`
}

type MarketSummaryResp struct {
	UpdatedAt string       `json:"updatedAt"`
	Cards     SummaryCards `json:"cards"`
}

type TrendingReq struct {
	Q     string `form:"q,optional"`
	Limit int    `form:"limit,default=15,range=[1:100]"`
}

type TrendingResp struct {
	Count int               `json:"count"`
	Rows  []view.DisplayRow `json:"rows"`
	Chips []string          `json:"chips"`
}

type HistoryReq struct {
	ID   string `form:"id"`
	Days int    `form:"days,default=7,range=[1:90]"`
}

type HistoryResp struct {
	ID     string              `json:"id"`
	Points []market.PricePoint `json:"points"`
}
