package logic

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"timeline-api/internal/session"
	"timeline-api/internal/svc"
	"timeline-api/internal/view"
	"timeline-api/internal/webui"
)

const watchlistRowLimit = 50

type WatchlistLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewWatchlistLogic(ctx context.Context, svcCtx *svc.ServiceContext) *WatchlistLogic {
	return &WatchlistLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Page assembles the session dashboard: the asset table with favorite stars
// plus the portfolio block valued against live prices. It fails only when the
// batch itself is unreachable; a price lookup failure degrades to stale
// positions valued at 0.
func (l *WatchlistLogic) Page(sess *session.Session, query, flash string) (*webui.WatchlistData, error) {
	batch, err := l.svcCtx.Market.Markets(l.ctx)
	if err != nil {
		l.Errorf("watchlist: fetch batch: %v", err)
		return nil, err
	}

	matched := view.Filter(batch, query)
	if len(matched) > watchlistRowLimit {
		matched = matched[:watchlistRowLimit]
	}

	rows := make([]webui.WatchlistRow, len(matched))
	for i, rec := range matched {
		rows[i] = webui.WatchlistRow{
			DisplayRow: view.ProjectRow(rec),
			Starred:    sess.Favorites.Contains(rec.ID),
		}
	}

	prices := map[string]float64{}
	stale := false
	if sess.Ledger.Len() > 0 {
		prices, err = l.svcCtx.Market.SimplePrices(l.ctx, sess.Ledger.AssetIDs())
		if err != nil {
			l.Errorf("watchlist: fetch prices: %v", err)
			prices = map[string]float64{}
			stale = true
		}
	}
	valued, total := sess.Ledger.Value(prices)
	positions := make([]webui.PositionView, len(valued))
	for i, p := range valued {
		positions[i] = webui.PositionView{
			Index:        p.Index,
			AssetID:      p.AssetID,
			QuantityText: p.Quantity.String(),
			ValueText:    "$" + p.Value.StringFixed(2),
		}
	}

	return &webui.WatchlistData{
		Query:       query,
		Summary:     view.Summarize(batch, l.svcCtx.Config.ReferenceAsset),
		UpdatedAt:   time.Now().UTC().Format(time.RFC3339),
		Rows:        rows,
		Favorites:   sess.Favorites.Sorted(),
		Positions:   positions,
		TotalText:   "$" + total.StringFixed(2),
		Flash:       flash,
		PricesStale: stale,
	}, nil
}

// AddPosition appends a ledger entry after validating the asset id against
// the current batch.
func (l *WatchlistLogic) AddPosition(sess *session.Session, coin, amount string) error {
	batch, err := l.svcCtx.Market.Markets(l.ctx)
	if err != nil {
		l.Errorf("portfolio add: fetch batch: %v", err)
		return err
	}

	known := make(map[string]struct{}, len(batch))
	for _, rec := range batch {
		known[rec.ID] = struct{}{}
	}
	return sess.Ledger.Add(coin, amount, known)
}
