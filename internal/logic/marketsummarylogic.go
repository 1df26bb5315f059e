package logic

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"timeline-api/internal/svc"
	"timeline-api/internal/types"
	"timeline-api/internal/view"
)

type MarketSummaryLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewMarketSummaryLogic(ctx context.Context, svcCtx *svc.ServiceContext) *MarketSummaryLogic {
	return &MarketSummaryLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *MarketSummaryLogic) MarketSummary() (*types.MarketSummaryResp, error) {
	batch, err := l.svcCtx.Market.Markets(l.ctx)
	if err != nil {
		l.Errorf("market summary: fetch batch: %v", err)
		return nil, err
	}

	metrics := view.Summarize(batch, l.svcCtx.Config.ReferenceAsset)
	return &types.MarketSummaryResp{
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
		Cards: types.SummaryCards{
			MarketCap:          metrics.MarketCapText,
			MarketCapChange24h: metrics.Avg24hChange,
			Volume24h:          metrics.VolumeText,
			BtcPrice:           metrics.ReferencePrice,
			FearGreed:          metrics.Sentiment,
		},
	}, nil
}
