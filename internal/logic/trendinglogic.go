package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"timeline-api/internal/svc"
	"timeline-api/internal/types"
	"timeline-api/internal/view"
)

// Chips is the fixed set of discovery chips shown above the trending table.
var Chips = []string{
	"Top 200",
	"Most Traded On-Chain",
	"AI Alert",
	"Market Mood",
	"Security Scan",
}

type TrendingLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewTrendingLogic(ctx context.Context, svcCtx *svc.ServiceContext) *TrendingLogic {
	return &TrendingLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *TrendingLogic) Trending(req *types.TrendingReq) (*types.TrendingResp, error) {
	batch, err := l.svcCtx.Market.Markets(l.ctx)
	if err != nil {
		l.Errorf("trending: fetch batch: %v", err)
		return nil, err
	}

	matched := view.Filter(batch, req.Q)
	if len(matched) > req.Limit {
		matched = matched[:req.Limit]
	}

	rows := view.ProjectRows(matched)
	return &types.TrendingResp{
		Count: len(rows),
		Rows:  rows,
		Chips: Chips,
	}, nil
}
