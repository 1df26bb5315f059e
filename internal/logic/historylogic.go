package logic

import (
	"context"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"

	"timeline-api/internal/svc"
	"timeline-api/internal/types"
)

type HistoryLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewHistoryLogic(ctx context.Context, svcCtx *svc.ServiceContext) *HistoryLogic {
	return &HistoryLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *HistoryLogic) History(req *types.HistoryReq) (*types.HistoryResp, error) {
	id := strings.ToLower(strings.TrimSpace(req.ID))
	points, err := l.svcCtx.Market.MarketChart(l.ctx, id, req.Days)
	if err != nil {
		l.Errorf("history: fetch chart id=%s days=%d: %v", id, req.Days, err)
		return nil, err
	}
	return &types.HistoryResp{ID: id, Points: points}, nil
}
