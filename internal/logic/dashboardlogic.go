package logic

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"timeline-api/internal/svc"
	"timeline-api/internal/view"
	"timeline-api/internal/webui"
)

// dashboardRowLimit caps the overview table, matching the JSON API default.
const dashboardRowLimit = 15

type DashboardLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewDashboardLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DashboardLogic {
	return &DashboardLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Dashboard assembles the read-only market overview page.
func (l *DashboardLogic) Dashboard(query string) (*webui.ReplicaData, error) {
	batch, err := l.svcCtx.Market.Markets(l.ctx)
	if err != nil {
		l.Errorf("dashboard: fetch batch: %v", err)
		return nil, err
	}

	matched := view.Filter(batch, query)
	if len(matched) > dashboardRowLimit {
		matched = matched[:dashboardRowLimit]
	}

	return &webui.ReplicaData{
		Query:     query,
		Summary:   view.Summarize(batch, l.svcCtx.Config.ReferenceAsset),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
		Rows:      view.ProjectRows(matched),
		Chips:     Chips,
	}, nil
}
