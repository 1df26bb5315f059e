package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/core/logx"

	"timeline-api/internal/logic"
	"timeline-api/internal/svc"
	"timeline-api/internal/webui"
)

// DashboardHandler serves the read-only market overview page.
func DashboardHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		query := r.FormValue("q")

		l := logic.NewDashboardLogic(r.Context(), svcCtx)
		data, err := l.Dashboard(query)
		if err != nil {
			renderReplica(w, r, webui.ReplicaData{Query: query, Unavailable: true})
			return
		}
		renderReplica(w, r, *data)
	}
}

func renderReplica(w http.ResponseWriter, r *http.Request, data webui.ReplicaData) {
	if err := webui.RenderReplica(w, data); err != nil {
		logx.WithContext(r.Context()).Errorf("dashboard: render: %v", err)
	}
}
