package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"timeline-api/internal/svc"
	"timeline-api/internal/types"
)

func HealthHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.OkJsonCtx(r.Context(), w, &types.HealthResp{Status: "ok"})
	}
}
