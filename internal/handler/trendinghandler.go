package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"timeline-api/internal/logic"
	"timeline-api/internal/svc"
	"timeline-api/internal/types"
)

func TrendingHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.TrendingReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewTrendingLogic(r.Context(), svcCtx)
		resp, err := l.Trending(&req)
		if err != nil {
			writeError(w, r, err)
			return
		}
		httpx.OkJsonCtx(r.Context(), w, resp)
	}
}
