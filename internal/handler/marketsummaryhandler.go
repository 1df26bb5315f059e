package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"timeline-api/internal/logic"
	"timeline-api/internal/svc"
)

func MarketSummaryHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewMarketSummaryLogic(r.Context(), svcCtx)
		resp, err := l.MarketSummary()
		if err != nil {
			writeError(w, r, err)
			return
		}
		httpx.OkJsonCtx(r.Context(), w, resp)
	}
}
