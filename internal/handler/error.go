package handler

import (
	"errors"
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"timeline-api/pkg/market"
)

// upstreamDetail is the fixed detail message returned whenever the market
// data provider is unreachable.
const upstreamDetail = "CoinGecko is unavailable"

// writeError maps upstream failures to 503 with a plain status+detail body;
// everything else goes through the framework default.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, market.ErrUpstreamUnavailable) {
		httpx.WriteJsonCtx(r.Context(), w, http.StatusServiceUnavailable, map[string]string{
			"detail": upstreamDetail,
		})
		return
	}
	httpx.ErrorCtx(r.Context(), w, err)
}
