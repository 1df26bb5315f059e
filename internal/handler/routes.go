package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest"

	"timeline-api/internal/svc"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes([]rest.Route{
		{
			Method:  http.MethodGet,
			Path:    "/api/health",
			Handler: HealthHandler(serverCtx),
		},
		{
			Method:  http.MethodGet,
			Path:    "/api/market-summary",
			Handler: MarketSummaryHandler(serverCtx),
		},
		{
			Method:  http.MethodGet,
			Path:    "/api/trending",
			Handler: TrendingHandler(serverCtx),
		},
		{
			Method:  http.MethodGet,
			Path:    "/api/history",
			Handler: HistoryHandler(serverCtx),
		},
	})

	server.AddRoutes([]rest.Route{
		{
			Method:  http.MethodGet,
			Path:    "/",
			Handler: DashboardHandler(serverCtx),
		},
		{
			Method:  http.MethodGet,
			Path:    "/watchlist",
			Handler: WatchlistHandler(serverCtx),
		},
		{
			Method:  http.MethodPost,
			Path:    "/watchlist/portfolio/add",
			Handler: PortfolioAddHandler(serverCtx),
		},
		{
			Method:  http.MethodPost,
			Path:    "/watchlist/portfolio/remove",
			Handler: PortfolioRemoveHandler(serverCtx),
		},
		{
			Method:  http.MethodPost,
			Path:    "/watchlist/favorites/toggle",
			Handler: FavoriteToggleHandler(serverCtx),
		},
	})
}
