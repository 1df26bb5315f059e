package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"

	"timeline-api/internal/logic"
	"timeline-api/internal/session"
	"timeline-api/internal/svc"
	"timeline-api/internal/webui"
	"timeline-api/pkg/market"
)

// WatchlistHandler serves the session dashboard.
func WatchlistHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFor(svcCtx, w, r)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		query := r.FormValue("q")
		flash := r.FormValue("err")

		l := logic.NewWatchlistLogic(r.Context(), svcCtx)
		data, err := l.Page(sess, query, flash)
		if err != nil {
			renderWatchlist(w, r, webui.WatchlistData{Query: query, Flash: flash, Unavailable: true})
			return
		}
		renderWatchlist(w, r, *data)
	}
}

// PortfolioAddHandler appends a position. Validation failures redirect back
// with an inline message and leave the ledger unchanged.
func PortfolioAddHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFor(svcCtx, w, r)

		l := logic.NewWatchlistLogic(r.Context(), svcCtx)
		if err := l.AddPosition(sess, r.FormValue("coin"), r.FormValue("amount")); err != nil {
			if errors.Is(err, market.ErrUpstreamUnavailable) {
				redirectWatchlist(w, r, upstreamDetail)
				return
			}
			redirectWatchlist(w, r, err.Error())
			return
		}
		redirectWatchlist(w, r, "")
	}
}

// PortfolioRemoveHandler removes a position by insertion index. Out-of-range
// indices are rejected without mutating state.
func PortfolioRemoveHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFor(svcCtx, w, r)

		index, err := strconv.Atoi(strings.TrimSpace(r.FormValue("index")))
		if err != nil {
			redirectWatchlist(w, r, session.ErrIndexOutOfRange.Error())
			return
		}
		if err := sess.Ledger.Remove(index); err != nil {
			redirectWatchlist(w, r, err.Error())
			return
		}
		redirectWatchlist(w, r, "")
	}
}

// FavoriteToggleHandler flips the star for one asset id.
func FavoriteToggleHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFor(svcCtx, w, r)

		id := strings.ToLower(strings.TrimSpace(r.FormValue("id")))
		if id != "" {
			sess.Favorites.Toggle(id)
		}

		target := "/watchlist"
		if q := r.FormValue("q"); q != "" {
			target += "?q=" + url.QueryEscape(q)
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
	}
}

func redirectWatchlist(w http.ResponseWriter, r *http.Request, errMsg string) {
	target := "/watchlist"
	if errMsg != "" {
		target += "?err=" + url.QueryEscape(errMsg)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func renderWatchlist(w http.ResponseWriter, r *http.Request, data webui.WatchlistData) {
	if err := webui.RenderWatchlist(w, data); err != nil {
		logx.WithContext(r.Context()).Errorf("watchlist: render: %v", err)
	}
}
