package handler

import (
	"net/http"

	"timeline-api/internal/session"
	"timeline-api/internal/svc"
)

const sessionCookie = "sid"

// sessionFor returns the caller's session, minting the sid cookie on first
// contact. The JSON API never calls this; only the watchlist pages carry
// session state.
func sessionFor(svcCtx *svc.ServiceContext, w http.ResponseWriter, r *http.Request) *session.Session {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return svcCtx.Sessions.Get(c.Value)
	}

	id := session.NewID()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return svcCtx.Sessions.Get(id)
}
