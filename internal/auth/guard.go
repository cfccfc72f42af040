package auth

import (
	"context"
	"net/http"

	"github.com/plumeworks/plume-backend/internal/db"
	"github.com/plumeworks/plume-backend/internal/session"
)

// SessionCookie is the name of the cookie holding the signed session token.
const SessionCookie = "session_id"

type contextKey string

const contextUserKey contextKey = "currentUser"

// CurrentUser returns the user resolved for this request, if any. The value
// is populated by Hydrate and is valid for the current request only.
func CurrentUser(ctx context.Context) (*User, bool) {
	user, ok := ctx.Value(contextUserKey).(*User)
	return user, ok
}

// Hydrate resolves the session cookie into a full user record at the start
// of every request. A missing cookie, a token that fails verification, or a
// token naming an id with no matching row all leave the request anonymous
// rather than failing it; only an infrastructure error aborts the request.
func Hydrate(codec *session.Codec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			data, ok := codec.Decode(cookie.Value)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			provider, ok := db.FromContext(r.Context())
			if !ok {
				http.Error(w, "No database available", http.StatusInternalServerError)
				return
			}

			user, err := NewStore(provider).FindByID(r.Context(), data.UserID)
			if err != nil {
				http.Error(w, "Failed to load user", http.StatusInternalServerError)
				return
			}
			if user == nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), contextUserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireLogin wraps a protected handler, redirecting anonymous requests to
// the login endpoint. It composes with any handler and is not tied to a
// particular route.
func RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r.Context()); !ok {
			http.Redirect(w, r, "/auth/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
