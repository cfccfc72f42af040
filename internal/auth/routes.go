package auth

import (
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"github.com/plumeworks/plume-backend/internal/middleware"
	"github.com/plumeworks/plume-backend/internal/session"
)

// SetupRoutes wires the auth endpoints onto a sub-router. The credential
// endpoints share a per-client throttle so a single client cannot hammer
// login or registration.
func SetupRoutes(codec *session.Codec) chi.Router {
	h := NewHandlers(codec)
	throttle := middleware.Throttle(rate.Every(100*time.Millisecond), 20)

	r := chi.NewRouter()
	r.Get("/register", h.RegisterForm)
	r.With(throttle).Post("/register", h.Register)
	r.Get("/login", h.LoginForm)
	r.With(throttle).Post("/login", h.Login)
	r.Get("/logout", h.Logout)
	r.With(RequireLogin).Get("/me", h.Me)
	return r
}
