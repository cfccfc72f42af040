package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/plumeworks/plume-backend/internal/db"
	"github.com/plumeworks/plume-backend/internal/session"
)

// Handlers carries the request-independent collaborators of the auth
// endpoints. Everything request-scoped comes out of the request context.
type Handlers struct {
	codec *session.Codec
}

func NewHandlers(codec *session.Codec) *Handlers {
	return &Handlers{codec: codec}
}

// storeFromRequest builds a credential store over the request's connection
// provider. The provider is installed by db.Middleware; a request arriving
// without one is a wiring bug, not a user error.
func storeFromRequest(w http.ResponseWriter, r *http.Request) (*Store, bool) {
	provider, ok := db.FromContext(r.Context())
	if !ok {
		http.Error(w, "No database available", http.StatusInternalServerError)
		return nil, false
	}
	return NewStore(provider), true
}

// RegisterForm answers GET /auth/register. There is no server-side template
// layer; clients submit the fields directly.
func (h *Handlers) RegisterForm(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "POST username and password to register.")
}

// Register creates a new account. It never logs the new user in; on success
// the client is sent to the login endpoint.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	store, ok := storeFromRequest(w, r)
	if !ok {
		return
	}

	if _, err := store.CreateUser(r.Context(), username, password); err != nil {
		var verr *ValidationError
		var derr *DuplicateUsernameError
		switch {
		case errors.As(err, &verr):
			http.Error(w, verr.Error(), http.StatusBadRequest)
		case errors.As(err, &derr):
			http.Error(w, derr.Error(), http.StatusConflict)
		default:
			http.Error(w, "Failed to register user", http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
}

// LoginForm answers GET /auth/login.
func (h *Handlers) LoginForm(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "POST username and password to log in.")
}

// Login verifies credentials and, on success, hands the client a signed
// session token. Existence is checked before the hash comparison, and a
// failed attempt leaves any existing session untouched.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	if username == "" {
		http.Error(w, (&ValidationError{Field: "Username"}).Error(), http.StatusBadRequest)
		return
	}
	if password == "" {
		http.Error(w, (&ValidationError{Field: "Password"}).Error(), http.StatusBadRequest)
		return
	}

	store, ok := storeFromRequest(w, r)
	if !ok {
		return
	}

	user, err := store.FindByUsername(r.Context(), username)
	if err != nil {
		http.Error(w, "Failed to look up user", http.StatusInternalServerError)
		return
	}
	if user == nil {
		authError(w, &AuthenticationError{Reason: "Incorrect username"})
		return
	}
	if !user.CheckPassword(password) {
		authError(w, &AuthenticationError{Reason: "Incorrect password"})
		return
	}

	token, err := h.codec.Encode(session.Data{UserID: user.ID})
	if err != nil {
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout clears the session cookie unconditionally, so logging out while
// already anonymous is a no-op.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

type MeResponse struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// Me reports the authenticated user. The route is wrapped in RequireLogin,
// so an anonymous request never reaches it.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := CurrentUser(r.Context())
	if !ok {
		http.Error(w, "Couldn't find user", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MeResponse{
		UserID:   user.ID,
		Username: user.Username,
	})
}

func authError(w http.ResponseWriter, err *AuthenticationError) {
	http.Error(w, err.Error(), http.StatusUnauthorized)
}
