package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mobosolo/jdr/internal/auth"
	apperrors "github.com/mobosolo/jdr/internal/errors"
	"github.com/mobosolo/jdr/internal/middleware"
)

// AdminHandler owns the back-office surface: the login flow plus the
// guarded CRUD routes of the content handlers.
type AdminHandler struct {
	creds        auth.Credentials
	news         *NewsHandler
	shows        *ShowHandler
	media        *MediaHandler
	contact      *ContactHandler
	guard        func(http.Handler) http.Handler
	loginLimit   func(http.Handler) http.Handler
	isProduction bool
}

func NewAdminHandler(
	creds auth.Credentials,
	news *NewsHandler,
	shows *ShowHandler,
	media *MediaHandler,
	contact *ContactHandler,
	guard func(http.Handler) http.Handler,
	loginLimit func(http.Handler) http.Handler,
	isProduction bool,
) *AdminHandler {
	return &AdminHandler{
		creds:        creds,
		news:         news,
		shows:        shows,
		media:        media,
		contact:      contact,
		guard:        guard,
		loginLimit:   loginLimit,
		isProduction: isProduction,
	}
}

func (h *AdminHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/csrf", h.CSRF)
	r.With(h.loginLimit).Post("/login", h.Login)
	r.Post("/logout", h.Logout)

	r.Group(func(r chi.Router) {
		r.Use(h.guard)

		r.Get("/me", h.Me)

		r.Post("/news", h.news.Create)
		r.Put("/news/{id}", h.news.Update)
		r.Delete("/news/{id}", h.news.Delete)

		r.Post("/shows", h.shows.Create)
		r.Put("/shows/{id}", h.shows.Update)
		r.Delete("/shows/{id}", h.shows.Delete)

		r.Post("/media", h.media.Create)
		r.Delete("/media/{id}", h.media.Delete)

		r.Get("/messages", h.contact.List)
		r.Delete("/messages/{id}", h.contact.Delete)
	})

	return r
}

// GET /api/admin/csrf
//
// Primes a fresh client: the middleware mints the double-submit cookie
// on this request, and the body carries the same token so the first
// state-changing request already has a matching header.
func (h *AdminHandler) CSRF(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"csrfToken": middleware.GetCSRFToken(r.Context()),
	})
}

// POST /api/admin/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	username := strings.TrimSpace(req.Username)
	password := strings.TrimSpace(req.Password)

	var fields []string
	if username == "" {
		fields = append(fields, "username")
	}
	if password == "" {
		fields = append(fields, "password")
	}
	if len(fields) > 0 {
		writeError(w, apperrors.Validation(fields...))
		return
	}

	ok, err := h.creds.Verify(username, password)
	if err != nil {
		if errors.Is(err, auth.ErrNotConfigured) {
			writeError(w, apperrors.Misconfigured())
			return
		}
		writeError(w, apperrors.Internal("Login failed."))
		return
	}
	if !ok {
		writeError(w, apperrors.Unauthorized())
		return
	}

	token := auth.IssueToken(h.creds.TokenSecret, time.Now())
	middleware.SetSessionCookie(w, token, h.isProduction)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// POST /api/admin/logout
//
// Tokens are stateless, so logout only removes the cookie; an already
// captured token stays valid until it expires.
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// GET /api/admin/me
func (h *AdminHandler) Me(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r.Context())
	if session == nil {
		writeError(w, apperrors.Unauthorized())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"expiresAt":     session.ExpiresAt.Format(time.RFC3339),
	})
}
