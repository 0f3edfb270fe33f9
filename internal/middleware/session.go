package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mobosolo/jdr/internal/auth"
)

const AdminTokenCookie = "admin_token"

type contextKey string

const SessionContextKey contextKey = "adminSession"

// GetSession returns the verified admin session, or nil outside the
// guarded subtree.
func GetSession(ctx context.Context) *auth.Session {
	if session, ok := ctx.Value(SessionContextKey).(*auth.Session); ok {
		return session
	}
	return nil
}

// AdminGuard protects the back-office routes. The token travels in an
// httpOnly cookie and is verified statelessly; no session store is
// consulted.
type AdminGuard struct {
	secret string
}

func NewAdminGuard(secret string) *AdminGuard {
	return &AdminGuard{secret: secret}
}

func (m *AdminGuard) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.secret == "" {
			log.Error().Msg("admin guard: token secret not configured")
			writeJSON(w, http.StatusInternalServerError, map[string]string{
				"error": "Server misconfigured.",
			})
			return
		}

		cookie, err := r.Cookie(AdminTokenCookie)
		if err != nil || cookie.Value == "" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{
				"error": "Unauthorized",
			})
			return
		}

		// Missing, malformed, tampered and expired tokens all produce
		// the same response so the client learns nothing about why.
		session, ok := auth.VerifyToken(cookie.Value, m.secret, time.Now())
		if !ok {
			writeJSON(w, http.StatusUnauthorized, map[string]string{
				"error": "Unauthorized",
			})
			return
		}

		ctx := context.WithValue(r.Context(), SessionContextKey, &session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SetSessionCookie installs the admin token after a successful login.
func SetSessionCookie(w http.ResponseWriter, token string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     AdminTokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.TokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:   AdminTokenCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
}
