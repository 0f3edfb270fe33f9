package middleware

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	loginMaxAttempts    = 5
	loginWindowDuration = time.Minute
	loginCleanupPeriod  = 5 * time.Minute
)

// LoginLimiter decides whether another login attempt from ip may
// proceed. The in-memory and Redis implementations are interchangeable.
type LoginLimiter interface {
	Allow(ctx context.Context, ip string) bool
}

type loginAttempt struct {
	count       int
	windowStart time.Time
}

// MemoryLoginLimiter is a fixed-window per-IP counter for deployments
// without Redis. State is per-process, which is acceptable for a
// single-instance back office.
type MemoryLoginLimiter struct {
	mu          sync.Mutex
	attempts    map[string]*loginAttempt
	lastCleanup time.Time
}

func NewMemoryLoginLimiter() *MemoryLoginLimiter {
	return &MemoryLoginLimiter{
		attempts:    make(map[string]*loginAttempt),
		lastCleanup: time.Now(),
	}
}

func (l *MemoryLoginLimiter) cleanup() {
	now := time.Now()
	if now.Sub(l.lastCleanup) < loginCleanupPeriod {
		return
	}
	l.lastCleanup = now

	for ip, attempt := range l.attempts {
		if now.Sub(attempt.windowStart) > loginWindowDuration {
			delete(l.attempts, ip)
		}
	}
}

func (l *MemoryLoginLimiter) Allow(_ context.Context, ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.cleanup()

	now := time.Now()
	attempt, exists := l.attempts[ip]

	if !exists {
		l.attempts[ip] = &loginAttempt{count: 1, windowStart: now}
		return true
	}

	if now.Sub(attempt.windowStart) > loginWindowDuration {
		attempt.count = 1
		attempt.windowStart = now
		return true
	}

	if attempt.count >= loginMaxAttempts {
		return false
	}

	attempt.count++
	return true
}

type LoginRateLimitMiddleware struct {
	limiter LoginLimiter
}

func NewLoginRateLimitMiddleware(limiter LoginLimiter) *LoginRateLimitMiddleware {
	return &LoginRateLimitMiddleware{limiter: limiter}
}

func (m *LoginRateLimitMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.limiter.Allow(r.Context(), clientIP(r)) {
			w.Header().Set("Retry-After", "60")
			writeJSON(w, http.StatusTooManyRequests, map[string]string{
				"error": "Too many attempts. Please try again later.",
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP prefers the first X-Forwarded-For hop, which is what the
// reverse proxy in front of the API fills in.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if idx := strings.IndexByte(forwarded, ','); idx >= 0 {
			return strings.TrimSpace(forwarded[:idx])
		}
		return strings.TrimSpace(forwarded)
	}
	return r.RemoteAddr
}
