package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	AdminUser       = "admin"
	adminRealm      = `Basic realm="choretracker", charset="UTF-8"`
	maxAuthFailures = 5
	authWindow      = 15 * time.Minute
)

// RequireAdmin guards destructive routes with HTTP basic auth checked against
// a bcrypt hash. An empty hash disables the guard. After maxAuthFailures bad
// passwords from one client IP, every request from it gets 429 until the
// window expires.
func RequireAdmin(hash string, failures *RateLimiter, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if hash == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := "admin:" + RealIP(r)
			if failures.Exceeded(key, maxAuthFailures) {
				w.Header().Set("Retry-After", retryAfter(authWindow))
				http.Error(w, "Too many requests", http.StatusTooManyRequests)
				return
			}

			user, pass, ok := r.BasicAuth()
			if ok && subtle.ConstantTimeCompare([]byte(user), []byte(AdminUser)) == 1 &&
				bcrypt.CompareHashAndPassword([]byte(hash), []byte(pass)) == nil {
				next.ServeHTTP(w, r)
				return
			}

			if ok {
				failures.Allow(key, maxAuthFailures, authWindow)
				logger.Warn("admin auth failed", "remote", RealIP(r), "path", r.URL.Path)
			}
			w.Header().Set("WWW-Authenticate", adminRealm)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
		})
	}
}

// HashPassword returns the bcrypt hash stored in CHORES_ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
