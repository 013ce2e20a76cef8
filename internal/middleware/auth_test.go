package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func adminHandler(t *testing.T, hash string) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return RequireAdmin(hash, NewRateLimiter(), logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
}

func testHash(t *testing.T, password string) string {
	t.Helper()
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return string(b)
}

func TestRequireAdminDisabled(t *testing.T) {
	h := adminHandler(t, "")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("POST", "/children/1/delete/", nil))
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
}

func TestRequireAdmin(t *testing.T) {
	h := adminHandler(t, testHash(t, "s3cret"))

	tests := []struct {
		name string
		user string
		pass string
		set  bool
		want int
	}{
		{"no credentials", "", "", false, http.StatusUnauthorized},
		{"wrong password", AdminUser, "nope", true, http.StatusUnauthorized},
		{"wrong user", "root", "s3cret", true, http.StatusUnauthorized},
		{"valid", AdminUser, "s3cret", true, http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/chores/1/delete/", nil)
			if tt.set {
				req.SetBasicAuth(tt.user, tt.pass)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
			if tt.want == http.StatusUnauthorized && rec.Header().Get("WWW-Authenticate") == "" {
				t.Error("missing WWW-Authenticate header")
			}
		})
	}
}

func TestRequireAdminLockout(t *testing.T) {
	h := adminHandler(t, testHash(t, "s3cret"))

	for i := 0; i < maxAuthFailures; i++ {
		req := httptest.NewRequest("POST", "/chores/1/delete/", nil)
		req.SetBasicAuth(AdminUser, "guess")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("attempt %d: status = %d, want 401", i+1, rec.Code)
		}
	}

	req := httptest.NewRequest("POST", "/chores/1/delete/", nil)
	req.SetBasicAuth(AdminUser, "s3cret")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("status after %d failures = %d, want 429", maxAuthFailures, rec.Code)
	}
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("pw")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("pw")); err != nil {
		t.Errorf("hash does not verify: %v", err)
	}
}
