package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func newProtected(cfg Config) http.Handler {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return Middleware(cfg)(inner)
}

func TestMiddlewareDisabled(t *testing.T) {
	h := newProtected(Config{Enabled: false})

	r := httptest.NewRequest(http.MethodPost, "/api/v1/profile", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Errorf("disabled auth blocked request: got %d", w.Code)
	}
}

func TestMiddlewareEnabled(t *testing.T) {
	h := newProtected(Config{Enabled: true, Token: "secret"})

	tests := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{"no token", "/api/v1/profile", "", http.StatusUnauthorized},
		{"wrong scheme", "/api/v1/profile", "Basic secret", http.StatusUnauthorized},
		{"wrong token", "/api/v1/profile", "Bearer nope", http.StatusUnauthorized},
		{"correct token", "/api/v1/profile", "Bearer secret", http.StatusOK},
		{"unknown path still guarded", "/api/v1/other", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, tt.path, nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)

			if w.Code != tt.want {
				t.Errorf("got %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestMiddlewareExemptions(t *testing.T) {
	h := newProtected(Config{Enabled: true, Token: "secret"})

	exempt := []string{
		"/",
		"/healthz",
		"/readyz",
		"/metrics",
		"/api/v1/atmosphere",
		"/api/v1/altitude",
		"/api/v1/airspeed/tas",
		"/api/v1/airspeed/cas",
		"/api/v1/airspeed/crossover",
	}

	for _, path := range exempt {
		r := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)

		if w.Code != http.StatusOK {
			t.Errorf("exempt path %s blocked without token: got %d", path, w.Code)
		}
	}
}
