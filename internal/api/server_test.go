package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/atmo/atmogo/internal/auth"
)

// TestServerRoutingAndAuth drives requests through the full middleware chain
// and verifies the exemption policy: read endpoints stay public while the
// batch profile endpoint requires a bearer token.
func TestServerRoutingAndAuth(t *testing.T) {
	srv := NewServer(Config{
		Addr:             ":0",
		Auth:             auth.Config{Enabled: true, Token: "test-token"},
		ProfileMaxLevels: 50,
	}, testLogger())
	handler := srv.HTTPServer().Handler

	publicPaths := []string{
		"/healthz",
		"/readyz",
		"/api/v1/atmosphere?altitude_m=0",
		"/api/v1/altitude?pressure_pa=101325",
		"/api/v1/airspeed/tas?cas_mps=150&altitude_m=2000",
		"/api/v1/airspeed/cas?tas_mps=160&altitude_m=2000",
		"/api/v1/airspeed/crossover?cas_mps=155&mach=0.79",
	}
	for _, path := range publicPaths {
		req := httptest.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("GET %s: status = %d, want 200", path, w.Code)
		}
	}

	profileBody := `{"start_altitude_m":0,"end_altitude_m":10000,"levels":5}`

	// No token: rejected before the handler runs.
	req := httptest.NewRequest("POST", "/api/v1/profile", strings.NewReader(profileBody))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated profile: status = %d, want 401", w.Code)
	}

	// With the token: evaluated.
	req = httptest.NewRequest("POST", "/api/v1/profile", strings.NewReader(profileBody))
	req.Header.Set("Authorization", "Bearer test-token")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("authenticated profile: status = %d, want 200: %s", w.Code, w.Body.String())
	}

	// Wrong method on a registered path.
	req = httptest.NewRequest("DELETE", "/api/v1/atmosphere", nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("DELETE atmosphere: status = %d, want 405", w.Code)
	}
}

// TestServerStaticFrontend verifies the embedded frontend is served at the
// site root.
func TestServerStaticFrontend(t *testing.T) {
	srv := NewServer(Config{Addr: ":0"}, testLogger())
	handler := srv.HTTPServer().Handler

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("GET /: status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "<title>AtmoGo</title>") {
		t.Error("expected the frontend index page at /")
	}

	req = httptest.NewRequest("GET", "/app.js", nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("GET /app.js: status = %d, want 200", w.Code)
	}
}

// TestServerMetricsEndpoint verifies the Prometheus endpoint reports the
// service metrics after traffic has flowed through the middleware.
func TestServerMetricsEndpoint(t *testing.T) {
	srv := NewServer(Config{Addr: ":0"}, testLogger())
	handler := srv.HTTPServer().Handler

	// Generate one observation so the request counter exists.
	req := httptest.NewRequest("GET", "/api/v1/atmosphere?altitude_m=5000", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("warmup request: status = %d, want 200", w.Code)
	}

	req = httptest.NewRequest("GET", "/metrics", nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("GET /metrics: status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	for _, metric := range []string{
		"atmogo_http_requests_total",
		"atmogo_evaluations_total",
		"atmogo_profile_workers",
	} {
		if !strings.Contains(body, metric) {
			t.Errorf("metrics output missing %s", metric)
		}
	}
}
