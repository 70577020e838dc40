package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/atmo/atmogo/internal/auth"
	"github.com/atmo/atmogo/internal/health"
	"github.com/atmo/atmogo/internal/metrics"
	"github.com/atmo/atmogo/web"
)

// Config holds the API server configuration loaded from environment variables.
type Config struct {
	Addr               string      // Listen address (default ":8080").
	Auth               auth.Config // Bearer token guard for the profile endpoint.
	ProfileWorkers     int         // Worker pool size for profile evaluation (default: runtime.NumCPU()).
	ProfileMaxLevels   int         // Level budget for a single profile request (default: 4096).
	MaxConcurrentPerIP int         // Max concurrent profile evaluations per IP (default: 4).
	TrustProxy         bool        // Trust reverse proxy headers when resolving client IPs.
}

// Server holds the HTTP server and its dependencies.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer creates a configured HTTP server.
func NewServer(cfg Config, logger *slog.Logger) *Server {
	h := NewHandler(cfg, logger)
	mux := http.NewServeMux()

	// Register routes.
	mux.HandleFunc("GET /healthz", health.Healthz)
	mux.HandleFunc("GET /readyz", health.Readyz)
	mux.Handle("GET /metrics", metrics.Handler())
	mux.HandleFunc("GET /api/v1/atmosphere", h.HandleAtmosphere)
	mux.HandleFunc("GET /api/v1/altitude", h.HandleAltitude)
	mux.HandleFunc("GET /api/v1/airspeed/tas", h.HandleTrueAirspeed)
	mux.HandleFunc("GET /api/v1/airspeed/cas", h.HandleCalibratedAirspeed)
	mux.HandleFunc("GET /api/v1/airspeed/crossover", h.HandleCrossover)
	mux.HandleFunc("POST /api/v1/profile", h.HandleProfile)
	mux.Handle("GET /", http.FileServerFS(web.Content))

	// Build middleware chain: metrics -> logging -> auth -> mux.
	var handler http.Handler = mux
	handler = auth.Middleware(cfg.Auth)(handler)
	handler = loggingMiddleware(logger)(handler)
	handler = metrics.Middleware(handler)

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadTimeout:       10 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		logger: logger,
	}
}

// HTTPServer returns the underlying *http.Server for external control (e.g. shutdown).
func (s *Server) HTTPServer() *http.Server {
	return s.httpServer
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// probePath returns true for health/readiness probe paths that should not log at INFO.
func probePath(path string) bool {
	return path == "/healthz" || path == "/readyz"
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.statusCode = code
	sr.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sr := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(sr, r)

			duration := time.Since(start)
			level := slog.LevelInfo
			if probePath(r.URL.Path) {
				level = slog.LevelDebug
			}

			logger.Log(r.Context(), level, "request",
				"component", "api",
				"method", r.Method,
				"path", r.URL.Path,
				"status", strconv.Itoa(sr.statusCode),
				"duration_ms", duration.Milliseconds(),
				"remote_ip", r.RemoteAddr,
			)
		})
	}
}
