package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/atmo/atmogo/internal/api"
	"github.com/atmo/atmogo/internal/auth"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(),
	}))

	cfg, err := loadConfig(logger)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	srv := api.NewServer(cfg, logger)

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting server", "addr", cfg.Addr, "auth_enabled", cfg.Auth.Enabled)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server listen error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.HTTPServer().Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// logLevel reads ATMOGO_LOG_LEVEL. Unknown or empty values select info.
func logLevel() slog.Level {
	switch strings.ToLower(os.Getenv("ATMOGO_LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func loadConfig(logger *slog.Logger) (api.Config, error) {
	cfg := api.Config{
		Addr:               ":8080",
		ProfileWorkers:     runtime.NumCPU(),
		ProfileMaxLevels:   4096,
		MaxConcurrentPerIP: 4,
	}

	if v := os.Getenv("ATMOGO_HTTP_ADDR"); v != "" {
		cfg.Addr = v
	}

	authCfg, err := loadAuthConfig(logger)
	if err != nil {
		return cfg, err
	}
	cfg.Auth = authCfg

	if v := os.Getenv("ATMOGO_PROFILE_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			logger.Warn("invalid ATMOGO_PROFILE_WORKERS value, using default", "value", v, "default", cfg.ProfileWorkers)
		} else {
			cfg.ProfileWorkers = n
		}
	}

	if v := os.Getenv("ATMOGO_PROFILE_MAX_LEVELS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 2 {
			logger.Warn("invalid ATMOGO_PROFILE_MAX_LEVELS value, using default", "value", v, "default", cfg.ProfileMaxLevels)
		} else {
			cfg.ProfileMaxLevels = n
		}
	}

	if v := os.Getenv("ATMOGO_PROFILE_MAX_CONCURRENT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			logger.Warn("invalid ATMOGO_PROFILE_MAX_CONCURRENT value, using default", "value", v, "default", cfg.MaxConcurrentPerIP)
		} else {
			cfg.MaxConcurrentPerIP = n
		}
	}

	if v := os.Getenv("ATMOGO_TRUST_PROXY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			logger.Warn("invalid ATMOGO_TRUST_PROXY value, defaulting to false", "value", v)
		} else {
			cfg.TrustProxy = b
		}
	}

	logger.Info("server config",
		"addr", cfg.Addr,
		"profile_workers", cfg.ProfileWorkers,
		"profile_max_levels", cfg.ProfileMaxLevels,
		"profile_max_concurrent", cfg.MaxConcurrentPerIP,
		"trust_proxy", cfg.TrustProxy,
	)

	return cfg, nil
}

func loadAuthConfig(logger *slog.Logger) (auth.Config, error) {
	cfg := auth.Config{}

	enabledStr := os.Getenv("ATMOGO_AUTH_ENABLED")
	if enabledStr != "" {
		enabled, err := strconv.ParseBool(enabledStr)
		if err != nil {
			return cfg, errors.New("ATMOGO_AUTH_ENABLED must be a boolean value (true/false/1/0)")
		}
		cfg.Enabled = enabled
	}

	if cfg.Enabled {
		cfg.Token = os.Getenv("ATMOGO_AUTH_TOKEN")
		if cfg.Token == "" {
			return cfg, errors.New("ATMOGO_AUTH_TOKEN is required when auth is enabled")
		}
		logger.Info("auth enabled")
	}

	return cfg, nil
}
