package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/airecruit/api/internal/app/migrate"
	httpx "github.com/airecruit/api/internal/http"
	"github.com/airecruit/api/internal/repository/postgres"
	"github.com/airecruit/api/internal/service/assess"
	"github.com/airecruit/api/internal/service/auth"
	"github.com/airecruit/api/internal/service/compat"
	"github.com/airecruit/api/pkg/config"
	"github.com/airecruit/api/pkg/logger"
)

func main() {
	cfg := config.LoadAPIConfig()
	log := logger.New("api", slog.LevelInfo)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	runner, err := migrate.New(pool, cfg.DatabaseURL, cfg.MigrationsDir, log)
	if err != nil {
		log.Error("failed to configure migrations", "error", err)
		os.Exit(1)
	}
	defer runner.Close()
	if err := runner.Ping(ctx); err != nil {
		log.Error("database ping failed", "error", err)
		os.Exit(1)
	}
	if err := runner.Ensure(ctx); err != nil {
		log.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	repo := postgres.New(pool)

	authSvc := auth.New(repo, log, cfg)
	compatSvc := compat.New(repo, newAnalyzer(cfg, log), log, cfg.UploadDir, cfg.MaxResumeBytes)
	assessSvc := assess.New(log, cfg.GenerateDelay)

	limiter := httpx.NewMemoryRateLimiter()
	if addr := strings.TrimSpace(cfg.RateLimitRedisAddr); addr != "" {
		redisLimiter, err := httpx.NewRedisRateLimiter(addr, cfg.RateLimitRedisPass, cfg.RateLimitRedisDB, log)
		if err != nil {
			log.Warn("redis rate limiter unavailable", "error", err)
		} else {
			limiter = redisLimiter
		}
	}

	listener, actualPort, err := listenWithRetry(cfg.Port, cfg.PortRetryAttempts, log)
	if err != nil {
		log.Error("failed to bind listener", "error", err)
		os.Exit(1)
	}

	router := httpx.NewRouter(log, authSvc, compatSvc, assessSvc, limiter, cfg.MaxResumeBytes, func() int { return actualPort }, pool.Ping)
	defer router.Close()

	srv := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errorCh := make(chan error, 1)
	go func() {
		log.Info("api server starting", "port", actualPort)
		errorCh <- srv.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
		log.Info("api server stopped")
	case err := <-errorCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}
}

// listenWithRetry binds the first free TCP port starting at the configured
// one, walking upward when a port is already taken.
func listenWithRetry(port, attempts int, log *slog.Logger) (net.Listener, int, error) {
	if port < 1024 || port > 65535 {
		log.Warn("invalid port, using default", "port", port)
		port = 5000
	}
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		candidate := port + i
		listener, err := net.Listen("tcp", fmt.Sprintf(":%d", candidate))
		if err == nil {
			return listener, listener.Addr().(*net.TCPAddr).Port, nil
		}
		lastErr = err
		if !errors.Is(err, syscall.EADDRINUSE) {
			return nil, 0, err
		}
		log.Warn("port is busy, trying next", "port", candidate, "next", candidate+1)
	}
	return nil, 0, fmt.Errorf("no free port after %d attempts: %w", attempts, lastErr)
}

// newAnalyzer picks the external script when configured, otherwise the
// in-process scorer.
func newAnalyzer(cfg config.APIConfig, log *slog.Logger) compat.Analyzer {
	if script := strings.TrimSpace(cfg.AnalyzerScript); script != "" {
		return compat.NewScriptAnalyzer(cfg.AnalyzerCommand, script, cfg.AnalyzerTimeout, log)
	}
	log.Info("no analyzer script configured, using in-process analyzer")
	return compat.NewLocalAnalyzer()
}
