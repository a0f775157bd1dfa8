package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/workout-api/go/internal/events"
	"github.com/mcdev12/workout-api/go/internal/httpapi"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("workout API server failed")
	}
}

// run owns every resource opened at startup so their deferred cleanup runs
// before the process exits on error.
func run() error {
	// load .env
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	cfg, err := loadConfig(getEnv("CONFIG_PATH", "config.yaml"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	setupLogging(cfg)

	// signal-aware context
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := setupDatabase(ctx)
	if err != nil {
		return fmt.Errorf("setup database: %w", err)
	}
	defer db.Close()

	publisher, err := setupPublisher(ctx, cfg)
	if err != nil {
		return fmt.Errorf("setup publisher: %w", err)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error().Err(err).Msg("close publisher")
		}
	}()

	rateLimit, closeRateLimit := setupRateLimit(ctx, cfg)
	defer closeRateLimit()

	services := setupServices(db, publisher, clockwork.NewRealClock())
	server := setupServer(cfg, services, db, setupMiddleware(log.Logger, rateLimit)...)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Msg("starting workout API server")
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server exited unexpectedly: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	log.Info().Msg("graceful shutdown complete")
	return nil
}

func setupLogging(cfg *Config) {
	if cfg.Log.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Log.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

// setupPublisher connects to JetStream when a NATS URL is configured and
// falls back to dropping events otherwise.
func setupPublisher(ctx context.Context, cfg *Config) (events.Publisher, error) {
	if cfg.Events.NatsURL == "" {
		log.Info().Msg("NATS_URL not set, athlete events disabled")
		return events.NopPublisher{}, nil
	}

	jsCfg := events.DefaultJetStreamConfig()
	jsCfg.URL = cfg.Events.NatsURL
	if cfg.Events.StreamName != "" {
		jsCfg.StreamName = cfg.Events.StreamName
	}

	publisher, err := events.NewJetStreamPublisher(ctx, jsCfg)
	if err != nil {
		return nil, fmt.Errorf("create JetStream publisher: %w", err)
	}
	log.Info().Str("url", jsCfg.URL).Str("stream", jsCfg.StreamName).Msg("athlete events enabled")
	return publisher, nil
}

func setupRateLimit(ctx context.Context, cfg *Config) (*httpapi.RateLimitOptions, func()) {
	if !cfg.RateLimit.Enabled {
		return nil, func() {}
	}

	store := httpapi.NewLimiterStore(cfg.RateLimit.RPS, cfg.RateLimit.Burst,
		httpapi.WithIdleTTL(cfg.RateLimit.IdleTTL))
	store.StartJanitor(ctx)

	opts := &httpapi.RateLimitOptions{
		Store:     store,
		KeyHeader: cfg.RateLimit.KeyHeader,
	}

	if cfg.RateLimit.RedisAddr == "" {
		return opts, func() {}
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RateLimit.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", cfg.RateLimit.RedisAddr).Msg("redis unavailable, rate limit stats disabled")
		_ = rdb.Close()
		return opts, func() {}
	}

	opts.Stats = httpapi.NewRedisStatsRecorder(rdb, "workout:ratelimit", cfg.RateLimit.StatsTTL)
	return opts, func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("close redis client")
		}
	}
}
