package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mcdev12/workout-api/go/internal/httpapi"
)

// Pinger reports whether the database is reachable
type Pinger interface {
	PingContext(ctx context.Context) error
}

func setupServer(cfg *Config, services *Services, db Pinger, middleware ...httpapi.Middleware) *http.Server {
	mux := http.NewServeMux()

	// Setup CORS middleware
	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedHeaders: []string{"*"},
	})

	// Register services
	registerServices(mux, services)

	// Add health check endpoint
	setupHealthCheck(mux, db)

	handler := httpapi.Chain(middleware...)(c.Handler(mux))

	// Setup HTTP/2 server
	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func registerServices(mux *http.ServeMux, services *Services) {
	services.Categories.RegisterRoutes(mux)
	services.TrainingCenters.RegisterRoutes(mux)
	services.Athletes.RegisterRoutes(mux)
}

func setupMiddleware(logger zerolog.Logger, rateLimit *httpapi.RateLimitOptions) []httpapi.Middleware {
	mw := []httpapi.Middleware{
		httpapi.Recovery(logger),
		httpapi.Logger(logger),
	}
	if rateLimit != nil {
		mw = append(mw, httpapi.RateLimit(*rateLimit))
	}
	return mw
}

func setupHealthCheck(mux *http.ServeMux, db Pinger) {
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			log.Error().Err(err).Msg("health check failed")
			w.WriteHeader(http.StatusServiceUnavailable)
			if _, err := w.Write([]byte("database unavailable")); err != nil {
				log.Error().Err(err).Msg("failed to write health check response")
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error().Err(err).Msg("failed to write health check response")
		}
	})
}
