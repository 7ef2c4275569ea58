// Package server exposes the Panchang, festival and chart calculations over
// HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/litescript/ls-jyotish/internal/chart"
	"github.com/litescript/ls-jyotish/internal/festival"
	"github.com/litescript/ls-jyotish/internal/panchang"
)

const defaultShutdownTimeout = 10 * time.Second

// Dependencies are the calculators the handlers serve from.
type Dependencies struct {
	Calculator *panchang.Calculator
	Generator  *chart.Generator
	Festivals  *festival.Store
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Config holds server settings.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

// WebAPI is the HTTP server.
type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

// NewWebAPI builds the router and server. Nil dependencies fall back to the
// package defaults.
func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	h := newHandler(config.Dependencies)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Get("/healthz", h.health)
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/panchang", h.getPanchang)
		r.Get("/panchang/range", h.getPanchangRange)
		r.Get("/festivals", h.listFestivals)
		r.Get("/muhurat/active", h.activeMuhurat)
		r.Post("/chart", h.createChart)
	})

	timeout := config.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:              config.Addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
		shutdownTimeout: timeout,
	}
}

// Handler returns the root handler.
func (w *WebAPI) Handler() http.Handler {
	return w.router
}

// Start serves until ctx is cancelled, then shuts down gracefully within the
// configured timeout.
func (w *WebAPI) Start(ctx context.Context) error {
	serverErrors := make(chan error, 1)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		sctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(sctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
