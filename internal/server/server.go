// Package server exposes asset generation, PDF rendering and order
// placement over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/alnah/go-brandprint"
	"github.com/alnah/go-brandprint/internal/order"
)

// Timeouts for the HTTP server. Writes allow for a cold browser start.
const (
	readHeaderTimeout = 10 * time.Second
	writeTimeout      = 90 * time.Second
	idleTimeout       = 120 * time.Second
	shutdownTimeout   = 15 * time.Second

	// maxBodyBytes bounds request bodies; inline logos are data URIs.
	maxBodyBytes = 4 << 20
)

// Renderer generates documents and PDFs.
type Renderer interface {
	Convert(ctx context.Context, input brandprint.Input) (*brandprint.Result, error)
}

// OrderPlacer places print orders.
type OrderPlacer interface {
	Place(ctx context.Context, o order.Order) (*order.Receipt, error)
}

// Compile-time interface checks.
var (
	_ Renderer    = (*brandprint.ConverterPool)(nil)
	_ OrderPlacer = (*order.Service)(nil)
)

// Option configures a Server.
type Option func(*Server)

// WithOrders enables POST /v1/orders.
func WithOrders(p OrderPlacer) Option {
	return func(s *Server) {
		s.orders = p
	}
}

// WithLogger sets the request and error logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Server) {
		s.log = l
	}
}

// Server routes HTTP requests to the renderer and order service.
type Server struct {
	renderer Renderer
	orders   OrderPlacer
	log      zerolog.Logger
	router   chi.Router
}

// New builds a Server around renderer.
func New(renderer Renderer, opts ...Option) *Server {
	s := &Server{renderer: renderer, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		requestLogger(s.log),
		middleware.Recoverer,
	)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/assets", s.handleAssets)
		r.Get("/assets/{assetID}", s.handleAsset)
		r.Post("/preview", s.handlePreview)
		r.Post("/render", s.handleRender)
		r.Post("/orders", s.handleOrder)
	})
	return r
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is canceled, then drains
// in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving %s: %w", addr, err)
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
