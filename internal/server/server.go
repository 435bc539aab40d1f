// Package server exposes the onboarding flow over HTTP: server rendered step
// pages plus a small JSON API for masking, validation, reference data and
// toasts.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"

	onboarding "github.com/goliatone/go-onboarding"
	"github.com/goliatone/go-onboarding/internal/config"
	"github.com/goliatone/go-onboarding/internal/logger"
	"github.com/goliatone/go-onboarding/internal/metrics"
	"github.com/goliatone/go-onboarding/pkg/toast"
	"github.com/goliatone/go-onboarding/pkg/ui"
)

// Option customizes a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(l *logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithFlow replaces the onboarding flow, e.g. to resume saved progress.
func WithFlow(flow *onboarding.Flow) Option {
	return func(s *Server) {
		if flow != nil {
			s.flow = flow
		}
	}
}

// WithToastOptions forwards options to the toast provider.
func WithToastOptions(opts ...toast.Option) Option {
	return func(s *Server) {
		s.toastOpts = append(s.toastOpts, opts...)
	}
}

// Server owns the router and the per process state: one onboarding flow, one
// toast provider and one metrics registry.
type Server struct {
	cfg       *config.Config
	logger    *logger.Logger
	metrics   *metrics.Metrics
	renderer  *ui.Renderer
	flow      *onboarding.Flow
	toasts    *toast.Provider
	toastOpts []toast.Option
	spec      *openapi3.T
	router    chi.Router
}

// New wires the server from cfg.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*Server, error) {
	if cfg == nil {
		cfg = config.Defaults()
	}
	s := &Server{
		cfg:    cfg,
		logger: logger.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.flow == nil {
		s.flow = onboarding.NewFlow()
	}
	if !cfg.App.DisableMetrics {
		s.metrics = metrics.New()
	}

	renderer, err := s.newRenderer()
	if err != nil {
		return nil, err
	}
	s.renderer = renderer

	s.toasts = toast.NewProvider(append([]toast.Option{toast.WithOnChange(s.onToastChange)}, s.toastOpts...)...)

	spec, err := LoadOpenAPI(ctx)
	if err != nil {
		s.toasts.Close()
		return nil, err
	}
	s.spec = spec

	s.router = s.routes()
	if err := checkDocumented(spec, s.router); err != nil {
		s.toasts.Close()
		return nil, err
	}

	s.logger.Info().
		Str("asset_prefix", cfg.App.AssetPrefix).
		Str("theme", cfg.Theme.Name).
		Bool("metrics", s.metrics != nil).
		Msg("server configured")
	return s, nil
}

func (s *Server) newRenderer() (*ui.Renderer, error) {
	registry := ui.DefaultRegistry()
	registry.MustRegister(componentStepPanel, stepPanelDescriptor())

	opts := []ui.Option{
		ui.WithRegistry(registry),
		ui.WithAssetPrefix(s.cfg.App.AssetPrefix),
	}
	if dir := strings.TrimSpace(s.cfg.App.TemplatesDir); dir != "" {
		opts = append(opts, ui.WithTemplatesDir(dir))
	}
	if manifest := s.cfg.Theme.Manifest(); manifest != nil {
		themeCfg, err := ui.SelectTheme(ui.ManifestSelector{Manifest: manifest}, manifest.Name, s.cfg.Theme.Variant)
		if err != nil {
			return nil, fmt.Errorf("server: theme: %w", err)
		}
		opts = append(opts, ui.WithTheme(themeCfg))
	}
	renderer, err := ui.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("server: renderer: %w", err)
	}
	return renderer, nil
}

func (s *Server) onToastChange(change toast.Change) {
	if s.metrics != nil {
		if change.Kind == toast.ChangeAdded {
			s.metrics.IncrementToast(string(change.Toast.Variant))
		}
		s.metrics.SetActiveToasts(len(change.Toasts))
	}
	s.logger.Debug().
		Str("kind", string(change.Kind)).
		Str("toast_id", change.Toast.ID).
		Int("visible", len(change.Toasts)).
		Msg("toast list changed")
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Flow exposes the onboarding flow served by s.
func (s *Server) Flow() *onboarding.Flow {
	return s.flow
}

// Toasts exposes the toast provider shared by every request.
func (s *Server) Toasts() *toast.Provider {
	return s.toasts
}

// Close stops pending toast timers.
func (s *Server) Close() {
	s.toasts.Close()
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Server.Address,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
	defer s.Close()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("address", srv.Addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: listen: %w", err)
	case <-ctx.Done():
	}

	timeout := s.cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	s.logger.Info().Msg("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}
