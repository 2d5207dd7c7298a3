// Package server serves the portfolio page over HTTP with gin.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/zain0812/portfolio/internal/assets"
	"github.com/zain0812/portfolio/internal/config"
	"github.com/zain0812/portfolio/internal/content"
	"github.com/zain0812/portfolio/internal/views"
)

const serviceName = "portfolio"

// Server hosts the portfolio HTTP surface and lifecycle.
type Server struct {
	cfg      config.Config
	profile  content.Profile
	projects []content.ProjectEntry
	now      func() time.Time
	engine   *gin.Engine
}

// Option customises a Server.
type Option func(*Server)

// WithClock overrides the clock used for the footer year.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// WithProjects replaces the default project sequence.
func WithProjects(projects []content.ProjectEntry) Option {
	return func(s *Server) { s.projects = projects }
}

// New builds a Server. It fails if the project sequence has duplicate titles.
func New(cfg config.Config, opts ...Option) (*Server, error) {
	s := &Server{
		cfg:      cfg,
		profile:  content.Owner(),
		projects: content.Projects(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := content.Validate(s.projects); err != nil {
		return nil, err
	}
	if cfg.FormEndpoint == "" {
		log.Warn().Str("endpoint", views.PlaceholderFormEndpoint).
			Msg("PORTFOLIO_FORM_ENDPOINT not set, contact form posts to the placeholder relay")
	}

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	s.engine = s.routes()
	return s, nil
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), RequestLogger(), gin.Recovery(), ErrorResponder())

	r.GET("/", s.index)
	r.HEAD("/", s.index)
	r.StaticFS(assets.Prefix, assets.FileSystem())

	r.GET("/api/projects", s.listProjects)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.NoRoute(func(c *gin.Context) {
		_ = c.Error(ErrNotFound)
	})
	return r
}

// Handler returns the root handler, traced when an OTLP endpoint is set.
func (s *Server) Handler() http.Handler {
	if s.cfg.OTelEndpoint == "" {
		return s.engine
	}
	return otelhttp.NewHandler(s.engine, serviceName)
}

// PageProps returns the props the index page is rendered from at time now.
func (s *Server) PageProps() views.PageProps {
	return views.PageProps{
		Profile:      s.profile,
		Projects:     s.projects,
		FormEndpoint: s.cfg.FormEndpoint,
		Year:         s.now().Year(),
		AssetPrefix:  assets.Prefix,
	}
}

func (s *Server) index(c *gin.Context) {
	c.Render(http.StatusOK, Node(views.Page(s.PageProps())))
}

func (s *Server) listProjects(c *gin.Context) {
	projects := s.projects
	if projects == nil {
		projects = []content.ProjectEntry{}
	}
	c.JSON(http.StatusOK, projects)
}

// Run serves until ctx is cancelled, then shuts down gracefully within the
// configured timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		log.Info().Str("addr", srv.Addr).Msg("portfolio listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Dur("timeout", s.cfg.ShutdownTimeout).Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
