// Package server is the JSON and file-download HTTP surface over the back office.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/jesses-code-adventures/cms/internal/auth"
	"github.com/jesses-code-adventures/cms/internal/config"
	"github.com/jesses-code-adventures/cms/internal/logger"
	"github.com/jesses-code-adventures/cms/internal/service"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	cfg       *config.Config
	svc       *service.BackOffice
	creds     *auth.Credentials
	sessions  *auth.Sessions
	validator *validator
	log       zerolog.Logger
	engine    *gin.Engine
}

func New(cfg *config.Config, svc *service.BackOffice) (*Server, error) {
	v, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to load request schemas: %w", err)
	}

	if !cfg.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:       cfg,
		svc:       svc,
		creds:     auth.NewCredentials(cfg),
		sessions:  auth.NewSessions(cfg.SecretKey, auth.DefaultSessionTTL),
		validator: v,
		log:       logger.WithComponent("server"),
	}
	if cfg.UsingDevSecret() {
		s.log.Warn().Msg("SECRET_KEY is not set, session cookies are signed with the development key")
	}
	if !s.creds.Configured() {
		s.log.Warn().Msg("ADMIN_USERNAME and a password are not configured, logins will be refused")
	}

	s.engine = s.routes()
	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.HTTPAddr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.cfg.HTTPAddr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
		s.log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down cleanly: %w", err)
		}
		return nil
	}
}
