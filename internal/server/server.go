package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/3leaps/gostratus/internal/config"
	apperrors "github.com/3leaps/gostratus/internal/errors"
	"github.com/3leaps/gostratus/internal/server/handlers"
	"github.com/3leaps/gostratus/internal/server/middleware"
	"github.com/3leaps/gostratus/pkg/wire"
)

// Server is the wire inspector HTTP server.
type Server struct {
	cfg     config.ServerConfig
	logger  *zap.Logger
	router  chi.Router
	version handlers.VersionInfo
}

// New builds a server from the resolved configuration. The dialect is the
// default for translation requests that do not name one.
func New(cfg config.ServerConfig, dialect wire.Dialect, logger *zap.Logger, version handlers.VersionInfo) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		cfg:     cfg,
		logger:  logger,
		version: version,
	}
	s.router = s.buildRouter(dialect)
	return s
}

func (s *Server) buildRouter(dialect wire.Dialect) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(s.logger))
	r.Use(middleware.Recovery)
	r.Use(middleware.Throttle(s.cfg.RateLimit, s.cfg.RateBurst))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		apperrors.WriteJSON(w, http.StatusNotFound, apperrors.CodeNotFound, "resource not found: "+req.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		apperrors.WriteJSON(w, http.StatusMethodNotAllowed, apperrors.CodeMethodNotAllowed, "method not allowed: "+req.Method)
	})

	r.Get("/healthz", handlers.Health(s.version.Version))
	r.Get("/version", handlers.Version(s.version))

	translator := handlers.NewTranslator(dialect)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/tags/render", translator.TagsRender)
		r.Post("/tags/parse", translator.TagsParse)
		r.Post("/list/translate", translator.ListTranslate)
		r.Post("/multipart/complete", translator.MultipartComplete)
	})

	return r
}

// Handler returns the configured router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Port returns the configured listen port.
func (s *Server) Port() int {
	return s.cfg.Port
}

// Start runs the server until ctx is cancelled, then shuts down
// gracefully within the configured shutdown timeout.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownTimeout := s.cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Info("server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	return nil
}
