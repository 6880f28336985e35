package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/catalog-api/api/auth"
	"github.com/killallgit/catalog-api/api/types"
	"github.com/killallgit/catalog-api/pkg/config"
)

// stopper is implemented by limiters that run background work
type stopper interface {
	Stop()
}

// Server represents the HTTP server
type Server struct {
	engine      *gin.Engine
	httpServer  *http.Server
	config      *config.Config
	authHandler *auth.Handler
	logger      *slog.Logger

	// Dependencies for handlers
	dependencies *types.Dependencies
}

// NewServer creates a new HTTP server
func NewServer(cfg *config.Config, deps *types.Dependencies) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
		deps.Logger = logger
	}

	engine := gin.New()

	return &Server{
		engine:       engine,
		config:       cfg,
		authHandler:  auth.NewHandler(deps.Auth),
		logger:       logger,
		dependencies: deps,
		httpServer: &http.Server{
			Addr:           net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
			Handler:        engine,
			ReadTimeout:    cfg.Server.ReadTimeout,
			WriteTimeout:   cfg.Server.WriteTimeout,
			IdleTimeout:    cfg.Server.IdleTimeout,
			MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		},
	}
}

// Engine returns the Gin engine for testing
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Addr is the address the server listens on
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Initialize sets up middleware and routes
func (s *Server) Initialize() error {
	s.setupMiddleware()

	if err := RegisterRoutes(s.engine, s.dependencies, s.authHandler, s.config); err != nil {
		return fmt.Errorf("registering routes: %w", err)
	}
	return nil
}

// setupMiddleware configures global middleware
func (s *Server) setupMiddleware() {
	s.engine.Use(RequestID())
	s.engine.Use(RequestLogger(s.logger))
	s.engine.Use(Recovery(s.logger))

	if s.config.Security.EnableCORS {
		s.engine.Use(CORS(s.config.Security))
	}

	maxBody := s.config.Security.MaxBodyBytes
	if maxBody > 0 {
		s.engine.Use(RequestSizeLimitWithSize(maxBody))
	} else {
		s.engine.Use(RequestSizeLimit())
	}
}

// Start serves until Shutdown is called
func (s *Server) Start() error {
	s.logger.Info("http server listening", slog.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if st, ok := s.dependencies.Limiter.(stopper); ok {
		st.Stop()
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
	}
	return s.httpServer.Shutdown(ctx)
}
