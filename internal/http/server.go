package http

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/hybridcrypt/internal/config"
	envelopeHTTP "github.com/allisson/hybridcrypt/internal/envelope/http"
	"github.com/allisson/hybridcrypt/internal/httputil"
	hybridHTTP "github.com/allisson/hybridcrypt/internal/hybrid/http"
	"github.com/allisson/hybridcrypt/internal/metrics"
)

const readinessPingTimeout = 2 * time.Second

// Handlers groups the API handlers mounted under /v1.
// Envelope is nil when the envelope store is disabled.
type Handlers struct {
	Hybrid   *hybridHTTP.HybridHandler
	Key      *hybridHTTP.KeyHandler
	Envelope *envelopeHTTP.EnvelopeHandler
}

// Server represents the API HTTP server.
type Server struct {
	db           *sql.DB // nil when the envelope store is disabled
	server       *http.Server
	router       *gin.Engine
	logger       *slog.Logger
	shuttingDown atomic.Bool
}

// NewServer creates a new API server. Call SetupRouter before Start.
func NewServer(db *sql.DB, host string, port int, logger *slog.Logger) *Server {
	return &Server{
		db:     db,
		server: newHTTPServer(host, port),
		logger: logger,
	}
}

// newHTTPServer returns an http.Server with the timeouts shared by the API and metrics listeners.
func newHTTPServer(host string, port int) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", host, port),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// SetupRouter builds the gin router with middlewares and routes.
//
// ctx bounds background work started by middlewares (the rate limiter cleanup)
// and should be cancelled when the server stops.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	handlers Handlers,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, httputil.ErrorResponse{
			Error:   "not_found",
			Message: "The requested resource was not found",
		})
	})

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	if cfg.RateLimitEnabled {
		v1.Use(RateLimitMiddleware(ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}

	if handlers.Hybrid != nil {
		hybrid := v1.Group("/hybrid")
		hybrid.POST("/encrypt", handlers.Hybrid.EncryptHandler)
		hybrid.POST("/decrypt", handlers.Hybrid.DecryptHandler)
	}

	if handlers.Key != nil {
		keys := v1.Group("/keys")
		keys.POST("/matrix", handlers.Key.GenerateKeyMatrixHandler)
		keys.POST("/pair", handlers.Key.GenerateKeyPairHandler)
	}

	if handlers.Envelope != nil {
		envelopes := v1.Group("/envelopes")
		envelopes.POST("", handlers.Envelope.SealHandler)
		envelopes.GET("", handlers.Envelope.ListHandler)
		envelopes.GET("/:id", handlers.Envelope.GetHandler)
		envelopes.POST("/:id/open", handlers.Envelope.OpenHandler)
		envelopes.DELETE("/:id", handlers.Envelope.DeleteHandler)
	}

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server. It blocks until the server stops and returns nil
// after a graceful Shutdown.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return errors.New("router is not configured: call SetupRouter first")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start http server: %w", err)
	}

	return nil
}

// Shutdown marks the server as not ready and gracefully drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.shuttingDown.Store(true)
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports liveness.
// GET /health
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can take traffic.
// GET /ready - 503 while shutting down or when the configured database is unreachable.
func (s *Server) readinessHandler(c *gin.Context) {
	ready := true
	components := gin.H{"server": "ok"}

	if s.shuttingDown.Load() {
		ready = false
		components["server"] = "shutting_down"
	}

	if s.db == nil {
		components["database"] = "disabled"
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readinessPingTimeout)
		defer cancel()

		if err := s.db.PingContext(ctx); err != nil {
			s.logger.Error("readiness check: database ping failed", slog.Any("error", err))
			ready = false
			components["database"] = "error"
		} else {
			components["database"] = "ok"
		}
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "components": components})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready", "components": components})
}
