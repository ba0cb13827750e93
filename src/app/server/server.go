// Package server provides HTTP server initialization and lifecycle management.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"jokester/src/app/http/handler"
	"jokester/src/app/http/response"
	"jokester/src/app/middleware"
	"jokester/src/app/view"
	"jokester/src/core/domain"
	"jokester/src/core/ports"
	"jokester/src/core/usecase"
	"jokester/src/infra/config"
	"jokester/src/infra/logger"
	"jokester/src/infra/session"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg      *config.Config
	log      *slog.Logger
	router   *gin.Engine
	http     *http.Server
	sessions *session.Manager
	users    ports.UserRepository
	limiter  *middleware.RateLimiter

	// Handlers
	healthHandler *handler.HealthHandler
	jokeHandler   *handler.JokeHandler
	authHandler   *handler.AuthHandler
}

// New creates a new Server with all dependencies wired up.
func New(cfg *config.Config, log *slog.Logger, store ports.Store, sessions *session.Manager) (*Server, error) {
	// Set Gin mode based on log level
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router without default middleware
	router := gin.New()
	router.HandleMethodNotAllowed = true

	tmpl, err := view.Templates()
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)

	// Create services
	healthService := usecase.NewHealthService(logger.WithComponent(log, "health"), map[string]ports.HealthChecker{
		"database": store,
	})
	jokeService := usecase.NewJokeService(store, logger.WithComponent(log, "jokes"))
	authService := usecase.NewAuthService(store, logger.WithComponent(log, "auth"), 0)

	s := &Server{
		cfg:           cfg,
		log:           log,
		router:        router,
		sessions:      sessions,
		users:         store,
		healthHandler: handler.NewHealthHandler(healthService),
		jokeHandler:   handler.NewJokeHandler(jokeService),
		authHandler:   handler.NewAuthHandler(authService, sessions, logger.WithComponent(log, "auth")),
	}
	if cfg.RateLimit.Enabled {
		s.limiter = middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupHTTPServer()

	return s, nil
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	// Order matters: Recovery should be first to catch all panics
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.CORS(s.cfg.Server.AllowedOrigin))
	s.router.Use(middleware.Logging(s.log))
	s.router.Use(middleware.Boundary())
	s.router.Use(middleware.Session(s.sessions, s.users, logger.WithComponent(s.log, "session")))
}

// throttled prepends the rate limiter to h when limiting is enabled.
func (s *Server) throttled(h gin.HandlerFunc) []gin.HandlerFunc {
	if s.limiter == nil {
		return []gin.HandlerFunc{h}
	}
	return []gin.HandlerFunc{s.limiter.Handler(), h}
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check endpoints (no auth required)
	s.router.GET("/health", s.healthHandler.Health)
	s.router.GET("/health/detailed", s.healthHandler.DetailedHealth)

	s.router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, domain.DefaultRedirectPath)
	})

	// Jokes
	jokes := s.router.Group("/jokes")
	{
		jokes.GET("/new", s.jokeHandler.New)
		jokes.POST("/new", s.throttled(s.jokeHandler.Create)...)
		jokes.POST("/new/preview", s.jokeHandler.Preview)
		jokes.GET("/:id", s.jokeHandler.Show)
	}

	// Sessions
	s.router.GET("/login", s.authHandler.LoginForm)
	s.router.POST("/login", s.throttled(s.authHandler.Login)...)
	s.router.POST("/logout", s.authHandler.Logout)

	s.router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "The requested resource was not found", middleware.GetRequestID(c))
	})
	s.router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, response.Error{
			Error: response.ErrorDetail{
				Code:      "METHOD_NOT_ALLOWED",
				Message:   "Method not allowed",
				RequestID: middleware.GetRequestID(c),
			},
		})
	})
}

// setupHTTPServer configures the underlying HTTP server.
func (s *Server) setupHTTPServer() {
	s.http = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
}

// Run starts the HTTP server and blocks until ctx is cancelled or a
// SIGINT/SIGTERM arrives, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Channel to receive server errors
	errCh := make(chan error, 1)

	go func() {
		s.log.Info("starting HTTP server",
			"addr", s.cfg.Server.Addr(),
		)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.log.Info("received shutdown signal", "cause", context.Cause(ctx))
	case err := <-errCh:
		return err
	}

	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	s.log.Info("shutting down server", "timeout", s.cfg.Server.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.log.Info("server stopped gracefully")
	return nil
}

// Router returns the Gin router for testing.
func (s *Server) Router() *gin.Engine {
	return s.router
}
