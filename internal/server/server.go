package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/dawitk/portfolio-relay/internal/api/handlers"
	"github.com/dawitk/portfolio-relay/internal/config"
	"github.com/dawitk/portfolio-relay/internal/logging"
	"github.com/dawitk/portfolio-relay/internal/ratelimit"
	"github.com/dawitk/portfolio-relay/internal/server/routes"
	"github.com/dawitk/portfolio-relay/internal/service"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// Server represents the HTTP server
type Server struct {
	router  *gin.Engine
	cfg     *config.Config
	limiter *ratelimit.Limiter
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	router := gin.New()
	routes.SetupGlobalMiddleware(router, cfg)

	limiter := ratelimit.New(ratelimit.DefaultWindow)

	telegramService := service.NewTelegramService(cfg)
	h := &routes.Handlers{
		Contact: handlers.NewContactHandler(telegramService),
		Webhook: handlers.NewWebhookHandler(telegramService, cfg.CalcomWebhookSecret),
		Health:  handlers.NewHealthHandler(),
	}
	m := &routes.Middleware{ClientLimiter: limiter}

	routes.Setup(router, h, m)

	return &Server{
		router:  router,
		cfg:     cfg,
		limiter: limiter,
	}
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	logger := logging.GetGlobalLogger()

	s.limiter.Start(ratelimit.DefaultSweepInterval)
	defer s.limiter.Stop()

	srv := &http.Server{
		Addr:    ":" + s.cfg.Port,
		Handler: s.router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	logger.Info("Server listening on port %s", s.cfg.Port)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
