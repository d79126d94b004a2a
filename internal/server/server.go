// Package server assembles the registries, handlers and middleware into an HTTP server
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	_ "github.com/rbacdashboard/backend/docs"
	"github.com/rbacdashboard/backend/internal/config"
	"github.com/rbacdashboard/backend/internal/handlers"
	"github.com/rbacdashboard/backend/internal/idgen"
	"github.com/rbacdashboard/backend/internal/middleware"
	"github.com/rbacdashboard/backend/internal/repositories"
	"github.com/rbacdashboard/backend/internal/seed"
	"github.com/rbacdashboard/backend/internal/services"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 30 * time.Second

// Server wraps the HTTP server and router
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	logger     *zap.Logger
}

// New builds the registries from data and wires them behind the middleware chain
func New(cfg *config.Config, data *seed.Data, logger *zap.Logger) (*Server, error) {
	userIDs, err := idgen.FromStrategy(cfg.Registry.IDStrategy, idgen.MaxNumeric(data.UserIDs()...))
	if err != nil {
		return nil, fmt.Errorf("failed to create user id generator: %w", err)
	}
	roleIDs, err := idgen.FromStrategy(cfg.Registry.IDStrategy, idgen.MaxNumeric(data.RoleIDs()...))
	if err != nil {
		return nil, fmt.Errorf("failed to create role id generator: %w", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(data.Users, userIDs, logger)
	roleRepo := repositories.NewRoleRepository(data.Roles, roleIDs, logger)

	// Initialize services
	userService := services.NewUserService(userRepo, logger)
	roleService := services.NewRoleService(roleRepo, logger)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService, logger, cfg.Pagination.DefaultPageSize, cfg.Pagination.MaxPageSize)
	roleHandler := handlers.NewRoleHandler(roleService, logger, cfg.Pagination.DefaultPageSize, cfg.Pagination.MaxPageSize)
	adminHandler := handlers.NewAdminHandler(logger, userService, roleService)

	r := chi.NewRouter()

	// Apply middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(middleware.RecoveryMiddleware(logger))
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(cfg.Server.RateLimitPerMinute, time.Minute))
	r.Use(middleware.RequestSizeLimitMiddleware(cfg.Server.MaxRequestSize))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	r.Route("/api/v1", func(r chi.Router) {
		userHandler.RegisterRoutes(r)
		roleHandler.RegisterRoutes(r)
		adminHandler.RegisterRoutes(r)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
			Handler:      r,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		router: r,
		logger: logger,
	}, nil
}

// Handler returns the fully wired router
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed to start: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	s.logger.Info("Server exited")
	return nil
}
