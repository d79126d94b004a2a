package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rbacdashboard/backend/internal/config"
	"github.com/rbacdashboard/backend/internal/logger"
	"github.com/rbacdashboard/backend/internal/seed"
	"github.com/rbacdashboard/backend/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the admin API server",
	Long: `Starts the admin API server. Usage:

	rbac-admin serve
`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting RBAC admin service")

	data, err := seed.Load(cfg.Registry.SeedFile)
	if err != nil {
		logger.Logger.Error("Failed to load seed data", zap.Error(err))
		return err
	}
	logger.Logger.Info("Seed data loaded",
		zap.String("seed_file", cfg.Registry.SeedFile),
		zap.Int("users", len(data.Users)),
		zap.Int("roles", len(data.Roles)),
	)

	srv, err := server.New(cfg, data, logger.Logger)
	if err != nil {
		logger.Logger.Error("Failed to build server", zap.Error(err))
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Logger.Error("Server error", zap.Error(err))
		return err
	}
	return nil
}
