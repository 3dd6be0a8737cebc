package main

import (
	"os"
	"path/filepath"

	"github.com/yigit/courseregistry/internal/config"
	"github.com/yigit/courseregistry/internal/pkg/logger" // Still needed for initial error logging
	"github.com/yigit/courseregistry/internal/server"
)

// @title Course Registry API
// @version 1.0
// @description API for course catalogs, student rosters and course offerings
// @BasePath /api/v1
// @schemes http

func main() {
	configPath := config.GetEnv("CONFIG_PATH", filepath.Join("configs", "config.yaml"))

	srv, err := server.NewServer(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run the server (this blocks until shutdown signal)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
