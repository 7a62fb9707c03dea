package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/malek/tadreeb/internal/pkg/logger"
	"github.com/malek/tadreeb/internal/server"
)

func main() {
	// A missing .env file is fine, the environment may be set directly
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn().Err(err).Msg("Failed to load .env file")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed")
		os.Exit(1)
	}
}
