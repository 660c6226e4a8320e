package main

import (
	"os"

	"github.com/tutorhub/backend/internal/pkg/logger"
	"github.com/tutorhub/backend/internal/server"
)

// @title TutorHub API
// @version 1.0
// @description Backend API for the TutorHub tutoring platform

// @contact.name API Support
// @contact.email support@tutorhub.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT access token

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server exited with error")
		os.Exit(1)
	}

	logger.Info().Msg("Server stopped gracefully")
}
