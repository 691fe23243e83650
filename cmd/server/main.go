package main

import (
	"log"

	"github.com/md-hameem/AI-Content-Generator-and-Editor/internal/config"
	"github.com/md-hameem/AI-Content-Generator-and-Editor/internal/logger"
	"github.com/md-hameem/AI-Content-Generator-and-Editor/internal/provider"
	"github.com/md-hameem/AI-Content-Generator-and-Editor/internal/server"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Setup structured logging
	logg := logger.Setup(cfg)

	// Log startup information
	logg.Info("Starting content generator server",
		"env", cfg.Env,
		"port", cfg.Port,
		"provider", cfg.Provider,
	)

	// Build the configured completion provider
	gen, err := provider.New(cfg)
	if err != nil {
		logg.Error("Failed to build completion provider", "error", err)
		log.Fatalf("Fatal: %v", err)
	}

	// Create and run the server
	srv := server.New(cfg, logg, gen)
	if err := server.Run(srv); err != nil {
		logg.Error("Failed to start server", "error", err)
		log.Fatalf("Fatal: %v", err)
	}
}
