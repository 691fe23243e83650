// Package server wires the HTTP surface: a JSON API for the generation
// workflow and the static browser form.
package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"

	"github.com/md-hameem/AI-Content-Generator-and-Editor/internal/config"
	"github.com/md-hameem/AI-Content-Generator-and-Editor/internal/export"
	"github.com/md-hameem/AI-Content-Generator-and-Editor/internal/provider"
	"github.com/md-hameem/AI-Content-Generator-and-Editor/internal/session"
)

// Server represents the HTTP server.
type Server struct {
	config    *config.Config
	logger    *slog.Logger
	router    *gin.Engine
	generator provider.Generator
	store     *session.Store
	pdf       *export.PDFRenderer
}

// New creates a new Server instance.
func New(cfg *config.Config, logger *slog.Logger, gen provider.Generator) *Server {
	// Set Gin mode based on environment
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	server := &Server{
		config:    cfg,
		logger:    logger,
		router:    router,
		generator: gen,
		store:     session.NewStore(logger),
		pdf:       export.NewPDFRenderer(cfg.WkhtmltopdfPath),
	}

	// Setup middleware and routes
	setupSecurityMiddleware(router, cfg, logger)
	server.setupRoutes()

	return server
}

// Router exposes the underlying router for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP server.
func Run(s *Server) error {
	s.logger.Info("Server listening", "port", s.config.Port, "provider", s.generator.Name())
	return s.router.Run(":" + s.config.Port)
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	api := s.router.Group("/api/v1")
	{
		api.POST("/sessions", s.handleCreateSession)
		api.GET("/sessions/:id", s.handleGetSession)
		api.DELETE("/sessions/:id", s.handleDeleteSession)

		api.POST("/sessions/:id/outline", s.handleOutline)
		api.POST("/sessions/:id/draft", s.handleDraft)
		api.POST("/sessions/:id/improve", s.handleImprove)
		api.POST("/sessions/:id/suggestions", s.handleSuggestions)
		api.POST("/sessions/:id/seo-metadata", s.handleSEOMetadata)

		api.GET("/sessions/:id/seo-check", s.handleSEOCheck)
		api.GET("/sessions/:id/export", s.handleExport)
	}

	// The browser form. Static files only; everything dynamic goes through
	// the JSON API above.
	s.router.Use(static.Serve("/", static.LocalFile(s.config.StaticDir, false)))
}

// handleHealth handles the health check endpoint.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"service":  "content-generator",
		"provider": s.generator.Name(),
	})
}
