package ui

import (
	"log"
	"net/http"

	"sheetmap/internal/config"
	"sheetmap/internal/extract"
	"sheetmap/internal/profile"
	"sheetmap/ports"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"
)

// Server exposes the spreadsheet import API
type Server struct {
	router    *gin.Engine
	imports   ports.ImportRepository
	extractor *extract.Extractor
	profiler  *profile.Profiler

	// Upload processing is CPU and memory bound per file; the semaphore caps
	// how many files are decoded at once.
	uploadSem      *semaphore.Weighted
	maxUploadBytes int64
}

// NewServer creates a new API server instance
func NewServer(cfg *config.Config, imports ports.ImportRepository) *Server {
	gin.SetMode(cfg.Server.GinMode)

	s := &Server{
		router:         gin.Default(),
		imports:        imports,
		extractor:      extract.NewExtractor(),
		profiler:       profile.NewProfiler(profile.DefaultThresholds()),
		uploadSem:      semaphore.NewWeighted(cfg.Imports.Concurrency),
		maxUploadBytes: cfg.Imports.MaxUploadBytes,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	api := s.router.Group("/api")
	{
		api.POST("/imports", s.handleCreateImport)
		api.GET("/imports", s.handleListImports)
		api.GET("/imports/:id", s.handleGetImport)
	}
}

// Start runs the HTTP server on the given address
func (s *Server) Start(addr string) error {
	log.Printf("[Server] Starting import API on %s", addr)
	return s.router.Run(addr)
}

// Router exposes the underlying engine for tests
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
