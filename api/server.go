// Package api is the HTTP surface of the duty engine.
// It decodes requests, calls the engine, and encodes results. It never
// performs duty arithmetic itself.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"import-duty/core/engine"
)

// Server is the API server
type Server struct {
	router  *gin.Engine
	handler *Handler
	version string
	ratesID string
}

// NewServer creates a server over e
func NewServer(e *engine.Engine, version string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(RequestLogger(logger))
	router.Use(gin.Recovery())

	s := &Server{
		router:  router,
		handler: NewHandler(e),
		version: version,
		ratesID: e.Schedule().Version,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/version", s.handleVersion)

	v1 := s.router.Group("/v1")
	{
		v1.GET("/jurisdictions", s.handler.Jurisdictions)
		v1.GET("/rates", s.handler.Rates)
		v1.POST("/quote", s.handler.Quote)
		v1.POST("/customs/georgia", s.handler.Georgia)
		v1.POST("/customs/ukraine", s.handler.Ukraine)
	}
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version":     s.version,
		"engine":      "import-duty",
		"api_version": "v1",
		"rates":       s.ratesID,
	})
}
