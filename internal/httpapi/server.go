// Package httpapi exposes the two HTTP surfaces: the bearer-authenticated
// OpenAI-compatible API under /v1, and the unauthenticated plain chat
// surface.
package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/aichatops/mockgpt/internal/auth"
	"github.com/aichatops/mockgpt/internal/catalog"
	"github.com/aichatops/mockgpt/internal/completion"
	"github.com/aichatops/mockgpt/internal/generator"
	"github.com/aichatops/mockgpt/internal/logger"
)

const (
	serviceName    = "AI Chat API"
	serviceVersion = "1.0.0"
)

// Server wires the handlers to their collaborators
type Server struct {
	gate        *auth.Gate
	completions *completion.Service
	chatGen     generator.Generator
	catalog     *catalog.Catalog
	logger      *logger.Logger
	streamDelay time.Duration
}

// NewServer creates a server. streamDelay paces chunk emission on the
// streaming path and may be zero.
func NewServer(gate *auth.Gate, completions *completion.Service, chatGen generator.Generator, cat *catalog.Catalog, log *logger.Logger, streamDelay time.Duration) *Server {
	return &Server{
		gate:        gate,
		completions: completions,
		chatGen:     chatGen,
		catalog:     cat,
		logger:      log.WithComponent("http"),
		streamDelay: streamDelay,
	}
}

// Router builds the gin engine with all routes and middleware
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	// Permissive CORS: the service is an open demo surface.
	r.Use(gin.Logger(), s.recovery(), cors.Default())

	r.GET("/", s.handleRoot)
	r.GET("/health", s.handleHealth)
	r.GET("/api/info", s.handleInfo)
	r.POST("/chat", s.handleChat)

	v1 := r.Group("/v1", s.requireAPIKey)
	v1.GET("/models", s.handleListModels)
	v1.POST("/chat/completions", s.handleChatCompletions)

	return r
}
