package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aichatops/mockgpt/internal/models"
	"github.com/aichatops/mockgpt/internal/sse"
)

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": serviceName,
		"version": serviceVersion,
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": serviceName,
		"version": serviceVersion,
		"endpoints": []gin.H{
			{"method": "GET", "path": "/", "description": "Service banner"},
			{"method": "GET", "path": "/health", "description": "Health check"},
			{"method": "GET", "path": "/api/info", "description": "This descriptor"},
			{"method": "POST", "path": "/chat", "description": "Plain chat (no authentication)"},
			{"method": "GET", "path": "/v1/models", "description": "List available models (bearer auth)"},
			{"method": "POST", "path": "/v1/chat/completions", "description": "Chat completions (bearer auth)"},
		},
	})
}

func (s *Server) handleListModels(c *gin.Context) {
	c.JSON(http.StatusOK, models.ModelList{
		Object: "list",
		Data:   s.catalog.List(),
	})
}

func (s *Server) handleChatCompletions(c *gin.Context) {
	var req models.ChatCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, validationErrorResponse(err))
		return
	}
	req.ApplyDefaults()

	if req.Stream {
		s.streamCompletion(c, &req)
		return
	}

	resp, err := s.completions.Complete(c.Request.Context(), &req)
	if err != nil {
		s.completionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// streamCompletion writes the chunk sequence as server-sent events with a
// pacing delay between chunks, then the [DONE] sentinel. Emission stops as
// soon as the client disconnects.
func (s *Server) streamCompletion(c *gin.Context, req *models.ChatCompletionRequest) {
	chunks, err := s.completions.CompleteStream(c.Request.Context(), req)
	if err != nil {
		s.completionError(c, err)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	ctx := c.Request.Context()
	for i, chunk := range chunks {
		select {
		case <-ctx.Done():
			s.logger.Warn("client disconnected mid-stream after %d chunks", i)
			return
		default:
		}

		event, err := sse.Encode(chunk)
		if err != nil {
			s.logger.Error("encode stream chunk: %v", err)
			return
		}
		if _, err := c.Writer.Write(event); err != nil {
			s.logger.Warn("write stream chunk: %v", err)
			return
		}
		c.Writer.Flush()

		if s.streamDelay > 0 && i < len(chunks)-1 {
			select {
			case <-ctx.Done():
				s.logger.Warn("client disconnected mid-stream after %d chunks", i+1)
				return
			case <-time.After(s.streamDelay):
			}
		}
	}

	if _, err := c.Writer.Write(sse.Done()); err != nil {
		s.logger.Warn("write stream sentinel: %v", err)
		return
	}
	c.Writer.Flush()
}

// completionError maps service errors onto client-visible responses
func (s *Server) completionError(c *gin.Context, err error) {
	var notFound *models.ModelNotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusBadRequest,
			models.NewErrorResponse(notFound.Error(), "invalid_request_error", "model_not_found"))
		return
	}
	s.logger.Error("completion failed: %v", err)
	c.JSON(http.StatusInternalServerError,
		models.NewErrorResponse("Sorry, something went wrong on our side. Please try again.", "internal_error", ""))
}

// chatRequest is the body of the unauthenticated plain chat surface
type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "message is required",
			"status": "error",
		})
		return
	}

	reply := s.chatGen.Generate(c.Request.Context(), []models.ChatMessage{
		{Role: models.RoleUser, Content: req.Message},
	}, models.DefaultTemperature)
	if reply == "" {
		s.logger.Error("chat generator produced empty reply")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":  "Sorry, I couldn't process that right now. Please try again.",
			"status": "error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reply":  reply,
		"status": "success",
	})
}
