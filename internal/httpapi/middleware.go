package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aichatops/mockgpt/internal/models"
)

// requireAPIKey rejects requests whose bearer credential is not in the
// allow-list. Rejection happens before any catalog or generation work, and
// the response never reveals which keys are valid.
func (s *Server) requireAPIKey(c *gin.Context) {
	if err := s.gate.Authenticate(c.GetHeader("Authorization")); err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized,
			models.NewErrorResponse("Invalid API key", "invalid_request_error", "invalid_api_key"))
		return
	}
	c.Next()
}

// recovery converts panics into a generic 500. The panic detail is logged
// server-side only and never reaches the response body.
func (s *Server) recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		s.logger.Error("panic while handling %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			models.NewErrorResponse("Sorry, something went wrong on our side. Please try again.", "internal_error", ""))
	})
}
