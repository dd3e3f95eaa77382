// Package generator provides the response-generation strategies behind the
// chat surfaces. Both strategies guarantee a response: neither propagates a
// failure to its caller.
package generator

import (
	"context"

	"github.com/aichatops/mockgpt/internal/models"
)

// Strategy names accepted in configuration.
const (
	StrategyMock     = "mock"
	StrategyFallback = "fallback"
)

// Generator produces assistant text for a validated conversation
type Generator interface {
	Generate(ctx context.Context, messages []models.ChatMessage, temperature float32) string
}
