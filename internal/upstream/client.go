// Package upstream defines the client interface for a real model provider
// and its go-openai implementation. The service works without any upstream;
// callers are expected to absorb every error from this package.
package upstream

import (
	"context"

	"github.com/aichatops/mockgpt/internal/models"
)

// Client is the interface for upstream chat completion providers
type Client interface {
	// Complete sends one conversation to the provider and returns the
	// assistant text. An empty model falls back to the client's default.
	Complete(ctx context.Context, model string, messages []models.ChatMessage) (string, error)
}
