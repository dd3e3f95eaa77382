package mocks

import (
	"context"

	"github.com/aichatops/mockgpt/internal/models"
)

// MockUpstreamClient implements upstream.Client for testing
type MockUpstreamClient struct {
	CompleteFunc func(ctx context.Context, model string, messages []models.ChatMessage) (string, error)
	Calls        int
}

func (m *MockUpstreamClient) Complete(ctx context.Context, model string, messages []models.ChatMessage) (string, error) {
	m.Calls++
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, model, messages)
	}
	return "", nil
}
