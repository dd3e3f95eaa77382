package upstream

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/aichatops/mockgpt/internal/models"
)

// OpenAIClient implements Client on top of the go-openai SDK
type OpenAIClient struct {
	client       *openai.Client
	defaultModel string
}

// NewOpenAIClient creates a client for the given credential. baseURL may be
// empty to use the vendor default; model is used when a request leaves the
// model unspecified.
func NewOpenAIClient(apiKey, baseURL, model string) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
			baseURL = "https://" + baseURL
		}
		cfg.BaseURL = baseURL
	}
	return &OpenAIClient{
		client:       openai.NewClientWithConfig(cfg),
		defaultModel: model,
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, model string, messages []models.ChatMessage) (string, error) {
	if model == "" {
		model = c.defaultModel
	}

	req := openai.ChatCompletionRequest{
		Model:    model,
		Messages: make([]openai.ChatCompletionMessage, len(messages)),
	}
	for i, msg := range messages {
		req.Messages[i] = openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
			Name:    msg.Name,
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}
