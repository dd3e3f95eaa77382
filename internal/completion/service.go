// Package completion orchestrates chat completions: catalog validation,
// response generation, token accounting, and identifier assignment.
package completion

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aichatops/mockgpt/internal/catalog"
	"github.com/aichatops/mockgpt/internal/generator"
	"github.com/aichatops/mockgpt/internal/logger"
	"github.com/aichatops/mockgpt/internal/models"
	"github.com/aichatops/mockgpt/internal/tokens"
)

const (
	objectCompletion = "chat.completion"
	objectChunk      = "chat.completion.chunk"
	finishStop       = "stop"
	idPrefix         = "chatcmpl-"
)

// Service validates requests and assembles completion responses
type Service struct {
	catalog *catalog.Catalog
	gen     generator.Generator
	logger  *logger.Logger
}

// NewService creates a completion service using the given generation strategy
func NewService(cat *catalog.Catalog, gen generator.Generator, log *logger.Logger) *Service {
	return &Service{
		catalog: cat,
		gen:     gen,
		logger:  log.WithComponent("completion"),
	}
}

// Complete handles the non-streaming path: one choice with finish_reason
// "stop" and usage where total = prompt + completion.
func (s *Service) Complete(ctx context.Context, req *models.ChatCompletionRequest) (*models.ChatCompletionResponse, error) {
	content, usage, err := s.generate(ctx, req)
	if err != nil {
		return nil, err
	}

	resp := &models.ChatCompletionResponse{
		ID:      newCompletionID(),
		Object:  objectCompletion,
		Created: time.Now().Unix(),
		Model:   req.Model,
		Choices: []models.Choice{
			{
				Index:        0,
				Message:      models.ChatMessage{Role: models.RoleAssistant, Content: content},
				FinishReason: finishStop,
			},
		},
		Usage: usage,
	}
	s.logger.Info("completion %s: model=%s prompt_tokens=%d completion_tokens=%d",
		resp.ID, resp.Model, usage.PromptTokens, usage.CompletionTokens)
	return resp, nil
}

// CompleteStream handles the streaming path. It returns the full chunk
// sequence in emission order; transport-level pacing and the [DONE] sentinel
// belong to the HTTP layer.
func (s *Service) CompleteStream(ctx context.Context, req *models.ChatCompletionRequest) ([]models.StreamChunk, error) {
	content, usage, err := s.generate(ctx, req)
	if err != nil {
		return nil, err
	}

	id := newCompletionID()
	created := time.Now().Unix()
	words := strings.Fields(content)

	// Empty content still yields exactly one terminal chunk so that every
	// stream carries a finish_reason before the sentinel.
	if len(words) == 0 {
		reason := finishStop
		return []models.StreamChunk{{
			ID:      id,
			Object:  objectChunk,
			Created: created,
			Model:   req.Model,
			Choices: []models.StreamChoice{
				{
					Index:        0,
					Delta:        models.Delta{Role: models.RoleAssistant},
					FinishReason: &reason,
				},
			},
		}}, nil
	}

	chunks := make([]models.StreamChunk, 0, len(words))
	for i, word := range words {
		delta := models.Delta{Content: word}
		if i == 0 {
			// The opening chunk announces the assistant role.
			delta.Role = models.RoleAssistant
		}
		var finish *string
		if i < len(words)-1 {
			delta.Content += " "
		} else {
			reason := finishStop
			finish = &reason
		}
		chunks = append(chunks, models.StreamChunk{
			ID:      id,
			Object:  objectChunk,
			Created: created,
			Model:   req.Model,
			Choices: []models.StreamChoice{
				{
					Index:        0,
					Delta:        delta,
					FinishReason: finish,
				},
			},
		})
	}
	s.logger.Info("completion %s: model=%s chunks=%d completion_tokens=%d",
		id, req.Model, len(chunks), usage.CompletionTokens)
	return chunks, nil
}

// generate runs the shared validation and generation steps
func (s *Service) generate(ctx context.Context, req *models.ChatCompletionRequest) (string, models.Usage, error) {
	if !s.catalog.Has(req.Model) {
		return "", models.Usage{}, &models.ModelNotFoundError{Model: req.Model}
	}

	temperature := models.DefaultTemperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}
	content := s.gen.Generate(ctx, req.Messages, temperature)

	promptTokens := 0
	for _, msg := range req.Messages {
		promptTokens += tokens.Estimate(msg.Content)
	}
	completionTokens := tokens.Estimate(content)

	return content, models.Usage{
		PromptTokens:     promptTokens,
		CompletionTokens: completionTokens,
		TotalTokens:      promptTokens + completionTokens,
	}, nil
}

// newCompletionID builds a unique completion identifier: the fixed prefix
// plus the first 29 hex characters of a random UUID.
func newCompletionID() string {
	hexID := strings.ReplaceAll(uuid.NewString(), "-", "")
	return idPrefix + hexID[:29]
}
