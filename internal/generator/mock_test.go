package generator

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aichatops/mockgpt/internal/models"
)

func userMessage(content string) []models.ChatMessage {
	return []models.ChatMessage{{Role: models.RoleUser, Content: content}}
}

func TestMockGeneratorDeterministic(t *testing.T) {
	g := NewMock()
	ctx := context.Background()

	first := g.Generate(ctx, userMessage("what is the weather like"), 0.7)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, g.Generate(ctx, userMessage("what is the weather like"), 0.7))
	}
}

func TestMockGeneratorNeverEmpty(t *testing.T) {
	g := NewMock()
	ctx := context.Background()

	inputs := []string{"", "Hi", "a much longer question about many different things", "日本語のテキスト"}
	for _, in := range inputs {
		assert.NotEmpty(t, g.Generate(ctx, userMessage(in), 0.7))
	}
	assert.NotEmpty(t, g.Generate(ctx, nil, 0.7))
}

func TestMockGeneratorTemperatureVariation(t *testing.T) {
	g := NewMock()
	ctx := context.Background()
	msgs := userMessage("tell me something")

	base := g.Generate(ctx, msgs, 0.7)

	creative := g.Generate(ctx, msgs, 1.5)
	assert.Equal(t, base+" I'm feeling quite creative today!", creative)

	precise := g.Generate(ctx, msgs, 0.1)
	assert.Equal(t, "Based on the data, "+strings.ToLower(base), precise)

	// Boundary values take neither decoration.
	assert.Equal(t, base, g.Generate(ctx, msgs, 1.0))
	assert.Equal(t, base, g.Generate(ctx, msgs, 0.3))
}

func TestMockGeneratorUsesLastMessage(t *testing.T) {
	g := NewMock()
	ctx := context.Background()

	conversation := []models.ChatMessage{
		{Role: models.RoleSystem, Content: "You are a helpful assistant."},
		{Role: models.RoleUser, Content: "ignored earlier question"},
		{Role: models.RoleUser, Content: "final question"},
	}
	assert.Equal(t,
		g.Generate(ctx, userMessage("final question"), 0.7),
		g.Generate(ctx, conversation, 0.7),
	)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 50))
	long := strings.Repeat("x", 80)
	assert.Equal(t, strings.Repeat("x", 50), truncate(long, 50))
}
