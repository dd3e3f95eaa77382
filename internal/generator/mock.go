package generator

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/aichatops/mockgpt/internal/models"
)

// MockGenerator derives a response deterministically from a hash of the last
// message content. It never performs network calls and never fails; the
// OpenAI-compatible surface uses it in place of a real model.
type MockGenerator struct{}

// NewMock creates a mock generator
func NewMock() *MockGenerator {
	return &MockGenerator{}
}

func (g *MockGenerator) Generate(_ context.Context, messages []models.ChatMessage, temperature float32) string {
	var last string
	if len(messages) > 0 {
		last = messages[len(messages)-1].Content
	}

	candidates := []string{
		fmt.Sprintf("I understand you're asking about: %s... Here's my response.", truncate(last, 50)),
		"That's an interesting question. Let me think about that.",
		"Based on what you've shared, I would suggest...",
		"I can help you with that. Here are some thoughts:",
		"That's a great point. From my perspective...",
	}

	response := candidates[hashIndex(last, len(candidates))]

	// Cosmetic variation driven by temperature.
	if temperature > 1.0 {
		response += " I'm feeling quite creative today!"
	} else if temperature < 0.3 {
		response = "Based on the data, " + strings.ToLower(response)
	}
	return response
}

func hashIndex(s string, n int) int {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int(h.Sum64() % uint64(n))
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
