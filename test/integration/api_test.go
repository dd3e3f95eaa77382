package integration

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aichatops/mockgpt/internal/auth"
	"github.com/aichatops/mockgpt/internal/catalog"
	"github.com/aichatops/mockgpt/internal/completion"
	"github.com/aichatops/mockgpt/internal/config"
	"github.com/aichatops/mockgpt/internal/fallback"
	"github.com/aichatops/mockgpt/internal/generator"
	"github.com/aichatops/mockgpt/internal/httpapi"
	"github.com/aichatops/mockgpt/internal/logger"
	"github.com/aichatops/mockgpt/internal/models"
	"github.com/aichatops/mockgpt/internal/sse"
)

// newService wires the full stack the way cmd/server does, with test pacing
// and a seeded random source.
func newService(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	log := logger.New(logger.ERROR, "integration")

	cat := catalog.New()
	gate := auth.NewGate(cfg.Server.APIKeys)
	responder := fallback.NewResponder(rand.New(rand.NewSource(7)))
	chatGen := generator.NewFallback(nil, cfg.UpstreamTimeout(), responder, log)
	completions := completion.NewService(cat, generator.NewMock(), log)

	srv := httpapi.NewServer(gate, completions, chatGen, cat, log, 0)
	return srv.Router()
}

func post(t *testing.T, h http.Handler, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestFullCompletionFlow(t *testing.T) {
	h := newService(t)

	body := `{"model": "gpt-3.5-turbo", "messages": [{"role": "user", "content": "Hi"}]}`
	w := post(t, h, "/v1/chat/completions", "sk-test123", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ChatCompletionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Choices, 1)
	assert.Equal(t, "stop", resp.Choices[0].FinishReason)
	assert.Equal(t, "assistant", resp.Choices[0].Message.Role)
	assert.NotEmpty(t, resp.Choices[0].Message.Content)
	assert.Equal(t, 1, resp.Usage.PromptTokens)
	assert.Equal(t, resp.Usage.PromptTokens+resp.Usage.CompletionTokens, resp.Usage.TotalTokens)

	// The mock generator is deterministic: the same request yields the
	// same content with a fresh identifier.
	w2 := post(t, h, "/v1/chat/completions", "sk-test123", body)
	var resp2 models.ChatCompletionResponse
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &resp2))
	assert.Equal(t, resp.Choices[0].Message.Content, resp2.Choices[0].Message.Content)
	assert.NotEqual(t, resp.ID, resp2.ID)
}

func TestFullStreamingFlow(t *testing.T) {
	h := newService(t)

	body := `{"model": "gpt-4", "messages": [{"role": "user", "content": "Hi"}], "stream": true}`
	w := post(t, h, "/v1/chat/completions", "sk-test123", body)
	require.Equal(t, http.StatusOK, w.Code)

	events := sse.Split(w.Body.Bytes())
	require.NotEmpty(t, events)

	var rebuilt strings.Builder
	sawDone := false
	for _, event := range events {
		payload, done, err := sse.DecodeEvent(event)
		require.NoError(t, err)
		if done {
			sawDone = true
			continue
		}
		require.False(t, sawDone, "no chunks may follow the sentinel")

		var chunk models.StreamChunk
		require.NoError(t, json.Unmarshal(payload, &chunk))
		rebuilt.WriteString(chunk.Choices[0].Delta.Content)
	}
	assert.True(t, sawDone)

	// Reassembled stream equals the non-streaming content for the same input.
	nw := post(t, h, "/v1/chat/completions", "sk-test123",
		`{"model": "gpt-4", "messages": [{"role": "user", "content": "Hi"}]}`)
	var resp models.ChatCompletionResponse
	require.NoError(t, json.Unmarshal(nw.Body.Bytes(), &resp))
	assert.Equal(t, resp.Choices[0].Message.Content, rebuilt.String())
}

func TestEndpointMatrix(t *testing.T) {
	h := newService(t)

	testCases := []struct {
		name   string
		method string
		path   string
		token  string
		body   string
		status int
	}{
		{"Banner", http.MethodGet, "/", "", "", http.StatusOK},
		{"Health", http.MethodGet, "/health", "", "", http.StatusOK},
		{"Info", http.MethodGet, "/api/info", "", "", http.StatusOK},
		{"Models unauthorized", http.MethodGet, "/v1/models", "", "", http.StatusUnauthorized},
		{"Models ok", http.MethodGet, "/v1/models", "sk-prod456", "", http.StatusOK},
		{"Completions bad key", http.MethodPost, "/v1/chat/completions", "sk-nope",
			`{"model": "gpt-4", "messages": [{"role": "user", "content": "Hi"}]}`, http.StatusUnauthorized},
		{"Completions unknown model", http.MethodPost, "/v1/chat/completions", "sk-test123",
			`{"model": "not-a-model", "messages": [{"role": "user", "content": "Hi"}]}`, http.StatusBadRequest},
		{"Completions bad temperature", http.MethodPost, "/v1/chat/completions", "sk-test123",
			`{"model": "gpt-4", "messages": [{"role": "user", "content": "Hi"}], "temperature": 2.5}`, http.StatusBadRequest},
		{"Chat ok", http.MethodPost, "/chat", "", `{"message": "Hello there"}`, http.StatusOK},
		{"Chat empty", http.MethodPost, "/chat", "", `{"message": ""}`, http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			if tc.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}
