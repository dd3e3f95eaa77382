package generator

import (
	"context"
	"time"

	"github.com/aichatops/mockgpt/internal/classifier"
	"github.com/aichatops/mockgpt/internal/fallback"
	"github.com/aichatops/mockgpt/internal/logger"
	"github.com/aichatops/mockgpt/internal/models"
	"github.com/aichatops/mockgpt/internal/upstream"
)

// DefaultUpstreamTimeout bounds the single upstream attempt per request.
const DefaultUpstreamTimeout = 30 * time.Second

// FallbackGenerator answers from the canned-reply table, optionally trying a
// real upstream provider first. Exactly one upstream attempt is made per
// request; any failure is logged and absorbed, so Generate always produces a
// response.
type FallbackGenerator struct {
	upstream  upstream.Client // nil when no credential is configured
	timeout   time.Duration
	responder *fallback.Responder
	logger    *logger.Logger
}

// NewFallback creates a fallback generator. client may be nil to force pure
// fallback mode; a zero timeout uses DefaultUpstreamTimeout.
func NewFallback(client upstream.Client, timeout time.Duration, responder *fallback.Responder, log *logger.Logger) *FallbackGenerator {
	if timeout <= 0 {
		timeout = DefaultUpstreamTimeout
	}
	return &FallbackGenerator{
		upstream:  client,
		timeout:   timeout,
		responder: responder,
		logger:    log.WithComponent("fallback_generator"),
	}
}

func (g *FallbackGenerator) Generate(ctx context.Context, messages []models.ChatMessage, _ float32) string {
	var last string
	if len(messages) > 0 {
		last = messages[len(messages)-1].Content
	}

	if g.upstream != nil {
		callCtx, cancel := context.WithTimeout(ctx, g.timeout)
		reply, err := g.upstream.Complete(callCtx, "", messages)
		cancel()
		switch {
		case err != nil:
			g.logger.Warn("upstream call failed, using fallback response: %v", err)
		case reply == "":
			g.logger.Warn("upstream returned empty content, using fallback response")
		default:
			return reply
		}
	}

	intent := classifier.Classify(last)
	g.logger.Debug("classified message as %q", intent)
	return g.responder.Reply(intent)
}
