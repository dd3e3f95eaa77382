// Package auth implements the bearer-credential gate. Keys live in a static
// allow-list; there is no expiry or rotation, which is an accepted limitation
// of this illustrative service.
package auth

import (
	"strings"

	"github.com/aichatops/mockgpt/internal/models"
)

// Gate validates bearer credentials against an allow-list
type Gate struct {
	keys map[string]struct{}
}

// NewGate creates a gate accepting exactly the given keys
func NewGate(keys []string) *Gate {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if k != "" {
			set[k] = struct{}{}
		}
	}
	return &Gate{keys: set}
}

// Authenticate checks an Authorization header value. It returns
// models.ErrUnauthorized for a missing scheme, empty token, or a token
// outside the allow-list; callers must not leak which keys are valid.
func (g *Gate) Authenticate(header string) error {
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return models.ErrUnauthorized
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return models.ErrUnauthorized
	}
	if _, ok := g.keys[token]; !ok {
		return models.ErrUnauthorized
	}
	return nil
}
