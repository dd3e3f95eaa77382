// Package catalog holds the fixed set of advertised models. The catalog is
// built once at startup and never mutated afterwards, so concurrent reads
// need no locking.
package catalog

import (
	"sort"

	"github.com/aichatops/mockgpt/internal/models"
)

// Catalog maps model ids to their descriptors
type Catalog struct {
	entries map[string]models.ModelInfo
}

// New creates the default catalog with the advertised models
func New() *Catalog {
	return FromEntries([]models.ModelInfo{
		{
			ID:         "gpt-3.5-turbo",
			Object:     "model",
			Created:    1677610602,
			OwnedBy:    "openai",
			Permission: []interface{}{},
			Root:       "gpt-3.5-turbo",
		},
		{
			ID:         "gpt-4",
			Object:     "model",
			Created:    1687882411,
			OwnedBy:    "openai",
			Permission: []interface{}{},
			Root:       "gpt-4",
		},
		{
			ID:         "gpt-4-turbo",
			Object:     "model",
			Created:    1712361441,
			OwnedBy:    "openai",
			Permission: []interface{}{},
			Root:       "gpt-4-turbo",
		},
	})
}

// FromEntries creates a catalog from an explicit descriptor list
func FromEntries(entries []models.ModelInfo) *Catalog {
	m := make(map[string]models.ModelInfo, len(entries))
	for _, e := range entries {
		m[e.ID] = e
	}
	return &Catalog{entries: m}
}

// Lookup returns the descriptor for the given model id
func (c *Catalog) Lookup(id string) (models.ModelInfo, bool) {
	info, ok := c.entries[id]
	return info, ok
}

// Has reports whether the model id is advertised
func (c *Catalog) Has(id string) bool {
	_, ok := c.entries[id]
	return ok
}

// List returns all descriptors sorted by id
func (c *Catalog) List() []models.ModelInfo {
	out := make([]models.ModelInfo, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
