package repositories

import (
	"encoding/json"
	"fmt"

	"github.com/uniconnect/uniconnect/internal/storage"
)

// collection gives every record type the same whole-value persistence:
// the full slice is decoded from one storage key and the full slice is
// re-encoded on save. A missing or malformed value decodes to empty.
type collection[T any] struct {
	store storage.Store
	key   string
}

// All returns the decoded collection, or an empty slice when the key is
// absent or its value does not parse.
func (c collection[T]) All() []T {
	raw, ok := c.store.Get(c.key)
	if !ok || raw == "" {
		return []T{}
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

// SaveAll replaces the stored collection with items.
func (c collection[T]) SaveAll(items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	if err := c.store.Set(c.key, string(data)); err != nil {
		return fmt.Errorf("persist %s: %w", c.key, err)
	}
	return nil
}
