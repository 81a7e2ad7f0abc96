package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Collection persists an ordered list of records as a single JSON blob under
// a fixed storage key. Order of the stored slice is preserved verbatim.
type Collection[T any] struct {
	kv  KV
	key string
}

// NewCollection creates a collection gateway over the given storage key.
func NewCollection[T any](kv KV, key string) *Collection[T] {
	return &Collection[T]{kv: kv, key: key}
}

// Key returns the storage key this collection is bound to.
func (c *Collection[T]) Key() string {
	return c.key
}

// Load reads and decodes the stored list. A missing key is an empty
// collection, not an error. A decode failure is reported so callers can
// degrade to empty state.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	data, err := c.kv.Get(ctx, c.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading %s: %w", c.key, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", c.key, err)
	}
	return items, nil
}

// Save encodes and writes the whole list, replacing the previous blob.
func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", c.key, err)
	}
	if err := c.kv.Put(ctx, c.key, data); err != nil {
		return fmt.Errorf("saving %s: %w", c.key, err)
	}
	return nil
}
