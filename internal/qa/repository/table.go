package repository

import (
	"context"
	"sync"
)

// table is a map guarded by a reader/writer lock. Values are copied through
// clone on every read and write so no caller holds a reference into the map.
type table[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]V
	clone func(V) V
}

func newTable[K comparable, V any](clone func(V) V) *table[K, V] {
	if clone == nil {
		clone = func(v V) V { return v }
	}
	return &table[K, V]{items: make(map[K]V), clone: clone}
}

func (t *table[K, V]) values(ctx context.Context) ([]V, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]V, 0, len(t.items))
	for _, v := range t.items {
		out = append(out, t.clone(v))
	}
	return out, nil
}

func (t *table[K, V]) get(ctx context.Context, key K) (V, bool, error) {
	var zero V
	if err := ctx.Err(); err != nil {
		return zero, false, err
	}
	t.mu.RLock()
	defer t.mu.RUnlock()

	v, ok := t.items[key]
	if !ok {
		return zero, false, nil
	}
	return t.clone(v), true, nil
}

func (t *table[K, V]) put(ctx context.Context, key K, v V) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.items[key] = t.clone(v)
	return nil
}

// replace overwrites the value under an existing key and reports whether the
// key was present. A missing key leaves the table untouched.
func (t *table[K, V]) replace(ctx context.Context, key K, v V) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.items[key]; !ok {
		return false, nil
	}
	t.items[key] = t.clone(v)
	return true, nil
}

func (t *table[K, V]) remove(ctx context.Context, key K) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.items[key]; !ok {
		return false, nil
	}
	delete(t.items, key)
	return true, nil
}

func (t *table[K, V]) len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.items)
}
