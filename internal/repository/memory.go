package repository

import (
	"context"
	"sync"
)

// MemoryStore keeps session values in process memory.
type MemoryStore struct {
	values sync.Map
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (r *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, ok := r.values.Load(key)
	if !ok {
		return nil, nil
	}
	raw := val.([]byte)
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}

func (r *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	raw := make([]byte, len(value))
	copy(raw, value)
	r.values.Store(key, raw)
	return nil
}

func (r *MemoryStore) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		r.values.Delete(key)
	}
	return nil
}
