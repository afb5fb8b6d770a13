package repository

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"atrika/internal/domain"

	"github.com/rs/zerolog"
)

const recoveryInterval = time.Minute

// FailoverStore writes to primary until it fails, then serves from fallback
// and retries primary once per recoveryInterval.
type FailoverStore struct {
	primary  domain.KVStore
	fallback domain.KVStore
	logger   *zerolog.Logger

	isDown    atomic.Bool
	mu        sync.Mutex
	lastCheck time.Time
}

func NewFailoverStore(primary, fallback domain.KVStore, logger *zerolog.Logger) *FailoverStore {
	return &FailoverStore{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

func (r *FailoverStore) markDown(err error) {
	r.logger.Error().Err(err).Msg("Primary session backend failed, falling back to memory")
	r.isDown.Store(true)
	r.mu.Lock()
	r.lastCheck = time.Now()
	r.mu.Unlock()
}

// shouldRetry reports whether enough time passed to probe the primary again.
func (r *FailoverStore) shouldRetry() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if time.Since(r.lastCheck) <= recoveryInterval {
		return false
	}
	r.lastCheck = time.Now()
	return true
}

func (r *FailoverStore) Get(ctx context.Context, key string) ([]byte, error) {
	if !r.isDown.Load() {
		val, err := r.primary.Get(ctx, key)
		if err == nil {
			return val, nil
		}
		r.markDown(err)
	} else if r.shouldRetry() {
		val, err := r.primary.Get(ctx, key)
		if err == nil {
			r.logger.Info().Msg("Primary session backend recovered")
			r.isDown.Store(false)
			return val, nil
		}
	}

	return r.fallback.Get(ctx, key)
}

func (r *FailoverStore) Set(ctx context.Context, key string, value []byte) error {
	if !r.isDown.Load() {
		err := r.primary.Set(ctx, key, value)
		if err == nil {
			return nil
		}
		r.markDown(err)
	}

	return r.fallback.Set(ctx, key, value)
}

func (r *FailoverStore) Delete(ctx context.Context, keys ...string) error {
	if !r.isDown.Load() {
		err := r.primary.Delete(ctx, keys...)
		if err == nil {
			return nil
		}
		r.markDown(err)
	}

	return r.fallback.Delete(ctx, keys...)
}
