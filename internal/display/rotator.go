package display

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Rotator advances an index over n items every interval until its context
// is cancelled.
type Rotator struct {
	n        int
	interval time.Duration
	current  atomic.Int64
	logger   *zerolog.Logger
}

func NewRotator(n int, interval time.Duration, logger *zerolog.Logger) *Rotator {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Rotator{n: n, interval: interval, logger: logger}
}

// Current returns the index of the item on display; 0 when there are no items.
func (r *Rotator) Current() int {
	return int(r.current.Load())
}

// Advance moves to the next item, wrapping around.
func (r *Rotator) Advance() int {
	if r.n <= 0 {
		return 0
	}
	for {
		cur := r.current.Load()
		next := (cur + 1) % int64(r.n)
		if r.current.CompareAndSwap(cur, next) {
			return int(next)
		}
	}
}

// Start blocks, advancing on each tick, and returns when ctx is done.
func (r *Rotator) Start(ctx context.Context) {
	if r.n <= 1 || r.interval <= 0 {
		r.logger.Debug().Int("items", r.n).Msg("banner rotation disabled")
		<-ctx.Done()
		return
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info().Dur("interval", r.interval).Int("items", r.n).Msg("banner rotation started")

	for {
		select {
		case <-ctx.Done():
			r.logger.Info().Msg("banner rotation stopped")
			return
		case <-ticker.C:
			r.Advance()
		}
	}
}
