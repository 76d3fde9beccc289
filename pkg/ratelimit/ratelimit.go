package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"pontbot/internal/domain"
)

// Limiter bounds outbound translation calls two ways: a rolling
// requests-per-second budget and a cap on calls in flight at once.
// One Limiter is shared by every chat the relay serves.
type Limiter struct {
	budget   *rate.Limiter
	inflight *semaphore.Weighted
	wait     time.Duration
}

// New builds a limiter allowing perSec calls per second (bursting up to
// burst) with at most maxInflight calls running at once. Acquire gives
// up after wait.
func New(perSec float64, burst, maxInflight int, wait time.Duration) *Limiter {
	return &Limiter{
		budget:   rate.NewLimiter(rate.Limit(perSec), burst),
		inflight: semaphore.NewWeighted(int64(maxInflight)),
		wait:     wait,
	}
}

// Acquire blocks until both a budget token and an in-flight slot are
// held, or until the bounded wait elapses. On success the returned
// release frees the in-flight slot and is safe to call more than once.
// On failure the error wraps domain.ErrRateLimited.
func (l *Limiter) Acquire(ctx context.Context) (func(), error) {
	ctx, cancel := context.WithTimeout(ctx, l.wait)
	defer cancel()

	if err := l.inflight.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRateLimited, err)
	}
	if err := l.budget.Wait(ctx); err != nil {
		l.inflight.Release(1)
		return nil, fmt.Errorf("%w: %v", domain.ErrRateLimited, err)
	}

	var once sync.Once
	release := func() {
		once.Do(func() { l.inflight.Release(1) })
	}
	return release, nil
}
