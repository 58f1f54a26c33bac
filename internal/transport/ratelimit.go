package transport

import (
	"context"
	"fmt"
	"sync"
	"time"

	config "github.com/inference-gateway/touchbridge/config"
	domain "github.com/inference-gateway/touchbridge/internal/domain"
)

// RateLimiter is a per-key sliding window limiter
type RateLimiter struct {
	cfg         config.RateLimitConfig
	actionTimes map[string][]time.Time
	now         func() time.Time
	mu          sync.Mutex
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		cfg:         cfg,
		actionTimes: make(map[string][]time.Time),
		now:         time.Now,
	}
}

// CheckAndRecord records an action for key, or returns an error wrapping
// domain.ErrRateLimited if the window is full
func (rl *RateLimiter) CheckAndRecord(key string) error {
	if !rl.cfg.Enabled {
		return nil
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	valid := rl.prune(key, now)

	if len(valid) >= rl.cfg.MaxActionsPerWindow {
		return fmt.Errorf("%w: maximum %d actions per %d seconds for %s",
			domain.ErrRateLimited, rl.cfg.MaxActionsPerWindow, rl.cfg.WindowSeconds, key)
	}

	rl.actionTimes[key] = append(valid, now)
	return nil
}

// CurrentCount returns the number of actions recorded for key in the current window
func (rl *RateLimiter) CurrentCount(key string) int {
	if !rl.cfg.Enabled {
		return 0
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	return len(rl.prune(key, rl.now()))
}

// Reset clears all recorded actions
func (rl *RateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.actionTimes = make(map[string][]time.Time)
}

// prune must be called with mu held
func (rl *RateLimiter) prune(key string, now time.Time) []time.Time {
	windowStart := now.Add(-time.Duration(rl.cfg.WindowSeconds) * time.Second)

	times := rl.actionTimes[key]
	valid := times[:0]
	for _, t := range times {
		if t.After(windowStart) {
			valid = append(valid, t)
		}
	}

	if len(valid) == 0 {
		delete(rl.actionTimes, key)
		return nil
	}
	rl.actionTimes[key] = valid
	return valid
}

// RateLimited rejects commands for a device once it exceeds its window.
// Rejections are returned like any other transport failure.
type RateLimited struct {
	next    domain.CommandTransport
	limiter *RateLimiter
}

// NewRateLimited wraps next with limiter, keyed by device ID
func NewRateLimited(next domain.CommandTransport, limiter *RateLimiter) *RateLimited {
	return &RateLimited{next: next, limiter: limiter}
}

// Tap implements domain.CommandTransport
func (r *RateLimited) Tap(ctx context.Context, deviceID string, at domain.Point) error {
	if err := r.limiter.CheckAndRecord(deviceID); err != nil {
		return err
	}
	return r.next.Tap(ctx, deviceID, at)
}

// TouchAndHold implements domain.CommandTransport
func (r *RateLimited) TouchAndHold(ctx context.Context, deviceID string, at domain.Point) error {
	if err := r.limiter.CheckAndRecord(deviceID); err != nil {
		return err
	}
	return r.next.TouchAndHold(ctx, deviceID, at)
}

// Swipe implements domain.CommandTransport
func (r *RateLimited) Swipe(ctx context.Context, deviceID string, from, to domain.Point) error {
	if err := r.limiter.CheckAndRecord(deviceID); err != nil {
		return err
	}
	return r.next.Swipe(ctx, deviceID, from, to)
}
