// Package ratelimit provides per-key request throttling.
package ratelimit

import (
	"sync"
	"time"
)

// Result describes the outcome of one rate limit check.
type Result struct {
	Success   bool
	Limit     int
	Remaining int
	// Reset is when the oldest request in the window expires and a slot frees up.
	Reset time.Time
}

// Limiter decides whether a request identified by key may proceed.
type Limiter interface {
	Limit(key string) Result
}

// SlidingWindow implements Limiter over a moving time window per key.
type SlidingWindow struct {
	mu       sync.Mutex
	requests map[string][]time.Time
	limit    int
	window   time.Duration
	now      func() time.Time

	done      chan struct{}
	closeOnce sync.Once
}

// New creates a sliding window limiter and starts the background eviction goroutine.
// Call Close to stop it.
func New(limit int, window time.Duration) *SlidingWindow {
	rl := newSlidingWindow(limit, window, time.Now)
	rl.startEviction()
	return rl
}

func newSlidingWindow(limit int, window time.Duration, now func() time.Time) *SlidingWindow {
	return &SlidingWindow{
		requests: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
		now:      now,
		done:     make(chan struct{}),
	}
}

// Limit records a request for key if the window has room.
func (r *SlidingWindow) Limit(key string) Result {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	recent := r.recent(key, now)

	if len(recent) >= r.limit {
		r.requests[key] = recent
		return Result{
			Success:   false,
			Limit:     r.limit,
			Remaining: 0,
			Reset:     recent[0].Add(r.window),
		}
	}

	recent = append(recent, now)
	r.requests[key] = recent
	return Result{
		Success:   true,
		Limit:     r.limit,
		Remaining: r.limit - len(recent),
		Reset:     recent[0].Add(r.window),
	}
}

// Close stops the eviction goroutine. It is safe to call more than once.
func (r *SlidingWindow) Close() {
	r.closeOnce.Do(func() { close(r.done) })
}

// recent returns the timestamps for key that are still inside the window.
// Caller must hold r.mu.
func (r *SlidingWindow) recent(key string, now time.Time) []time.Time {
	cutoff := now.Add(-r.window)
	var fresh []time.Time
	for _, t := range r.requests[key] {
		if t.After(cutoff) {
			fresh = append(fresh, t)
		}
	}
	return fresh
}

func (r *SlidingWindow) evict() {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	for key := range r.requests {
		if fresh := r.recent(key, now); len(fresh) == 0 {
			delete(r.requests, key)
		} else {
			r.requests[key] = fresh
		}
	}
}

// startEviction periodically drops keys with no requests left in the window,
// so the map does not grow with every address ever seen.
func (r *SlidingWindow) startEviction() {
	go func() {
		ticker := time.NewTicker(r.window)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.evict()
			case <-r.done:
				return
			}
		}
	}()
}
