package ratelimiter

import (
	"sync"
	"time"
)

// limiter is a token bucket for a single identity.
type limiter struct {
	tokens     float64
	capacity   float64
	rate       float64
	lastRefill time.Time
	mu         sync.Mutex
	timer      *time.Timer
	identity   string
	parent     *UserRateLimiter
}

// UserRateLimiter manages token buckets keyed by identity (user id, IP,
// or "global"). Idle buckets expire after expirationTime.
type UserRateLimiter struct {
	limiters       map[string]*limiter
	mu             sync.RWMutex
	rate           float64
	capacity       float64
	expirationTime time.Duration
}

func New(rate float64, capacity float64, expirationTime time.Duration) *UserRateLimiter {
	return &UserRateLimiter{
		limiters:       make(map[string]*limiter),
		rate:           rate,
		capacity:       capacity,
		expirationTime: expirationTime,
	}
}

func (url *UserRateLimiter) cleanup(identity string) {
	url.mu.Lock()
	delete(url.limiters, identity)
	url.mu.Unlock()
}

func (l *limiter) resetTimer() {
	if l.timer != nil {
		l.timer.Stop()
	}
	l.timer = time.AfterFunc(l.parent.expirationTime, func() {
		l.parent.cleanup(l.identity)
	})
}

func (url *UserRateLimiter) getLimiter(identity string) *limiter {
	url.mu.RLock()
	l, exists := url.limiters[identity]
	url.mu.RUnlock()

	if exists {
		l.resetTimer()
		return l
	}

	url.mu.Lock()
	defer url.mu.Unlock()

	// Double-check after acquiring write lock
	l, exists = url.limiters[identity]
	if exists {
		l.resetTimer()
		return l
	}

	l = &limiter{
		tokens:     url.capacity,
		capacity:   url.capacity,
		rate:       url.rate,
		lastRefill: time.Now(),
		identity:   identity,
		parent:     url,
	}
	url.limiters[identity] = l
	l.resetTimer()

	return l
}

func (l *limiter) allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(l.lastRefill).Seconds()

	l.tokens += elapsed * l.rate
	if l.tokens > l.capacity {
		l.tokens = l.capacity
	}
	l.lastRefill = now

	if l.tokens >= 1 {
		l.tokens--
		return true
	}
	return false
}

// Allow reports whether a request for the given identity may proceed.
func (url *UserRateLimiter) Allow(identity string) bool {
	return url.getLimiter(identity).allow()
}

// Stop cleans up all timers
func (url *UserRateLimiter) Stop() {
	url.mu.Lock()
	defer url.mu.Unlock()

	for _, l := range url.limiters {
		if l.timer != nil {
			l.timer.Stop()
		}
	}
}

func OnceInSecond() *UserRateLimiter { return New(1, 1, time.Hour) }
func OnceInMinute() *UserRateLimiter { return New(1.0/60, 1, time.Hour) }
func Rps10() *UserRateLimiter        { return New(10, 10, time.Hour) }
func Rps100() *UserRateLimiter       { return New(100, 100, time.Hour) }
