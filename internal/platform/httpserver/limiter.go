package httpserver

import (
	"sync"

	"golang.org/x/time/rate"
)

// submitLimiter throttles submission creation per user. Limits are
// in-process; a multi-replica deployment rates each replica independently.
type submitLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func NewSubmitLimiter(perMinute int, burst int) *submitLimiter {
	if perMinute <= 0 {
		perMinute = 10
	}
	if burst <= 0 {
		burst = 1
	}
	return &submitLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(float64(perMinute) / 60.0),
		burst:    burst,
	}
}

func (l *submitLimiter) Allow(userID string) bool {
	l.mu.Lock()
	limiter, ok := l.limiters[userID]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[userID] = limiter
	}
	l.mu.Unlock()
	return limiter.Allow()
}
