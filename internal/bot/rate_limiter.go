package bot

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiter throttles slash commands per Discord user.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func NewRateLimiter(commandsPerSecond float64, burstSize int) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(commandsPerSecond),
		burst:    burstSize,
	}
}

// Allow reports whether userID may run a command now, consuming a token if so.
func (rl *RateLimiter) Allow(userID string) bool {
	rl.mu.Lock()
	limiter, ok := rl.limiters[userID]
	if !ok {
		// TODO: evict limiters of users that have been idle for longer than a full refill.
		limiter = rate.NewLimiter(rl.limit, rl.burst)
		rl.limiters[userID] = limiter
	}
	rl.mu.Unlock()

	return limiter.Allow()
}
