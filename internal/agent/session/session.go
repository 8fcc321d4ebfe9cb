package session

import (
	"fmt"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"multi-agent-assistant/internal/agent/orchestrator"
)

// Get returns the session's orchestrator, creating it on a miss. Each hit
// refreshes the session's position in the LRU.
func (m *Manager) Get(id string) *orchestrator.Orchestrator {
	m.mu.Lock()
	defer m.mu.Unlock()

	if o, ok := m.sessions.Get(id); ok {
		return o
	}
	o := m.factory(id)
	m.sessions.Add(id, o)
	return o
}

// Lookup returns an existing session without creating one.
func (m *Manager) Lookup(id string) (*orchestrator.Orchestrator, bool) {
	return m.sessions.Peek(id)
}

// Clear wipes a session's memory. It reports whether the session existed.
func (m *Manager) Clear(id string) bool {
	o, ok := m.sessions.Peek(id)
	if !ok {
		return false
	}
	o.ClearMemory()
	return true
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	return m.sessions.Len()
}

// Allow consumes one request token for the session.
func (m *Manager) Allow(id string) error {
	if m.limiter == nil {
		return nil
	}
	return m.limiter.Allow(id)
}

type rateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(size, requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](size, nil, limiterTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) Allow(key string) error {
	if !rl.limiter(key).Allow() {
		return fmt.Errorf("%w for session %s", ErrRateLimited, key)
	}
	return nil
}

// limiter returns the key's limiter, creating it under the lock so
// concurrent first requests share one bucket.
func (rl *rateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	l, ok := rl.limiters.Get(key)
	if !ok {
		l = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, l)
	}
	return l
}
