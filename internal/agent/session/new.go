// Package session keeps one orchestrator per conversation and throttles
// each conversation independently.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"multi-agent-assistant/internal/agent/orchestrator"
)

// Factory builds a fresh orchestrator for a new session id.
type Factory func(id string) *orchestrator.Orchestrator

type Config struct {
	MaxSessions int
	TTL         time.Duration

	// RateLimitPerMin of zero disables throttling.
	RateLimitPerMin int
}

// Manager is an expiring LRU of sessions. Safe for concurrent use.
type Manager struct {
	mu       sync.Mutex
	sessions *expirable.LRU[string, *orchestrator.Orchestrator]
	limiter  *rateLimiter
	factory  Factory
}

func New(cfg Config, factory Factory) *Manager {
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}

	m := &Manager{
		sessions: expirable.NewLRU[string, *orchestrator.Orchestrator](cfg.MaxSessions, nil, cfg.TTL),
		factory:  factory,
	}
	if cfg.RateLimitPerMin > 0 {
		m.limiter = newRateLimiter(cfg.MaxSessions, cfg.RateLimitPerMin)
	}
	return m
}

// NewID returns a random session id.
func (m *Manager) NewID() string {
	return uuid.NewString()
}
