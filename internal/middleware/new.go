package middleware

import (
	"multi-agent-assistant/pkg/log"
)

// Sessions is the part of the session store the middleware needs.
type Sessions interface {
	NewID() string
	Allow(id string) error
}

type Middleware struct {
	l        log.Logger
	sessions Sessions
	origins  []string
}

// New builds the middleware set. An empty origins list allows any origin.
func New(l log.Logger, sessions Sessions, origins []string) Middleware {
	return Middleware{
		l:        l,
		sessions: sessions,
		origins:  origins,
	}
}
