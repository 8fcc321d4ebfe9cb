package session

import "time"

const (
	DefaultMaxSessions = 1000
	DefaultTTL         = 30 * time.Minute

	// limiterTTL bounds how long an idle session's limiter is kept.
	limiterTTL = 5 * time.Minute
)
