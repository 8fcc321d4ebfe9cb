package gemini

import "time"

const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout = 30 * time.Second
)

// Gemini only knows "user" and "model" roles.
const (
	RoleUser  = "user"
	RoleModel = "model"
)
