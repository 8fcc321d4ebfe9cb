package middleware

const (
	HeaderSessionID = "X-Session-ID"
	QuerySessionID  = "session_id"

	// ContextKeySessionID is the gin context key holding the resolved id.
	ContextKeySessionID = "session_id"
)
