package agent

import "context"

// Label names a capability the router can pick.
type Label string

const (
	LabelSQL        Label = "sql"
	LabelDocumentQA Label = "document-qa"
	LabelWeather    Label = "weather"
	LabelRecommend  Label = "recommend"
	LabelImage      Label = "image"
	LabelGeneral    Label = "general"
)

// Labels is the closed set, in display order.
var Labels = []Label{LabelSQL, LabelDocumentQA, LabelWeather, LabelRecommend, LabelImage, LabelGeneral}

// Valid reports whether l is one of the known labels.
func (l Label) Valid() bool {
	for _, k := range Labels {
		if l == k {
			return true
		}
	}
	return false
}

// Result is what every handler returns. Failures are carried in Error,
// never returned as a Go error.
type Result struct {
	Formatted string `json:"formatted"`
	Payload   any    `json:"payload,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Handler answers one kind of request.
type Handler interface {
	Label() Label
	Handle(ctx context.Context, query string) Result
}

// Resetter is implemented by handlers that keep per-session state.
type Resetter interface {
	Reset()
}

// Descriptor is the catalogue entry for a handler.
type Descriptor struct {
	Label       Label    `json:"name"`
	Description string   `json:"description"`
	Examples    []string `json:"examples"`
}
