package agent

import "sync"

// Registry maps labels to handlers.
type Registry struct {
	mu       sync.RWMutex
	handlers map[Label]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[Label]Handler)}
}

// Register adds a handler under its own label, replacing any previous one.
func (r *Registry) Register(h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[h.Label()] = h
}

// Get retrieves a handler by label.
func (r *Registry) Get(label Label) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[label]
	return h, ok
}

// Labels returns registered labels in the canonical order.
func (r *Registry) Labels() []Label {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Label, 0, len(r.handlers))
	for _, l := range Labels {
		if _, ok := r.handlers[l]; ok {
			out = append(out, l)
		}
	}
	return out
}

// Handlers returns registered handlers in the canonical order.
func (r *Registry) Handlers() []Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Handler, 0, len(r.handlers))
	for _, l := range Labels {
		if h, ok := r.handlers[l]; ok {
			out = append(out, h)
		}
	}
	return out
}

// Describe returns the catalogue entries for the registered labels.
func (r *Registry) Describe() []Descriptor {
	labels := r.Labels()
	out := make([]Descriptor, 0, len(labels))
	for _, l := range labels {
		if d, ok := Catalogue[l]; ok {
			out = append(out, d)
		}
	}
	return out
}
