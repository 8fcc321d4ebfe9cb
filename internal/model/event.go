package model

// EventType is whether an event happens inside or outside.
type EventType string

const (
	EventTypeIndoor  EventType = "indoor"
	EventTypeOutdoor EventType = "outdoor"
)

// Event is a row of the events store.
type Event struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Type        EventType `json:"type"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Date        string    `json:"date"` // YYYY-MM-DD
	Time        string    `json:"time"` // HH:MM
}
