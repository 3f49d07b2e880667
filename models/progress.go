package models

// Progress event types. A stream is zero or more EventProgress entries
// followed by exactly one terminal event (EventError or EventComplete).
const (
	EventProgress = "progress"
	EventError    = "error"
	EventComplete = "complete"
)

// ProgressEvent is one entry in a streaming analysis.
type ProgressEvent struct {
	Type string `json:"type"`

	// Message describes the phase for progress events, or the failure
	// for error events.
	Message string `json:"message,omitempty"`

	// Step and Total report pipeline position on progress events.
	Step  int `json:"step,omitempty"`
	Total int `json:"total,omitempty"`

	// Data carries the final report on complete events.
	Data *Report `json:"data,omitempty"`
}

// Terminal reports whether the event ends the stream.
func (e ProgressEvent) Terminal() bool {
	return e.Type == EventError || e.Type == EventComplete
}
