package models

// AlertPriority orders alerts for display.
type AlertPriority string

const (
	PriorityHigh   AlertPriority = "HIGH"
	PriorityMedium AlertPriority = "MEDIUM"
	PriorityLow    AlertPriority = "LOW"
)

// Alert is an ephemeral actionable condition, generated fresh on every read
// and never persisted.
type Alert struct {
	Type     string        `json:"type"`
	Message  string        `json:"message"`
	Priority AlertPriority `json:"priority"`
}
