package domain

import "time"

const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// ActionItem is a single advisory to-do assigned to a client.
type ActionItem struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	Text      string    `json:"text"`
	Priority  string    `json:"priority"`
	Done      bool      `json:"done"`
	Month     string    `json:"month,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func ValidPriority(p string) bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}
