package notifications

import "context"

// Sender delivers a text message to a recipient. Delivery is best-effort:
// implementations convert gateway failures into a failed Outcome instead of
// returning an error.
type Sender interface {
	Send(ctx context.Context, recipient, text string) Outcome
}

// Outcome is the structured result of a notification attempt
type Outcome struct {
	Success   bool   `json:"success"`
	GroupID   string `json:"group_id,omitempty"`
	SentCount int    `json:"sent_count"`
	Detail    string `json:"detail,omitempty"`
}
