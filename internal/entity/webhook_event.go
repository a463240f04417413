package entity

import "time"

// WebhookEvent records a processor webhook delivery that has already been
// processed. Payment processors redeliver webhooks; a recorded delivery is
// acknowledged without touching any donation again.
type WebhookEvent struct {
	ID        string    `db:"id"`
	Type      string    `db:"type"`
	CreatedAt time.Time `db:"created_at"`
}

// NewWebhookEvent creates a new WebhookEvent instance
func NewWebhookEvent(id, eventType string, createdAt time.Time) *WebhookEvent {
	return &WebhookEvent{
		ID:        id,
		Type:      eventType,
		CreatedAt: createdAt,
	}
}
