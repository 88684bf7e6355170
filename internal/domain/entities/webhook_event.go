package entities

import "time"

// WebhookEvent marks a payment-processor event as processed.
//
// Storage model (DynamoDB):
//   - PK: id (the processor's event id)
//
// The processor delivers at-least-once; a conditional put on this table is
// what makes webhook processing idempotent.
type WebhookEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	ReceivedAt time.Time `json:"received_at"`
}
