package entities

import "time"

// EventType enumerates the operational events recorded in the analytics log.

type EventType string

const (
	EventCompanyCreated   EventType = "COMPANY_CREATED"
	EventClientLinked     EventType = "CLIENT_LINKED"
	EventOrderCreated     EventType = "ORDER_CREATED"
	EventOrderFinalized   EventType = "ORDER_FINALIZED"
	EventPieceCreated     EventType = "PIECE_CREATED"
	EventLabelPrinted     EventType = "LABEL_PRINTED"
	EventGoldPriceUpdated EventType = "GOLD_PRICE_UPDATED"
	EventPaymentSuccess   EventType = "PAYMENT_SUCCESS"
	EventPaymentSkipped   EventType = "PAYMENT_SKIPPED"
)

// AnalyticsEvent is one row of the operational event log.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (company_id-index): company_id
//
// Persistence is best-effort: a failed write is logged and never fails the
// operation that produced the event.
type AnalyticsEvent struct {
	ID              string         `json:"id"`
	Type            EventType      `json:"type"`
	Timestamp       time.Time      `json:"timestamp"`
	CompanyID       string         `json:"company_id"`
	CompanyRole     CompanyRole    `json:"company_role"`
	RelatedEntityID string         `json:"related_entity_id"`
	Metadata        map[string]any `json:"metadata,omitempty"`
}
