package entities

import "encoding/json"

// PaymentIntentRequest is the outbound create-intent command sent to the
// payment processor. Amount is in major currency units; metadata carries the
// out-of-band identifiers the webhook uses to reconcile events back to a
// company.
type PaymentIntentRequest struct {
	Amount    float64
	CompanyID string
	UserID    string
	// Environment tags the intent metadata (sandbox vs production).
	Environment string
}

// PaymentIntent is the processor's answer to a create-intent call.
// ProviderResponse keeps the original payload for traceability/audit.
type PaymentIntent struct {
	ID               string          `json:"id"`
	ClientSecret     string          `json:"client_secret,omitempty"`
	Status           string          `json:"status"`
	ProviderResponse json.RawMessage `json:"provider_response,omitempty"`
}
