package request

import "xtagy_banho/internal/usecase"

// PaymentIntentCreateRequest asks the processor for a new intent. Amount is
// in major currency units.
type PaymentIntentCreateRequest struct {
	Amount    float64 `json:"amount"`
	CompanyID string  `json:"company_id"`
}

// SkipPaymentRequest marks onboarding payment as skipped, moving the
// subscription into its trial window.
type SkipPaymentRequest struct {
	CompanyID string `json:"company_id" binding:"required"`
}

// ProcessorWebhookRequest is the inbound processor event envelope. Metadata
// carries the company id the service wrote at intent creation; an event
// without it is acknowledged and ignored.
type ProcessorWebhookRequest struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID       string            `json:"id"`
			Amount   float64           `json:"amount"`
			Metadata map[string]string `json:"metadata"`
		} `json:"object"`
	} `json:"data"`
}

func (r ProcessorWebhookRequest) ToEvent() usecase.ProcessorEvent {
	companyID := r.Data.Object.Metadata["company_id"]
	if companyID == "" {
		companyID = r.Data.Object.Metadata["companyId"]
	}
	return usecase.ProcessorEvent{
		EventID:   r.ID,
		Type:      r.Type,
		IntentID:  r.Data.Object.ID,
		Amount:    r.Data.Object.Amount,
		CompanyID: companyID,
	}
}
