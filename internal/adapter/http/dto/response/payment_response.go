package response

import "xtagy_banho/internal/domain/entities"

type PaymentIntentResponse struct {
	IntentID     string `json:"intent_id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
}

func FromPaymentIntent(intent entities.PaymentIntent) PaymentIntentResponse {
	return PaymentIntentResponse{
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		Status:       intent.Status,
	}
}
