package interfaces

import (
	"context"
	"xtagy_banho/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment processor (Mercado Pago).
//
// The service only creates intents through it; charge confirmation comes back
// asynchronously on the webhook, carrying the company id in event metadata.
type IPaymentGateway interface {
	CreateIntent(ctx context.Context, req entities.PaymentIntentRequest) (entities.PaymentIntent, error)
}
