package interfaces

import (
	"context"
	"xtagy_banho/internal/domain/entities"
)

// IWebhookEventRepository tracks processed payment-processor event ids.
//
// MarkProcessed must be atomic: it returns false (and no error) when the
// event id was already recorded, which is how at-least-once webhook delivery
// gets deduplicated.

type IWebhookEventRepository interface {
	MarkProcessed(ctx context.Context, ev entities.WebhookEvent) (bool, error)
}
