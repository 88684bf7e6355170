package interfaces

import (
	"context"
	"xtagy_banho/internal/domain/entities"
)

// ICompanyRepository abstracts DynamoDB persistence for Company.
//
// Companies are never hard-deleted; the subscription and billing fields are
// the only parts mutated after creation, always by the subscription manager.

type ICompanyRepository interface {
	Create(ctx context.Context, c entities.Company) (entities.Company, error)
	GetByID(ctx context.Context, id string) (entities.Company, error)
	UpdateSubscriptionStatus(ctx context.Context, id string, status entities.SubscriptionStatus) (entities.Company, error)
	UpdateBilling(ctx context.Context, id string, billing entities.BillingRecord) (entities.Company, error)
	List(ctx context.Context) ([]entities.Company, error)
}
