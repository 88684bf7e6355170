package interfaces

import (
	"context"
	"xtagy_banho/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order (lote).
//
// The service must be able to:
//   - create a lote with its generated access code
//   - list lotes by either company-side foreign key (the sole visibility
//     filter in scope)
//   - resolve a lote by access code so a cliente can self-link
//   - overwrite the cliente link and bump updated_at
//   - patch the presentation-driven status

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByAccessCode(ctx context.Context, code string) (entities.Order, error)
	ListByBanhoCompany(ctx context.Context, companyID string) ([]entities.Order, error)
	ListByClienteCompany(ctx context.Context, companyID string) ([]entities.Order, error)
	UpdateClienteCompany(ctx context.Context, id, clienteCompanyID string) (entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
}
