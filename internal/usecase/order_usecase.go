package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"xtagy_banho/internal/domain/entities"
	"xtagy_banho/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrInvalidCompanyID   = errors.New("invalid company id")
	ErrInvalidAccessCode  = errors.New("invalid access code")
	ErrInvalidCompanyRole = errors.New("invalid company role")
	ErrInvalidOrderStatus = errors.New("invalid order status")
)

// IOrderUseCase exposes the lote lifecycle operations.
//
//   - CreateOrder stamps the plating parameters and the gold-price snapshot
//     and generates the access code a cliente will later use to self-link.
//   - LinkByAccessCode is the only way a cliente company attaches itself to a
//     lote it did not create.
//   - ListByCompany filters by whichever foreign key the role owns; this is
//     the sole order-visibility mechanism in scope.

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	LinkByAccessCode(ctx context.Context, code, clienteCompanyID string) (entities.Order, error)
	ListByCompany(ctx context.Context, companyID string, role entities.CompanyRole) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
}

// CreateOrderInput carries the plating parameters of a new lote.
// ClienteCompanyID may be empty: lotes stay unlinked until claimed by code.
type CreateOrderInput struct {
	BanhoCompanyID   string
	ClienteCompanyID string
	GoldPrice        float64
	Camadas          float64
	MaoDeObra        float64
	DefaultMargin    float64
}

type OrderUseCase struct {
	repo     interfaces.IOrderRepository
	eventLog interfaces.IEventLogRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, eventLog interfaces.IEventLogRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo, eventLog: eventLog}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error) {
	banhoID := strings.TrimSpace(in.BanhoCompanyID)
	if banhoID == "" {
		return entities.Order{}, ErrInvalidCompanyID
	}

	code, err := newAccessCode()
	if err != nil {
		return entities.Order{}, err
	}

	now := time.Now().UTC()
	o := entities.Order{
		ID:               newID(),
		BanhoCompanyID:   banhoID,
		ClienteCompanyID: strings.TrimSpace(in.ClienteCompanyID),
		Status:           entities.OrderStatusPending,
		GoldPrice:        in.GoldPrice,
		DefaultMargin:    in.DefaultMargin,
		Camadas:          in.Camadas,
		MaoDeObra:        in.MaoDeObra,
		AccessCode:       code,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}

	u.logEvent(ctx, entities.EventOrderCreated, banhoID, entities.CompanyRoleBanho, created.ID, map[string]any{
		"access_code": created.AccessCode,
	})
	return created, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

// LinkByAccessCode overwrites any previous cliente link: the source system
// allows re-linking and the last write wins.
func (u *OrderUseCase) LinkByAccessCode(ctx context.Context, code, clienteCompanyID string) (entities.Order, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return entities.Order{}, ErrInvalidAccessCode
	}
	clienteCompanyID = strings.TrimSpace(clienteCompanyID)
	if clienteCompanyID == "" {
		return entities.Order{}, ErrInvalidCompanyID
	}

	o, err := u.repo.GetByAccessCode(ctx, code)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	linked, err := u.repo.UpdateClienteCompany(ctx, o.ID, clienteCompanyID)
	if err != nil {
		return entities.Order{}, err
	}
	if linked.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	u.logEvent(ctx, entities.EventClientLinked, clienteCompanyID, entities.CompanyRoleCliente, linked.ID, nil)
	return linked, nil
}

func (u *OrderUseCase) ListByCompany(ctx context.Context, companyID string, role entities.CompanyRole) ([]entities.Order, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return nil, ErrInvalidCompanyID
	}

	switch role {
	case entities.CompanyRoleBanho:
		return u.repo.ListByBanhoCompany(ctx, companyID)
	case entities.CompanyRoleCliente:
		return u.repo.ListByClienteCompany(ctx, companyID)
	default:
		return nil, ErrInvalidCompanyRole
	}
}

func (u *OrderUseCase) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	switch status {
	case entities.OrderStatusPending, entities.OrderStatusProcessing, entities.OrderStatusFinished, entities.OrderStatusDelivered:
	default:
		return entities.Order{}, ErrInvalidOrderStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return updated, nil
}

func (u *OrderUseCase) logEvent(ctx context.Context, typ entities.EventType, companyID string, role entities.CompanyRole, relatedID string, metadata map[string]any) {
	if u.eventLog == nil {
		return
	}
	ev := entities.AnalyticsEvent{
		ID:              newID(),
		Type:            typ,
		Timestamp:       time.Now().UTC(),
		CompanyID:       companyID,
		CompanyRole:     role,
		RelatedEntityID: relatedID,
		Metadata:        metadata,
	}
	if err := u.eventLog.Append(ctx, ev); err != nil {
		log.Printf("[order][usecase] event log append failed type=%s company_id=%s err=%v", typ, companyID, err)
	}
}
