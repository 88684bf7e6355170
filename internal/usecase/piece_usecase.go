package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"xtagy_banho/internal/domain/entities"
	"xtagy_banho/internal/domain/pricing"
	"xtagy_banho/internal/usecase/interfaces"
)

var (
	ErrPieceNotFound  = errors.New("piece not found")
	ErrInvalidPieceID = errors.New("invalid piece id")
)

const (
	defaultPiecePhoto        = "https://picsum.photos/200/200"
	defaultPieceInternalCode = "N/A"
	defaultPieceType         = "Generic"
)

// IPieceUseCase exposes piece operations within a lote.
//
// CreatePiece copies camadas, mão de obra and the gold-price snapshot from
// the parent lote and derives the monetary fields through the pricing engine.
// Those values are frozen at creation: later changes to the lote never
// propagate back into existing pieces.

type IPieceUseCase interface {
	CreatePiece(ctx context.Context, orderID string, in CreatePieceInput) (entities.Piece, error)
	GetByID(ctx context.Context, id string) (entities.Piece, error)
	ListByOrder(ctx context.Context, orderID string) ([]entities.Piece, error)
	UpdateLabel(ctx context.Context, pieceID string, label entities.LabelSnapshot) (entities.Piece, error)
}

// CreatePieceInput carries the raw piece fields; empty descriptive fields
// fall back to the same defaults the capture flow uses.
type CreatePieceInput struct {
	Photo          string
	InternalCode   string
	Type           string
	PesoPeca       float64
	ValorPecaBruta float64
}

type PieceUseCase struct {
	repo      interfaces.IPieceRepository
	orderRepo interfaces.IOrderRepository
	eventLog  interfaces.IEventLogRepository
}

var _ IPieceUseCase = (*PieceUseCase)(nil)

func NewPieceUseCase(repo interfaces.IPieceRepository, orderRepo interfaces.IOrderRepository, eventLog interfaces.IEventLogRepository) *PieceUseCase {
	return &PieceUseCase{repo: repo, orderRepo: orderRepo, eventLog: eventLog}
}

func (u *PieceUseCase) CreatePiece(ctx context.Context, orderID string, in CreatePieceInput) (entities.Piece, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Piece{}, ErrInvalidOrderID
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Piece{}, err
	}
	if order.ID == "" {
		return entities.Piece{}, ErrOrderNotFound
	}

	cost := pricing.ComputePieceCost(in.PesoPeca, in.ValorPecaBruta, order.Camadas, order.MaoDeObra, order.GoldPrice)

	p := entities.Piece{
		ID:                newID(),
		OrderID:           order.ID,
		Photo:             defaulted(in.Photo, defaultPiecePhoto),
		InternalCode:      defaulted(in.InternalCode, defaultPieceInternalCode),
		Type:              defaulted(in.Type, defaultPieceType),
		PesoPeca:          in.PesoPeca,
		ValorPecaBruta:    in.ValorPecaBruta,
		Camadas:           order.Camadas,
		MaoDeObra:         order.MaoDeObra,
		CotacaoOuroDia:    order.GoldPrice,
		CalculoMetal:      cost.MetalCost,
		CustoFinalCliente: cost.FinalClientCost,
		SuggestedPrice:    cost.SuggestedPrice(order.DefaultMargin),
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Piece{}, err
	}

	u.logEvent(ctx, entities.EventPieceCreated, order.BanhoCompanyID, created.ID, map[string]any{
		"order_id": order.ID,
	})
	return created, nil
}

func (u *PieceUseCase) GetByID(ctx context.Context, id string) (entities.Piece, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Piece{}, ErrInvalidPieceID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Piece{}, err
	}
	if p.ID == "" {
		return entities.Piece{}, ErrPieceNotFound
	}
	return p, nil
}

func (u *PieceUseCase) ListByOrder(ctx context.Context, orderID string) ([]entities.Piece, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	return u.repo.ListByOrderID(ctx, orderID)
}

func (u *PieceUseCase) UpdateLabel(ctx context.Context, pieceID string, label entities.LabelSnapshot) (entities.Piece, error) {
	pieceID = strings.TrimSpace(pieceID)
	if pieceID == "" {
		return entities.Piece{}, ErrInvalidPieceID
	}
	if label.GeneratedAt.IsZero() {
		label.GeneratedAt = time.Now().UTC()
	}

	updated, err := u.repo.UpdateLabel(ctx, pieceID, label)
	if err != nil {
		return entities.Piece{}, err
	}
	if updated.ID == "" {
		return entities.Piece{}, ErrPieceNotFound
	}

	u.logEvent(ctx, entities.EventLabelPrinted, "", updated.ID, map[string]any{
		"layout": string(label.Layout),
	})
	return updated, nil
}

func (u *PieceUseCase) logEvent(ctx context.Context, typ entities.EventType, companyID, relatedID string, metadata map[string]any) {
	if u.eventLog == nil {
		return
	}
	ev := entities.AnalyticsEvent{
		ID:              newID(),
		Type:            typ,
		Timestamp:       time.Now().UTC(),
		CompanyID:       companyID,
		CompanyRole:     entities.CompanyRoleBanho,
		RelatedEntityID: relatedID,
		Metadata:        metadata,
	}
	if err := u.eventLog.Append(ctx, ev); err != nil {
		log.Printf("[piece][usecase] event log append failed type=%s piece_id=%s err=%v", typ, relatedID, err)
	}
}

func defaulted(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
