package interfaces

import (
	"context"
	"xtagy_banho/internal/domain/entities"
)

// IPieceRepository abstracts DynamoDB persistence for Piece.
//
// UpdateLabel is the only mutation after creation: it attaches the
// label-print snapshot. Derived monetary fields are written once at creation
// and never touched again.

type IPieceRepository interface {
	Create(ctx context.Context, p entities.Piece) (entities.Piece, error)
	GetByID(ctx context.Context, id string) (entities.Piece, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Piece, error)
	UpdateLabel(ctx context.Context, id string, label entities.LabelSnapshot) (entities.Piece, error)
}
