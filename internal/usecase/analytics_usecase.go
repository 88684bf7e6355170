package usecase

import (
	"context"

	"xtagy_banho/internal/domain/entities"
)

// DashboardStats is the aggregate view computed from a company's lotes and
// pieces. MonthlyGrowth stays zero until historical data exists.
type DashboardStats struct {
	TotalOrders       int     `json:"total_orders"`
	TotalPieces       int     `json:"total_pieces"`
	AvgTicket         float64 `json:"avg_ticket"`
	AvgWeight         float64 `json:"avg_weight"`
	WaitingCollection int     `json:"waiting_collection"`
	MonthlyGrowth     float64 `json:"monthly_growth"`
}

// IAnalyticsUseCase aggregates dashboard statistics for a company.

type IAnalyticsUseCase interface {
	Stats(ctx context.Context, companyID string, role entities.CompanyRole) (DashboardStats, error)
}

type AnalyticsUseCase struct {
	orders IOrderUseCase
	pieces IPieceUseCase
}

var _ IAnalyticsUseCase = (*AnalyticsUseCase)(nil)

func NewAnalyticsUseCase(orders IOrderUseCase, pieces IPieceUseCase) *AnalyticsUseCase {
	return &AnalyticsUseCase{orders: orders, pieces: pieces}
}

func (u *AnalyticsUseCase) Stats(ctx context.Context, companyID string, role entities.CompanyRole) (DashboardStats, error) {
	orders, err := u.orders.ListByCompany(ctx, companyID, role)
	if err != nil {
		return DashboardStats{}, err
	}

	var pieces []entities.Piece
	for _, o := range orders {
		ps, err := u.pieces.ListByOrder(ctx, o.ID)
		if err != nil {
			return DashboardStats{}, err
		}
		pieces = append(pieces, ps...)
	}
	return computeStats(orders, pieces), nil
}

func computeStats(orders []entities.Order, pieces []entities.Piece) DashboardStats {
	stats := DashboardStats{TotalPieces: len(pieces)}

	var totalWeight, totalRevenue float64
	for _, o := range orders {
		switch o.Status {
		case entities.OrderStatusFinished:
			stats.WaitingCollection++
		case entities.OrderStatusDelivered:
		default:
			stats.TotalOrders++
		}
	}
	for _, p := range pieces {
		totalWeight += p.PesoPeca
		totalRevenue += p.CustoFinalCliente
	}

	if len(pieces) > 0 {
		stats.AvgWeight = totalWeight / float64(len(pieces))
	}
	if len(orders) > 0 {
		stats.AvgTicket = totalRevenue / float64(len(orders))
	}
	return stats
}
