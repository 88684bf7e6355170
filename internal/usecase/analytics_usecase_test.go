package usecase

import (
	"math"
	"testing"

	"xtagy_banho/internal/domain/entities"
)

func TestComputeStats(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		stats := computeStats(nil, nil)
		if stats.TotalOrders != 0 || stats.TotalPieces != 0 || stats.AvgTicket != 0 || stats.AvgWeight != 0 {
			t.Fatalf("expected zero stats, got %+v", stats)
		}
	})

	t.Run("status buckets", func(t *testing.T) {
		orders := []entities.Order{
			{ID: "a", Status: entities.OrderStatusPending},
			{ID: "b", Status: entities.OrderStatusProcessing},
			{ID: "c", Status: entities.OrderStatusFinished},
			{ID: "d", Status: entities.OrderStatusFinished},
			{ID: "e", Status: entities.OrderStatusDelivered},
		}

		stats := computeStats(orders, nil)
		if stats.TotalOrders != 2 {
			t.Fatalf("expected 2 open orders, got %d", stats.TotalOrders)
		}
		if stats.WaitingCollection != 2 {
			t.Fatalf("expected 2 waiting collection, got %d", stats.WaitingCollection)
		}
	})

	t.Run("averages", func(t *testing.T) {
		orders := []entities.Order{
			{ID: "a", Status: entities.OrderStatusPending},
			{ID: "b", Status: entities.OrderStatusPending},
		}
		pieces := []entities.Piece{
			{PesoPeca: 2.0, CustoFinalCliente: 30},
			{PesoPeca: 4.0, CustoFinalCliente: 50},
		}

		stats := computeStats(orders, pieces)
		if stats.TotalPieces != 2 {
			t.Fatalf("expected 2 pieces, got %d", stats.TotalPieces)
		}
		if math.Abs(stats.AvgWeight-3.0) > 1e-9 {
			t.Fatalf("expected avg weight 3.0, got %v", stats.AvgWeight)
		}
		if math.Abs(stats.AvgTicket-40.0) > 1e-9 {
			t.Fatalf("expected avg ticket 40.0, got %v", stats.AvgTicket)
		}
		if stats.MonthlyGrowth != 0 {
			t.Fatalf("expected zero growth, got %v", stats.MonthlyGrowth)
		}
	})
}
