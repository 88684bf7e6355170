package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"xtagy_banho/internal/domain/entities"
	mock_interfaces "xtagy_banho/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPieceUseCase_CreatePiece(t *testing.T) {
	parentOrder := entities.Order{
		ID:             "order-1",
		BanhoCompanyID: "banho-1",
		GoldPrice:      350.50,
		Camadas:        5,
		MaoDeObra:      2,
		DefaultMargin:  2.5,
	}

	t.Run("invalid order id", func(t *testing.T) {
		uc := NewPieceUseCase(nil, nil, nil)
		_, err := uc.CreatePiece(context.Background(), "  ", CreatePieceInput{})
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("missing order persists nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPieceRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewPieceUseCase(repo, orderRepo, nil)

		orderRepo.EXPECT().GetByID(gomock.Any(), "order-1").Return(entities.Order{}, nil)

		_, err := uc.CreatePiece(context.Background(), "order-1", CreatePieceInput{PesoPeca: 2.5})
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("pricing is copied and derived from the parent order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPieceRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewPieceUseCase(repo, orderRepo, nil)

		orderRepo.EXPECT().GetByID(gomock.Any(), "order-1").Return(parentOrder, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Piece{})).DoAndReturn(
			func(_ context.Context, p entities.Piece) (entities.Piece, error) {
				if p.Camadas != 5 || p.MaoDeObra != 2 || p.CotacaoOuroDia != 350.50 {
					t.Fatalf("parameters not copied from order: %+v", p)
				}
				wantMetal := (5.0 + 2.0) * 350.50 / 1000
				if math.Abs(p.CalculoMetal-wantMetal) > 1e-9 {
					t.Fatalf("expected metal cost %v, got %v", wantMetal, p.CalculoMetal)
				}
				wantFinal := 2.5*wantMetal + 45.0
				if math.Abs(p.CustoFinalCliente-wantFinal) > 1e-9 {
					t.Fatalf("expected final cost %v, got %v", wantFinal, p.CustoFinalCliente)
				}
				if math.Abs(p.SuggestedPrice-wantFinal*2.5) > 1e-9 {
					t.Fatalf("expected suggested price %v, got %v", wantFinal*2.5, p.SuggestedPrice)
				}
				return p, nil
			},
		)

		res, err := uc.CreatePiece(context.Background(), "order-1", CreatePieceInput{
			PesoPeca:       2.5,
			ValorPecaBruta: 45.0,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("empty descriptive fields fall back to defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPieceRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewPieceUseCase(repo, orderRepo, nil)

		orderRepo.EXPECT().GetByID(gomock.Any(), "order-1").Return(parentOrder, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Piece) (entities.Piece, error) {
				if p.Photo != "https://picsum.photos/200/200" || p.InternalCode != "N/A" || p.Type != "Generic" {
					t.Fatalf("expected defaults, got %+v", p)
				}
				return p, nil
			},
		)

		if _, err := uc.CreatePiece(context.Background(), "order-1", CreatePieceInput{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPieceUseCase_UpdateLabel(t *testing.T) {
	t.Run("invalid piece id", func(t *testing.T) {
		uc := NewPieceUseCase(nil, nil, nil)
		_, err := uc.UpdateLabel(context.Background(), "", entities.LabelSnapshot{})
		if !errors.Is(err, ErrInvalidPieceID) {
			t.Fatalf("expected ErrInvalidPieceID, got %v", err)
		}
	})

	t.Run("zero generated_at gets stamped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPieceRepository(ctrl)
		uc := NewPieceUseCase(repo, nil, nil)

		repo.EXPECT().UpdateLabel(gomock.Any(), "piece-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, label entities.LabelSnapshot) (entities.Piece, error) {
				if label.GeneratedAt.IsZero() {
					t.Fatalf("expected generated_at to be stamped")
				}
				return entities.Piece{ID: "piece-1", Label: &label}, nil
			},
		)

		res, err := uc.UpdateLabel(context.Background(), "piece-1", entities.LabelSnapshot{Layout: entities.LabelLayoutA4})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Label == nil || res.Label.Layout != entities.LabelLayoutA4 {
			t.Fatalf("expected label attached, got %+v", res)
		}
	})

	t.Run("explicit generated_at is preserved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPieceRepository(ctrl)
		uc := NewPieceUseCase(repo, nil, nil)

		at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		repo.EXPECT().UpdateLabel(gomock.Any(), "piece-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, label entities.LabelSnapshot) (entities.Piece, error) {
				if !label.GeneratedAt.Equal(at) {
					t.Fatalf("expected %v, got %v", at, label.GeneratedAt)
				}
				return entities.Piece{ID: "piece-1"}, nil
			},
		)

		if _, err := uc.UpdateLabel(context.Background(), "piece-1", entities.LabelSnapshot{GeneratedAt: at}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPieceRepository(ctrl)
		uc := NewPieceUseCase(repo, nil, nil)

		repo.EXPECT().UpdateLabel(gomock.Any(), "piece-1", gomock.Any()).Return(entities.Piece{}, nil)

		_, err := uc.UpdateLabel(context.Background(), "piece-1", entities.LabelSnapshot{})
		if !errors.Is(err, ErrPieceNotFound) {
			t.Fatalf("expected ErrPieceNotFound, got %v", err)
		}
	})
}
