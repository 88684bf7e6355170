package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"xtagy_banho/internal/domain/entities"
	mock_interfaces "xtagy_banho/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestNewAccessCode(t *testing.T) {
	const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	code, err := newAccessCode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(code) != 8 {
		t.Fatalf("expected 8 chars, got %q", code)
	}
	for _, r := range code {
		if !strings.ContainsRune(alphabet, r) {
			t.Fatalf("unexpected character %q in code %q", r, code)
		}
	}

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		c, err := newAccessCode()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		seen[c] = true
	}
	if len(seen) < 99 {
		t.Fatalf("expected unique codes, got %d distinct out of 100", len(seen))
	}
}

func TestOrderUseCase_CreateOrder(t *testing.T) {
	t.Run("invalid company id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		_, err := uc.CreateOrder(context.Background(), CreateOrderInput{BanhoCompanyID: "   "})
		if !errors.Is(err, ErrInvalidCompanyID) {
			t.Fatalf("expected ErrInvalidCompanyID, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ID == "" || o.BanhoCompanyID != "banho-1" {
					t.Fatalf("unexpected order: %+v", o)
				}
				if o.Status != entities.OrderStatusPending {
					t.Fatalf("expected pending status, got %s", o.Status)
				}
				if len(o.AccessCode) != 8 {
					t.Fatalf("expected generated access code, got %q", o.AccessCode)
				}
				if o.GoldPrice != 350.5 || o.Camadas != 5 || o.MaoDeObra != 2 || o.DefaultMargin != 2.5 {
					t.Fatalf("plating parameters not carried over: %+v", o)
				}
				if o.CreatedAt.IsZero() || o.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return o, nil
			},
		)

		res, err := uc.CreateOrder(context.Background(), CreateOrderInput{
			BanhoCompanyID: " banho-1 ",
			GoldPrice:      350.5,
			Camadas:        5,
			MaoDeObra:      2,
			DefaultMargin:  2.5,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("db"))

		_, err := uc.CreateOrder(context.Background(), CreateOrderInput{BanhoCompanyID: "banho-1"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestOrderUseCase_LinkByAccessCode(t *testing.T) {
	t.Run("empty code", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		_, err := uc.LinkByAccessCode(context.Background(), "  ", "cliente-1")
		if !errors.Is(err, ErrInvalidAccessCode) {
			t.Fatalf("expected ErrInvalidAccessCode, got %v", err)
		}
	})

	t.Run("empty cliente company", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		_, err := uc.LinkByAccessCode(context.Background(), "AB12CD34", "")
		if !errors.Is(err, ErrInvalidCompanyID) {
			t.Fatalf("expected ErrInvalidCompanyID, got %v", err)
		}
	})

	t.Run("code not found leaves nothing mutated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByAccessCode(gomock.Any(), "AB12CD34").Return(entities.Order{}, nil)

		_, err := uc.LinkByAccessCode(context.Background(), "AB12CD34", "cliente-1")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("code is normalized to uppercase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByAccessCode(gomock.Any(), "AB12CD34").Return(entities.Order{ID: "order-1"}, nil)
		repo.EXPECT().UpdateClienteCompany(gomock.Any(), "order-1", "cliente-1").Return(entities.Order{ID: "order-1", ClienteCompanyID: "cliente-1"}, nil)

		res, err := uc.LinkByAccessCode(context.Background(), " ab12cd34 ", "cliente-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ClienteCompanyID != "cliente-1" {
			t.Fatalf("expected cliente link, got %+v", res)
		}
	})

	t.Run("relink overwrites previous cliente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByAccessCode(gomock.Any(), "AB12CD34").Return(entities.Order{ID: "order-1", ClienteCompanyID: "cliente-old"}, nil)
		repo.EXPECT().UpdateClienteCompany(gomock.Any(), "order-1", "cliente-new").Return(entities.Order{ID: "order-1", ClienteCompanyID: "cliente-new"}, nil)

		res, err := uc.LinkByAccessCode(context.Background(), "AB12CD34", "cliente-new")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ClienteCompanyID != "cliente-new" {
			t.Fatalf("expected last write to win, got %+v", res)
		}
	})
}

func TestOrderUseCase_ListByCompany(t *testing.T) {
	t.Run("banho company uses its own index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().ListByBanhoCompany(gomock.Any(), "banho-1").Return([]entities.Order{{ID: "order-1"}}, nil)

		res, err := uc.ListByCompany(context.Background(), "banho-1", entities.CompanyRoleBanho)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 {
			t.Fatalf("expected 1 order, got %d", len(res))
		}
	})

	t.Run("cliente company uses the cliente index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().ListByClienteCompany(gomock.Any(), "cliente-1").Return(nil, nil)

		res, err := uc.ListByCompany(context.Background(), "cliente-1", entities.CompanyRoleCliente)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 0 {
			t.Fatalf("expected no orders, got %d", len(res))
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		_, err := uc.ListByCompany(context.Background(), "x", entities.CompanyRole("other"))
		if !errors.Is(err, ErrInvalidCompanyRole) {
			t.Fatalf("expected ErrInvalidCompanyRole, got %v", err)
		}
	})
}

func TestOrderUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "order-1", entities.OrderStatus("shipped"))
		if !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().UpdateStatus(gomock.Any(), "order-1", entities.OrderStatusFinished).Return(entities.Order{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "order-1", entities.OrderStatusFinished)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().UpdateStatus(gomock.Any(), "order-1", entities.OrderStatusDelivered).Return(entities.Order{ID: "order-1", Status: entities.OrderStatusDelivered}, nil)

		res, err := uc.UpdateStatus(context.Background(), "order-1", entities.OrderStatusDelivered)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.OrderStatusDelivered {
			t.Fatalf("expected delivered, got %s", res.Status)
		}
	})
}
