package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"xtagy_banho/internal/domain/entities"
	mock_interfaces "xtagy_banho/internal/usecase/interfaces/mocks"

	"github.com/aws/smithy-go"
	"go.uber.org/mock/gomock"
)

func TestCompanyUseCase_Register(t *testing.T) {
	t.Run("missing user id", func(t *testing.T) {
		uc := NewCompanyUseCase(nil, nil, nil)
		_, err := uc.Register(context.Background(), "  ", RegisterCompanyInput{Role: entities.CompanyRoleBanho})
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		uc := NewCompanyUseCase(nil, nil, nil)
		_, err := uc.Register(context.Background(), "user-1", RegisterCompanyInput{Role: entities.CompanyRole("other")})
		if !errors.Is(err, ErrInvalidCompanyRole) {
			t.Fatalf("expected ErrInvalidCompanyRole, got %v", err)
		}
	})

	t.Run("banho company is born with a payment_pending subscription", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICompanyRepository(ctrl)
		userRepo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewCompanyUseCase(repo, userRepo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Company{})).DoAndReturn(
			func(_ context.Context, c entities.Company) (entities.Company, error) {
				if c.Subscription == nil {
					t.Fatalf("expected subscription on banho company")
				}
				if c.Subscription.Status != entities.SubscriptionStatusPaymentPending {
					t.Fatalf("expected payment_pending, got %s", c.Subscription.Status)
				}
				if c.Subscription.Plan != entities.SubscriptionPlanBanhoMensal {
					t.Fatalf("expected banho_mensal plan, got %s", c.Subscription.Plan)
				}
				window := c.Subscription.TrialEndsAt.Sub(c.Subscription.TrialStartedAt)
				if window != 30*24*time.Hour {
					t.Fatalf("expected 30 day trial window, got %v", window)
				}
				return c, nil
			},
		)
		userRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.User{})).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.ID != "user-1" || u.CompanyID == "" {
					t.Fatalf("unexpected user: %+v", u)
				}
				if u.Role != entities.UserRoleAdmin {
					t.Fatalf("expected admin user, got %s", u.Role)
				}
				return u, nil
			},
		)

		user, err := uc.Register(context.Background(), "user-1", RegisterCompanyInput{
			Name:  "Banhos Ltda",
			Role:  entities.CompanyRoleBanho,
			Email: "dono@banhos.com.br",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.CompanyRole != entities.CompanyRoleBanho {
			t.Fatalf("expected banho company role mirror, got %s", user.CompanyRole)
		}
	})

	t.Run("cliente company never carries a subscription", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICompanyRepository(ctrl)
		userRepo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewCompanyUseCase(repo, userRepo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Company) (entities.Company, error) {
				if c.Subscription != nil {
					t.Fatalf("cliente company must not carry a subscription: %+v", c.Subscription)
				}
				return c, nil
			},
		)
		userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) { return u, nil },
		)

		if _, err := uc.Register(context.Background(), "user-2", RegisterCompanyInput{Name: "Joias SA", Role: entities.CompanyRoleCliente}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty role defaults to cliente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICompanyRepository(ctrl)
		userRepo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewCompanyUseCase(repo, userRepo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Company) (entities.Company, error) {
				if c.Role != entities.CompanyRoleCliente {
					t.Fatalf("expected cliente default, got %s", c.Role)
				}
				return c, nil
			},
		)
		userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) { return u, nil },
		)

		if _, err := uc.Register(context.Background(), "user-3", RegisterCompanyInput{Name: "Anon"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCompanyUseCase_GetProfile(t *testing.T) {
	accessDenied := &smithy.GenericAPIError{Code: "AccessDeniedException", Message: "not authorized"}

	t.Run("user not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICompanyRepository(ctrl)
		userRepo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewCompanyUseCase(repo, userRepo, nil)

		userRepo.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{}, nil)

		_, err := uc.GetProfile(context.Background(), "user-1")
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("permission denied retries then succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICompanyRepository(ctrl)
		userRepo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewCompanyUseCase(repo, userRepo, nil)

		slept := 0
		uc.sleep = func(_ context.Context, _ time.Duration) error { slept++; return nil }

		gomock.InOrder(
			userRepo.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{}, accessDenied),
			userRepo.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{}, accessDenied),
			userRepo.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1", CompanyID: "company-1"}, nil),
		)
		repo.EXPECT().GetByID(gomock.Any(), "company-1").Return(entities.Company{ID: "company-1"}, nil)

		profile, err := uc.GetProfile(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if profile.Company.ID != "company-1" {
			t.Fatalf("unexpected profile: %+v", profile)
		}
		if slept != 2 {
			t.Fatalf("expected 2 backoffs, got %d", slept)
		}
	})

	t.Run("permission denied exhausts retries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICompanyRepository(ctrl)
		userRepo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewCompanyUseCase(repo, userRepo, nil)
		uc.sleep = func(_ context.Context, _ time.Duration) error { return nil }

		userRepo.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{}, accessDenied).Times(4)

		_, err := uc.GetProfile(context.Background(), "user-1")
		var apiErr smithy.APIError
		if !errors.As(err, &apiErr) || apiErr.ErrorCode() != "AccessDeniedException" {
			t.Fatalf("expected terminal access denied error, got %v", err)
		}
	})

	t.Run("other errors do not retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICompanyRepository(ctrl)
		userRepo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewCompanyUseCase(repo, userRepo, nil)

		userRepo.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{}, errors.New("db")).Times(1)

		_, err := uc.GetProfile(context.Background(), "user-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
