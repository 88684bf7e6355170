package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"xtagy_banho/internal/domain/entities"
	"xtagy_banho/internal/usecase/interfaces"
)

var (
	ErrUnauthenticated      = errors.New("unauthenticated")
	ErrInvalidIntentAmount  = errors.New("invalid intent amount")
	ErrPaymentGatewayFailed = errors.New("payment gateway failed")
)

// IPaymentIntentUseCase creates payment intents on the external processor.
//
// The caller identity comes from the auth middleware; an empty caller is an
// unauthenticated request, not a storage problem.

type IPaymentIntentUseCase interface {
	CreateIntent(ctx context.Context, callerUserID string, amount float64, companyID string) (entities.PaymentIntent, error)
}

type PaymentIntentUseCase struct {
	gateway     interfaces.IPaymentGateway
	environment string
}

var _ IPaymentIntentUseCase = (*PaymentIntentUseCase)(nil)

func NewPaymentIntentUseCase(gateway interfaces.IPaymentGateway, environment string) *PaymentIntentUseCase {
	return &PaymentIntentUseCase{gateway: gateway, environment: environment}
}

func (u *PaymentIntentUseCase) CreateIntent(ctx context.Context, callerUserID string, amount float64, companyID string) (entities.PaymentIntent, error) {
	callerUserID = strings.TrimSpace(callerUserID)
	if callerUserID == "" {
		return entities.PaymentIntent{}, ErrUnauthenticated
	}
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return entities.PaymentIntent{}, ErrInvalidCompanyID
	}
	if amount <= 0 {
		return entities.PaymentIntent{}, ErrInvalidIntentAmount
	}
	if u.gateway == nil {
		return entities.PaymentIntent{}, errors.New("payment gateway not configured")
	}

	log.Printf("[payment][usecase] create intent start company_id=%s amount=%.2f", companyID, amount)
	intent, err := u.gateway.CreateIntent(ctx, entities.PaymentIntentRequest{
		Amount:      amount,
		CompanyID:   companyID,
		UserID:      callerUserID,
		Environment: u.environment,
	})
	if err != nil {
		log.Printf("[payment][usecase] create intent failed company_id=%s err=%v", companyID, err)
		// Keep the processor message visible to the caller.
		return entities.PaymentIntent{}, fmt.Errorf("%w: %v", ErrPaymentGatewayFailed, err)
	}
	log.Printf("[payment][usecase] create intent success company_id=%s intent_id=%s status=%s", companyID, intent.ID, intent.Status)
	return intent, nil
}
