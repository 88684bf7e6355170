package handlers

import (
	"errors"
	"net/http"

	request "xtagy_banho/internal/adapter/http/dto/request"
	response "xtagy_banho/internal/adapter/http/dto/response"
	"xtagy_banho/internal/adapter/http/middleware"
	"xtagy_banho/internal/usecase"
	"xtagy_banho/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
)

// PaymentHandler handles payment intents and the skip-payment onboarding
// action.

type PaymentHandler struct {
	intents       usecase.IPaymentIntentUseCase
	subscriptions usecase.ISubscriptionUseCase
}

func NewPaymentHandler(intents usecase.IPaymentIntentUseCase, subscriptions usecase.ISubscriptionUseCase) *PaymentHandler {
	return &PaymentHandler{intents: intents, subscriptions: subscriptions}
}

// CreateIntent asks the processor for a new payment intent on behalf of the
// caller's company.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var payload request.PaymentIntentCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	intent, err := h.intents.CreateIntent(c.Request.Context(), middleware.CallerUserID(c), payload.Amount, payload.CompanyID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPaymentIntent(intent))
}

// SkipPayment moves a payment_pending subscription into trial without a
// charge.
func (h *PaymentHandler) SkipPayment(c *gin.Context) {
	var payload request.SkipPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	company, err := h.subscriptions.SkipPayment(c.Request.Context(), payload.CompanyID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCompany(company))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidCompanyID), errors.Is(err, usecase.ErrInvalidIntentAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCompanyNotFound):
		return pkg.NewDomainErrorSimple("COMPANY_NOT_FOUND", "Company not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoSubscription):
		return pkg.NewDomainErrorSimple("NO_SUBSCRIPTION", "Company has no subscription", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidSubscriptionTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Subscription cannot transition from its current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayFailed):
		return pkg.NewDomainError("PAYMENT_GATEWAY_ERROR", "Payment processor rejected the request", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
