package handlers

import (
	"errors"
	"log"
	"net/http"

	request "xtagy_banho/internal/adapter/http/dto/request"
	response "xtagy_banho/internal/adapter/http/dto/response"
	"xtagy_banho/internal/adapter/http/middleware"
	"xtagy_banho/internal/domain/entities"
	"xtagy_banho/internal/usecase"
	"xtagy_banho/internal/usecase/interfaces"
	"xtagy_banho/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
)

// OrderHandler handles lote requests. Orders are always scoped to the
// caller's company, resolved through the profile.

type OrderHandler struct {
	usecase   usecase.IOrderUseCase
	companies usecase.ICompanyUseCase
	gold      interfaces.IGoldQuoteProvider
}

func NewOrderHandler(uc usecase.IOrderUseCase, companies usecase.ICompanyUseCase, gold interfaces.IGoldQuoteProvider) *OrderHandler {
	return &OrderHandler{usecase: uc, companies: companies, gold: gold}
}

// Create registers a new lote for the caller's banho company. When the
// payload omits the gold price, the current quote is snapshotted instead.
func (h *OrderHandler) Create(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	profile, err := h.companies.GetProfile(c.Request.Context(), middleware.CallerUserID(c))
	if err != nil {
		appErr := mapCompanyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if profile.Company.Role != entities.CompanyRoleBanho {
		appErr := pkg.NewDomainErrorSimple("FORBIDDEN", "Only banho companies can create orders", http.StatusForbidden)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	goldPrice := payload.GoldPrice
	if goldPrice == 0 {
		quote, err := h.gold.GetCurrentPrice(c.Request.Context())
		if err != nil {
			appErr := mapOrderError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		goldPrice = quote.Price
		log.Printf("[order][handler] gold price snapshot taken company_id=%s price=%.2f", profile.Company.ID, goldPrice)
	}

	order, err := h.usecase.CreateOrder(c.Request.Context(), usecase.CreateOrderInput{
		BanhoCompanyID:   profile.Company.ID,
		ClienteCompanyID: payload.ClienteCompanyID,
		GoldPrice:        goldPrice,
		Camadas:          payload.Camadas,
		MaoDeObra:        payload.MaoDeObra,
		DefaultMargin:    payload.DefaultMargin,
	})
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// List returns the caller's lotes, filtered by whichever side of the
// relationship its company sits on.
func (h *OrderHandler) List(c *gin.Context) {
	profile, err := h.companies.GetProfile(c.Request.Context(), middleware.CallerUserID(c))
	if err != nil {
		appErr := mapCompanyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	orders, err := h.usecase.ListByCompany(c.Request.Context(), profile.Company.ID, profile.Company.Role)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func (h *OrderHandler) GetByID(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// Link claims a lote by access code for the caller's cliente company.
func (h *OrderHandler) Link(c *gin.Context) {
	var payload request.LinkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	profile, err := h.companies.GetProfile(c.Request.Context(), middleware.CallerUserID(c))
	if err != nil {
		appErr := mapCompanyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := h.usecase.LinkByAccessCode(c.Request.Context(), payload.AccessCode, profile.Company.ID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.OrderStatus(payload.Status))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidCompanyID),
		errors.Is(err, usecase.ErrInvalidAccessCode),
		errors.Is(err, usecase.ErrInvalidCompanyRole),
		errors.Is(err, usecase.ErrInvalidOrderStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
