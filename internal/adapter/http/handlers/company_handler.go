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
	errInvalidCompanyPayload = pkg.NewDomainErrorSimple("INVALID_COMPANY_INPUT", "Invalid company payload", http.StatusBadRequest)
)

// CompanyHandler handles registration and profile requests.

type CompanyHandler struct {
	usecase usecase.ICompanyUseCase
}

func NewCompanyHandler(uc usecase.ICompanyUseCase) *CompanyHandler {
	return &CompanyHandler{usecase: uc}
}

// Register creates the company and its admin user for the authenticated
// caller in one step.
func (h *CompanyHandler) Register(c *gin.Context) {
	var payload request.RegisterCompanyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCompanyPayload.HTTPStatus, errInvalidCompanyPayload.ToHTTPError())
		return
	}

	user, err := h.usecase.Register(c.Request.Context(), middleware.CallerUserID(c), payload.ToInput())
	if err != nil {
		appErr := mapCompanyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromUser(user))
}

// Me returns the caller's user together with its company.
func (h *CompanyHandler) Me(c *gin.Context) {
	profile, err := h.usecase.GetProfile(c.Request.Context(), middleware.CallerUserID(c))
	if err != nil {
		appErr := mapCompanyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ProfileResponse{
		User:    response.FromUser(profile.User),
		Company: response.FromCompany(profile.Company),
	})
}

func (h *CompanyHandler) GetByID(c *gin.Context) {
	company, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCompanyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCompany(company))
}

func mapCompanyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidCompanyID), errors.Is(err, usecase.ErrInvalidCompanyRole):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCompanyNotFound):
		return pkg.NewDomainErrorSimple("COMPANY_NOT_FOUND", "Company not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
