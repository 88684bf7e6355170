package handlers

import (
	"net/http"

	"xtagy_banho/internal/adapter/http/middleware"
	"xtagy_banho/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler serves the dashboard aggregates for the caller's company.

type AnalyticsHandler struct {
	usecase   usecase.IAnalyticsUseCase
	companies usecase.ICompanyUseCase
}

func NewAnalyticsHandler(uc usecase.IAnalyticsUseCase, companies usecase.ICompanyUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{usecase: uc, companies: companies}
}

func (h *AnalyticsHandler) Stats(c *gin.Context) {
	profile, err := h.companies.GetProfile(c.Request.Context(), middleware.CallerUserID(c))
	if err != nil {
		appErr := mapCompanyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	stats, err := h.usecase.Stats(c.Request.Context(), profile.Company.ID, profile.Company.Role)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, stats)
}
