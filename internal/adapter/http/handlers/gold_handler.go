package handlers

import (
	"net/http"

	response "xtagy_banho/internal/adapter/http/dto/response"
	"xtagy_banho/internal/usecase/interfaces"
	"xtagy_banho/pkg"

	"github.com/gin-gonic/gin"
)

// GoldHandler serves the current gold quote used for piece costing.

type GoldHandler struct {
	provider interfaces.IGoldQuoteProvider
}

func NewGoldHandler(provider interfaces.IGoldQuoteProvider) *GoldHandler {
	return &GoldHandler{provider: provider}
}

func (h *GoldHandler) CurrentPrice(c *gin.Context) {
	quote, err := h.provider.GetCurrentPrice(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromGoldQuote(quote))
}
