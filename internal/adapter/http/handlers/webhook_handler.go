package handlers

import (
	"log"
	"net/http"

	request "xtagy_banho/internal/adapter/http/dto/request"
	"xtagy_banho/internal/usecase"

	"github.com/gin-gonic/gin"
)

// WebhookHandler ingests payment-processor webhook deliveries.

type WebhookHandler struct {
	subscriptions usecase.ISubscriptionUseCase
}

func NewWebhookHandler(subscriptions usecase.ISubscriptionUseCase) *WebhookHandler {
	return &WebhookHandler{subscriptions: subscriptions}
}

// HandlePaymentEvent always acknowledges with 200. A non-2xx answer would
// make the processor redeliver forever; failures here are logged and resolved
// out of band.
func (h *WebhookHandler) HandlePaymentEvent(c *gin.Context) {
	var payload request.ProcessorWebhookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[webhook][handler] unparseable payment event err=%v", err)
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	if err := h.subscriptions.HandleProcessorEvent(c.Request.Context(), payload.ToEvent()); err != nil {
		log.Printf("[webhook][handler] payment event processing failed id=%s type=%s err=%v", payload.ID, payload.Type, err)
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
