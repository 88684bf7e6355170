package routes

import (
	"xtagy_banho/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
	PathWebhooks = "/webhooks"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/intents", paymentHandler.CreateIntent)
		payments.POST("/skip", paymentHandler.SkipPayment)
	}
}

// Webhook routes stay outside the auth group: the processor signs nothing in
// test mode and retries on any non-2xx answer.
func addWebhookRoutes(rg *gin.RouterGroup, webhookHandler *handlers.WebhookHandler) {
	rg.POST(PathWebhooks+"/payments", webhookHandler.HandlePaymentEvent)
}
