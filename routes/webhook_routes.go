package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pasoapp/paso/config/db"
	"github.com/pasoapp/paso/controllers/payment_webhook_controller"
)

func RegisterWebhookRoutes(router *gin.Engine) {
	webhookController := payment_webhook_controller.NewPaymentWebhookController(db.DB)

	// Public webhook endpoint (no auth: Bold calls it directly). Only POST is
	// registered; the engine answers 405 for other verbs.
	router.POST("/api/webhooks/bold/:salon_id", webhookController.BoldWebhook)
}
