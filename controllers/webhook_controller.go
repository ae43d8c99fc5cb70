package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tannu371/getting-to-know-kanji/metrics"
	"github.com/tannu371/getting-to-know-kanji/services"
)

type WebhookController struct {
	Stripe   services.PaymentProvider
	Recorder services.EventHandler
	Logger   *zap.Logger
}

func NewWebhookController(stripe services.PaymentProvider, recorder services.EventHandler, logger *zap.Logger) *WebhookController {
	return &WebhookController{Stripe: stripe, Recorder: recorder, Logger: logger}
}

// StripeWebhook verifies and dispatches a Stripe webhook delivery.
//
// Verification failures are rejected with 400 and no side effects. Once the
// event is verified, the delivery is acknowledged with 200 even if the
// ledger write fails: Stripe retries on delivery failure only, so failing
// the response here would not get the order re-sent, just re-verified.
func (wc *WebhookController) StripeWebhook(c *gin.Context) {
	event, err := wc.Stripe.ParseWebhook(c.Request)
	if err != nil {
		metrics.WebhookRejectedTotal.Inc()
		wc.Logger.Warn("Webhook signature verification failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid webhook"})
		return
	}

	if err := wc.Recorder.HandleEvent(c.Request.Context(), event); err != nil {
		wc.Logger.Error("Webhook event handling failed",
			zap.String("event_type", string(event.Type)),
			zap.String("event_id", event.ID),
			zap.Error(err),
		)
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
