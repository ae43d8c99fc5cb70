package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tannu371/getting-to-know-kanji/services"
)

type CheckoutController struct {
	Stripe services.PaymentProvider
	Logger *zap.Logger
}

func NewCheckoutController(stripe services.PaymentProvider, logger *zap.Logger) *CheckoutController {
	return &CheckoutController{Stripe: stripe, Logger: logger}
}

// CreateCheckoutSession starts a hosted payment session for the requested
// quantity and returns the provider-issued session id.
func (cc *CheckoutController) CreateCheckoutSession(c *gin.Context) {
	var req struct {
		Quantity int64 `json:"quantity"`
	}
	// A missing or malformed body just means the default quantity.
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity < 1 {
		req.Quantity = 1
	}

	sessionID, err := cc.Stripe.CreateCheckoutSession(c.Request.Context(), req.Quantity)
	if err != nil {
		cc.Logger.Error("Failed to create checkout session",
			zap.Int64("quantity", req.Quantity),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": sessionID})
}
