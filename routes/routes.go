package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tannu371/getting-to-know-kanji/controllers"
)

// RegisterStoreRoutes wires every storefront endpoint onto the engine.
func RegisterStoreRoutes(
	r *gin.Engine,
	checkout *controllers.CheckoutController,
	webhook *controllers.WebhookController,
	contact *controllers.ContactController,
	orders *controllers.OrderController,
	files *controllers.FilesController,
) {
	r.POST("/create-checkout-session", checkout.CreateCheckoutSession)
	r.POST("/contact", contact.SubmitContact)
	r.GET("/download-sample", files.DownloadSample)
	r.GET("/orders", orders.ListOrders)

	// Stripe webhook: the handler verifies the raw body itself, so no body
	// parsing middleware may run ahead of this route.
	r.POST("/webhook", webhook.StripeWebhook)

	// Everything else falls through to the static storefront.
	r.NoRoute(files.StaticFallback)
}
