package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v80"
	"go.uber.org/zap"

	"github.com/tannu371/getting-to-know-kanji/metrics"
	"github.com/tannu371/getting-to-know-kanji/models"
	"github.com/tannu371/getting-to-know-kanji/repository"
)

const eventCheckoutCompleted = "checkout.session.completed"

// EventHandler consumes a verified Stripe event.
type EventHandler interface {
	HandleEvent(ctx context.Context, event stripe.Event) error
}

// OrderRecorder writes a ledger row for every completed checkout session.
// Events of any other type are counted and ignored.
type OrderRecorder struct {
	repo   repository.OrderRepository
	logger *zap.Logger
}

func NewOrderRecorder(repo repository.OrderRepository, logger *zap.Logger) *OrderRecorder {
	return &OrderRecorder{repo: repo, logger: logger}
}

// HandleEvent records an order for checkout.session.completed events.
// A returned error means the ledger write failed; callers on the webhook
// path still acknowledge the delivery, since Stripe's retry behavior is
// keyed on delivery success, not on our persistence outcome.
func (r *OrderRecorder) HandleEvent(ctx context.Context, event stripe.Event) error {
	metrics.WebhookEventsTotal.WithLabelValues(string(event.Type)).Inc()

	if string(event.Type) != eventCheckoutCompleted {
		r.logger.Info("Ignoring webhook event type",
			zap.String("event_type", string(event.Type)),
			zap.String("event_id", event.ID),
		)
		return nil
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		r.logger.Error("Failed to unmarshal checkout session",
			zap.String("event_id", event.ID),
			zap.Error(err),
		)
		return fmt.Errorf("unmarshal checkout session: %w", err)
	}

	order := models.Order{SessionID: sess.ID}
	if sess.CustomerDetails != nil && sess.CustomerDetails.Email != "" {
		email := sess.CustomerDetails.Email
		order.CustomerEmail = &email
	}
	if sess.AmountTotal != 0 {
		amount := sess.AmountTotal
		order.Amount = &amount
	}
	if sess.Currency != "" {
		currency := string(sess.Currency)
		order.Currency = &currency
	}

	if err := r.repo.Insert(ctx, &order); err != nil {
		metrics.OrderInsertFailuresTotal.Inc()
		r.logger.Error("DB insert error",
			zap.String("session_id", sess.ID),
			zap.Error(err),
		)
		return fmt.Errorf("insert order: %w", err)
	}

	metrics.OrdersRecordedTotal.Inc()
	r.logger.Info("Order recorded",
		zap.String("session_id", sess.ID),
		zap.Uint("order_id", order.ID),
	)
	return nil
}
