package services

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/checkout/session"
	"github.com/stripe/stripe-go/v80/webhook"
)

// Fixed-price single product sold by the storefront.
const (
	productName     = "Getting to Know Kanji — Physical + PDF bundle"
	productImage    = "/images/Getting to known-1.jpg"
	unitAmountCents = 690 // $6.90
	productCurrency = "usd"
)

// PaymentProvider abstracts the Stripe client for controllers and tests.
type PaymentProvider interface {
	CreateCheckoutSession(ctx context.Context, quantity int64) (string, error)
	ParseWebhook(r *http.Request) (stripe.Event, error)
}

type StripeService struct {
	SecretKey  string
	WebhookKey string
	SiteURL    string
}

func NewStripeService(secretKey, webhookKey, siteURL string) *StripeService {
	stripe.Key = secretKey
	return &StripeService{SecretKey: secretKey, WebhookKey: webhookKey, SiteURL: siteURL}
}

// CreateCheckoutSession creates a hosted Stripe Checkout session for the
// given quantity of the bundle and returns the opaque session id.
func (s *StripeService) CreateCheckoutSession(ctx context.Context, quantity int64) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(productCurrency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:   stripe.String(productName),
						Images: stripe.StringSlice([]string{s.SiteURL + productImage}),
					},
					UnitAmount: stripe.Int64(unitAmountCents),
				},
				Quantity: stripe.Int64(quantity),
			},
		},
		SuccessURL: stripe.String(s.SiteURL + "/?success=true"),
		CancelURL:  stripe.String(s.SiteURL + "/?canceled=true"),
	}
	params.Context = ctx

	sess, err := session.New(params)
	if err != nil {
		return "", err
	}
	return sess.ID, nil
}

// ParseWebhook verifies the Stripe-Signature header against the exact bytes
// that arrived on the wire and decodes the event. The body is restored so
// later middleware can still read it.
func (s *StripeService) ParseWebhook(r *http.Request) (stripe.Event, error) {
	var event stripe.Event
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		return event, err
	}
	r.Body = io.NopCloser(bytes.NewBuffer(payload))
	sigHeader := r.Header.Get("Stripe-Signature")
	return webhook.ConstructEvent(payload, sigHeader, s.WebhookKey)
}
