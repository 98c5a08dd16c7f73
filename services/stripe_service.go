package services

import (
	"math"
	"strconv"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/yeremiapane/restaurant-order-api/config"
)

// CheckoutItem is one line the client wants on the hosted payment
// page. Prices come from the caller, matching the order snapshot.
type CheckoutItem struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"min=0"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
}

// StripeService wraps the Stripe SDK: hosted checkout sessions on the
// way out, signed webhook events on the way back in.
type StripeService struct {
	webhookSecret string
	successURL    string
	cancelURL     string
}

func NewStripeService(cfg *config.Config) *StripeService {
	stripe.Key = cfg.StripeSecretKey
	return &StripeService{
		webhookSecret: cfg.StripeWebhookSecret,
		successURL:    cfg.CheckoutSuccessURL,
		cancelURL:     cfg.CheckoutCancelURL,
	}
}

// CreateCheckoutSession opens a hosted payment session for the given
// line items. The order id rides along as opaque metadata so the
// webhook can correlate the event back to the order. Nothing is
// charged here.
func (s *StripeService) CreateCheckoutSession(orderID uint, items []CheckoutItem) (*stripe.CheckoutSession, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, item := range items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(string(stripe.CurrencyUSD)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
				// Stripe wants cents.
				UnitAmount: stripe.Int64(int64(math.Round(item.Price * 100))),
			},
			Quantity: stripe.Int64(int64(item.Quantity)),
		})
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(s.successURL),
		CancelURL:          stripe.String(s.cancelURL),
	}
	params.AddMetadata("orderId", strconv.FormatUint(uint64(orderID), 10))

	return session.New(params)
}

// VerifyEvent authenticates a webhook delivery. payload must be the
// raw request body as received; verification over a re-serialized
// body would not match the signature.
func (s *StripeService) VerifyEvent(payload []byte, sigHeader string) (stripe.Event, error) {
	return webhook.ConstructEvent(payload, sigHeader, s.webhookSecret)
}
