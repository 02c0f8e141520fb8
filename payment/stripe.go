package payment

import (
	"context"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"

	"storefront/models"
)

// SessionCreator creates a hosted checkout session and returns its id.
type SessionCreator interface {
	CreateSession(ctx context.Context, items []models.PopulatedCartItem, successURL, cancelURL string) (string, error)
}

// Init sets the Stripe API key. The key comes from configuration only.
func Init(key string) {
	stripe.Key = key
}

// LineItems maps resolved cart entries to checkout line items. Unit
// amounts are in minor currency units; quantities pass through.
func LineItems(items []models.PopulatedCartItem) []*stripe.CheckoutSessionLineItemParams {
	lines := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, item := range items {
		lines = append(lines, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String("usd"),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Product.Title),
				},
				UnitAmount: stripe.Int64(int64(math.Round(item.Product.Price * 100))),
			},
			Quantity: stripe.Int64(int64(item.Quantity)),
		})
	}
	return lines
}

// StripeGateway creates real hosted sessions against the Stripe API.
type StripeGateway struct{}

func (StripeGateway) CreateSession(ctx context.Context, items []models.PopulatedCartItem, successURL, cancelURL string) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          LineItems(items),
		SuccessURL:         stripe.String(successURL),
		CancelURL:          stripe.String(cancelURL),
	}
	params.Context = ctx

	s, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}
	return s.ID, nil
}
