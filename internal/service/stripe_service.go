package service

import (
	"dmv/internal/config"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
)

// FeeCheckout opens a hosted payment page for a registration fee.
type FeeCheckout interface {
	CreateCheckoutSession(amount int64, description, customerEmail string) (url string, sessionID string, err error)
}

type StripeService struct {
	currency   string
	successURL string
	cancelURL  string
}

// NewStripeService returns nil when no Stripe key is configured.
func NewStripeService(cfg config.Config) *StripeService {
	if cfg.StripeSecretKey == "" {
		return nil
	}
	stripe.Key = cfg.StripeSecretKey
	return &StripeService{
		currency:   cfg.FeeCurrency,
		successURL: cfg.CheckoutSuccessURL,
		cancelURL:  cfg.CheckoutCancelURL,
	}
}

// CreateCheckoutSession takes the amount in the currency's smallest unit.
func (s *StripeService) CreateCheckoutSession(amount int64, description, customerEmail string) (string, string, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(s.currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(description),
					},
					UnitAmount: stripe.Int64(amount),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(s.successURL),
		CancelURL:  stripe.String(s.cancelURL),
	}
	if customerEmail != "" {
		params.CustomerEmail = stripe.String(customerEmail)
	}

	sess, err := session.New(params)
	if err != nil {
		return "", "", fmt.Errorf("stripe checkout session: %w", err)
	}
	return sess.URL, sess.ID, nil
}
