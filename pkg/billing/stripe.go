package billing

import (
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
	"github.com/stripe/stripe-go/v79/webhook"
)

var ErrNotConfigured = errors.New("Stripe is not configured")

// StripeConfig holds the Stripe integration settings
type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	ProPriceID    string
	SiteURL       string
}

// StripeService wraps the Stripe SDK for checkout and webhook handling
type StripeService struct {
	config StripeConfig
}

// NewStripeService creates a new Stripe service and sets the global API key
func NewStripeService(cfg StripeConfig) *StripeService {
	if cfg.SecretKey != "" {
		stripe.Key = cfg.SecretKey
	}
	return &StripeService{config: cfg}
}

// IsConfigured checks whether checkout sessions can be created
func (s *StripeService) IsConfigured() bool {
	return s.config.SecretKey != "" && s.config.ProPriceID != "" && s.config.SiteURL != ""
}

// CreateCheckoutSession starts a subscription-mode checkout for the pro plan
// and returns the hosted checkout URL.
func (s *StripeService) CreateCheckoutSession(customerEmail string) (string, error) {
	if !s.IsConfigured() {
		return "", ErrNotConfigured
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(s.config.ProPriceID),
				Quantity: stripe.Int64(1),
			},
		},
		CustomerEmail: stripe.String(customerEmail),
		SuccessURL:    stripe.String(s.config.SiteURL + "/?upgrade=success"),
		CancelURL:     stripe.String(s.config.SiteURL + "/pricing?upgrade=cancelled"),
	}

	checkout, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}
	if checkout.URL == "" {
		return "", errors.New("checkout session has no URL")
	}
	return checkout.URL, nil
}

// VerifyWebhook validates the Stripe-Signature header against the raw request
// body and returns the decoded event.
func (s *StripeService) VerifyWebhook(payload []byte, signature string) (stripe.Event, error) {
	if s.config.WebhookSecret == "" {
		return stripe.Event{}, ErrNotConfigured
	}
	return webhook.ConstructEvent(payload, signature, s.config.WebhookSecret)
}
