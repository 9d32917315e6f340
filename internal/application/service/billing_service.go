package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/stripe/stripe-go/v79"

	"github.com/StephenEkwedike/FunRobin/internal/domain/enum"
	"github.com/StephenEkwedike/FunRobin/internal/domain/repository"
	"github.com/StephenEkwedike/FunRobin/pkg/apperror"
	"github.com/StephenEkwedike/FunRobin/pkg/billing"
)

// BillingService connects Stripe subscriptions to the user's plan
type BillingService struct {
	userRepo      repository.UserRepository
	stripeService *billing.StripeService
}

// NewBillingService creates a new billing service
func NewBillingService(userRepo repository.UserRepository, stripeService *billing.StripeService) *BillingService {
	return &BillingService{
		userRepo:      userRepo,
		stripeService: stripeService,
	}
}

// CreateCheckout starts a pro-subscription checkout for the user's email and
// returns the hosted checkout URL.
func (s *BillingService) CreateCheckout(ctx context.Context, email string) (string, error) {
	url, err := s.stripeService.CreateCheckoutSession(email)
	if errors.Is(err, billing.ErrNotConfigured) {
		return "", apperror.NewBadRequestError("Billing is not configured")
	}
	if err != nil {
		return "", err
	}
	return url, nil
}

// HandleWebhook verifies and applies a Stripe webhook. Subscription lifecycle
// events flip the plan; everything else is acknowledged and ignored.
func (s *BillingService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := s.stripeService.VerifyWebhook(payload, signature)
	if errors.Is(err, billing.ErrNotConfigured) {
		return apperror.NewBadRequestError("Billing is not configured")
	}
	if err != nil {
		return apperror.NewBadRequestError("Invalid webhook signature")
	}

	switch event.Type {
	case "checkout.session.completed":
		return s.handleCheckoutCompleted(ctx, event)
	case "customer.subscription.created", "customer.subscription.updated":
		return s.handleSubscriptionActive(ctx, event)
	case "customer.subscription.deleted":
		return s.handleSubscriptionDeleted(ctx, event)
	default:
		log.Printf("ignoring stripe event %s", event.Type)
		return nil
	}
}

func (s *BillingService) handleCheckoutCompleted(ctx context.Context, event stripe.Event) error {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return fmt.Errorf("decode checkout session: %w", err)
	}

	email := session.CustomerEmail
	if email == "" && session.CustomerDetails != nil {
		email = session.CustomerDetails.Email
	}
	if email == "" {
		log.Printf("checkout.session.completed %s has no customer email", session.ID)
		return nil
	}

	var customerID *string
	if session.Customer != nil && session.Customer.ID != "" {
		customerID = &session.Customer.ID
	}

	log.Printf("upgrading %s to pro after checkout %s", email, session.ID)
	return s.userRepo.UpdatePlanByEmail(ctx, email, enum.PlanPro, customerID)
}

func (s *BillingService) handleSubscriptionActive(ctx context.Context, event stripe.Event) error {
	sub, err := decodeSubscription(event)
	if err != nil {
		return err
	}
	return s.setPlanByCustomer(ctx, sub, enum.PlanPro)
}

func (s *BillingService) handleSubscriptionDeleted(ctx context.Context, event stripe.Event) error {
	sub, err := decodeSubscription(event)
	if err != nil {
		return err
	}
	return s.setPlanByCustomer(ctx, sub, enum.PlanFree)
}

func (s *BillingService) setPlanByCustomer(ctx context.Context, sub *stripe.Subscription, plan enum.Plan) error {
	if sub.Customer == nil || sub.Customer.ID == "" {
		log.Printf("subscription %s has no customer, skipping", sub.ID)
		return nil
	}

	user, err := s.userRepo.GetByStripeCustomerID(ctx, sub.Customer.ID)
	if err != nil {
		return err
	}
	if user == nil {
		// Checkout webhook may not have landed yet; the next subscription
		// event will retry the mapping.
		log.Printf("no user for stripe customer %s, skipping", sub.Customer.ID)
		return nil
	}

	log.Printf("setting plan=%s for user %s (customer %s)", plan, user.ID, sub.Customer.ID)
	return s.userRepo.UpdatePlan(ctx, user.ID, plan, nil)
}

func decodeSubscription(event stripe.Event) (*stripe.Subscription, error) {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return nil, fmt.Errorf("decode subscription: %w", err)
	}
	return &sub, nil
}
