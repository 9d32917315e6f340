package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/StephenEkwedike/FunRobin/internal/domain/entity"
	"github.com/StephenEkwedike/FunRobin/internal/domain/enum"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByStripeCustomerID(ctx context.Context, customerID string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error

	// UpdatePlan sets the subscription plan, optionally recording the Stripe
	// customer id the plan change came from.
	UpdatePlan(ctx context.Context, userID uuid.UUID, plan enum.Plan, stripeCustomerID *string) error
	// UpdatePlanByEmail is the webhook path: Stripe events identify the
	// account by email before a customer id is known.
	UpdatePlanByEmail(ctx context.Context, email string, plan enum.Plan, stripeCustomerID *string) error
}
