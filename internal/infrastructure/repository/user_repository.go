package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/StephenEkwedike/FunRobin/internal/domain/entity"
	"github.com/StephenEkwedike/FunRobin/internal/domain/enum"
	domainRepo "github.com/StephenEkwedike/FunRobin/internal/domain/repository"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domainRepo.UserRepository {
	return &userRepository{db: db}
}

// usernameLower derives the unique-index value from a display username. A
// cleared username maps to NULL so the index entry is released and other
// accounts can claim the name.
func usernameLower(username string) *string {
	if username == "" {
		return nil
	}
	lower := strings.ToLower(username)
	return &lower
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	user.UsernameLower = usernameLower(user.Username)
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", strings.ToLower(email)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).First(&user, "username_lower = ?", strings.ToLower(username)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (r *userRepository) GetByStripeCustomerID(ctx context.Context, customerID string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).First(&user, "stripe_customer_id = ?", customerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	user.UsernameLower = usernameLower(user.Username)
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.User{}, "id = ?", id).Error
}

func (r *userRepository) UpdatePlan(ctx context.Context, userID uuid.UUID, plan enum.Plan, stripeCustomerID *string) error {
	updates := map[string]interface{}{"plan": plan}
	if stripeCustomerID != nil {
		updates["stripe_customer_id"] = *stripeCustomerID
	}
	return r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", userID).
		Updates(updates).Error
}

func (r *userRepository) UpdatePlanByEmail(ctx context.Context, email string, plan enum.Plan, stripeCustomerID *string) error {
	updates := map[string]interface{}{"plan": plan}
	if stripeCustomerID != nil {
		updates["stripe_customer_id"] = *stripeCustomerID
	}
	return r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("email = ?", strings.ToLower(email)).
		Updates(updates).Error
}
