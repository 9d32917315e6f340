package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/StephenEkwedike/FunRobin/internal/domain/enum"
)

// User represents a FunRobin account
type User struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Email            string         `gorm:"size:255;unique;not null" json:"email"`
	Username         string         `gorm:"size:255" json:"username"`
	UsernameLower    *string        `gorm:"size:255;uniqueIndex" json:"-"`
	Password         string         `gorm:"size:255" json:"-"`
	Provider         string         `gorm:"size:50;default:'local'" json:"provider"`
	ProviderID       *string        `gorm:"size:255" json:"-"`
	AvatarURL        *string        `gorm:"size:255" json:"avatar_url,omitempty"`
	Plan             enum.Plan      `gorm:"size:20;default:'free'" json:"plan"`
	StripeCustomerID *string        `gorm:"size:255;index" json:"-"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Trades   []Trade       `gorm:"foreignKey:UserID" json:"-"`
	Settings *UserSettings `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// IsPro reports whether the user's plan unlocks gated features
func (u *User) IsPro() bool {
	return u.Plan.IsPro()
}

// DisplayName returns the name to show on leaderboards
func (u *User) DisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}
