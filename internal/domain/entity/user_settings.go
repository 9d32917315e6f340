package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserSettings represents user-specific application settings
type UserSettings struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Appearance
	Theme          string `gorm:"size:20;default:'light'" json:"theme"`
	ShowAnimations bool   `gorm:"default:true" json:"show_animations"`
	ShowConfetti   bool   `gorm:"default:true" json:"show_confetti"`

	// Trading defaults
	DefaultQuantity  int    `gorm:"default:1" json:"default_quantity"`
	DefaultPriceType string `gorm:"size:10;default:'limit'" json:"default_price_type"`

	// Notifications
	EmailNotifications bool `gorm:"default:true" json:"email_notifications"`
	HotOptionAlerts    bool `gorm:"default:true" json:"hot_option_alerts"`
	LeaderboardAlerts  bool `gorm:"default:false" json:"leaderboard_alerts"`
	MarketingEmails    bool `gorm:"default:false" json:"marketing_emails"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating new settings
func (s *UserSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the UserSettings model
func (UserSettings) TableName() string {
	return "user_settings"
}
