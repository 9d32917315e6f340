package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/StephenEkwedike/FunRobin/internal/domain/enum"
)

// OptionListing is a tile on the FunRobin grid: a mock option contract with
// the gamified stats the UI renders. Listings are seeded data, not market
// data.
type OptionListing struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Symbol       string          `gorm:"size:20;not null;index" json:"symbol"`
	Company      string          `gorm:"size:255;not null" json:"company"`
	Type         enum.OptionType `gorm:"size:10;not null" json:"type"`
	Strike       float64         `gorm:"not null" json:"strike"`
	CurrentPrice float64         `gorm:"not null" json:"current_price"`
	Premium      float64         `gorm:"not null" json:"premium"`
	Expiry       string          `gorm:"size:20;not null" json:"expiry"`
	Multiplier   float64         `gorm:"not null" json:"multiplier"`
	Volume       int64           `gorm:"default:0" json:"volume"`
	IsHot        bool            `gorm:"default:false" json:"is_hot"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new listing
func (o *OptionListing) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OptionListing model
func (OptionListing) TableName() string {
	return "option_listings"
}
