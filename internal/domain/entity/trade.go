package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/StephenEkwedike/FunRobin/internal/domain/enum"
)

// Trade represents a simulated position a user opened from the grid. Entry
// and exit are recorded by the user; nothing here ever reaches a brokerage.
type Trade struct {
	ID         uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	Broker     string           `gorm:"size:50" json:"broker,omitempty"`
	Symbol     string           `gorm:"size:20;not null" json:"symbol"`
	AssetType  string           `gorm:"size:20;default:'option'" json:"asset_type"`
	Side       enum.TradeSide   `gorm:"size:10;not null" json:"side"`
	Status     enum.TradeStatus `gorm:"size:10;not null;index:idx_trades_status_closed" json:"status"`
	Quantity   float64          `gorm:"not null" json:"quantity"`
	Multiplier float64          `gorm:"default:1" json:"multiplier"`
	EntryPrice float64          `gorm:"not null" json:"entry_price"`
	ExitPrice  *float64         `json:"exit_price,omitempty"`
	Fees       float64          `gorm:"default:0" json:"fees"`
	PnL        *float64         `gorm:"column:pnl" json:"pnl,omitempty"`
	ReturnPct  *float64         `json:"return_pct,omitempty"`

	// Option metadata, kept denormalized the way the UI sends it
	OptionType *enum.OptionType `gorm:"size:10" json:"option_type,omitempty"`
	Strike     *float64         `json:"strike,omitempty"`
	Expiry     *string          `gorm:"size:20" json:"expiry,omitempty"`

	OpenedAt  time.Time  `gorm:"not null;index" json:"opened_at"`
	ClosedAt  *time.Time `gorm:"index:idx_trades_status_closed" json:"closed_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new trade
func (t *Trade) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Trade model
func (Trade) TableName() string {
	return "trades"
}

// CostBasis returns the absolute capital committed at entry
func (t *Trade) CostBasis() float64 {
	basis := t.EntryPrice * t.Quantity * t.Multiplier
	if basis < 0 {
		return -basis
	}
	return basis
}
