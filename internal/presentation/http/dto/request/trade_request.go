package request

import "time"

// OpenTradeRequest represents a request to record a new open position
type OpenTradeRequest struct {
	Broker     string     `json:"broker" binding:"omitempty,max=50"`
	Symbol     string     `json:"symbol" binding:"required,max=20"`
	AssetType  string     `json:"asset_type" binding:"omitempty,oneof=option stock"`
	Side       string     `json:"side" binding:"required,oneof=buy sell"`
	Quantity   float64    `json:"quantity" binding:"required,gt=0"`
	Multiplier float64    `json:"multiplier" binding:"omitempty,gt=0"`
	EntryPrice float64    `json:"entry_price" binding:"required,gt=0"`
	Fees       float64    `json:"fees" binding:"omitempty,gte=0"`
	OptionType *string    `json:"option_type" binding:"omitempty,oneof=call put"`
	Strike     *float64   `json:"strike" binding:"omitempty,gt=0"`
	Expiry     *string    `json:"expiry" binding:"omitempty,max=20"`
	OpenedAt   *time.Time `json:"opened_at"`
}

// CloseTradeRequest represents a request to close an open position
type CloseTradeRequest struct {
	ExitPrice float64    `json:"exit_price" binding:"gte=0"`
	Fees      float64    `json:"fees" binding:"omitempty,gte=0"`
	ClosedAt  *time.Time `json:"closed_at"`
}
