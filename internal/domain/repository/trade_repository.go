package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/StephenEkwedike/FunRobin/internal/domain/entity"
	"github.com/StephenEkwedike/FunRobin/pkg/pagination"
)

// LeaderboardRow represents one user's aggregated performance over closed
// trades within a window.
type LeaderboardRow struct {
	UserID      uuid.UUID  `json:"user_id"`
	DisplayName string     `json:"display_name"`
	AvatarURL   *string    `json:"avatar_url,omitempty"`
	Trades      int64      `json:"trades"`
	Wins        int64      `json:"wins"`
	WinRate     float64    `json:"win_rate"`
	PnL         float64    `json:"pnl"`
	Cost        float64    `json:"cost"`
	ReturnPct   float64    `json:"return_pct"`
	LastTradeAt *time.Time `json:"last_trade_at,omitempty"`
}

// TradeRepository defines the interface for trade data access
type TradeRepository interface {
	Create(ctx context.Context, trade *entity.Trade) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Trade, error)
	Update(ctx context.Context, trade *entity.Trade) error
	ListByUser(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Trade, int64, error)

	// Leaderboard aggregates closed trades per user. A nil from/to means
	// all-time. orderByReturn selects return_pct over pnl as the sort key.
	Leaderboard(ctx context.Context, from, to *time.Time, orderByReturn bool, limit int) ([]LeaderboardRow, error)
}
