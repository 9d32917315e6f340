package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/StephenEkwedike/FunRobin/internal/domain/entity"
	domainRepo "github.com/StephenEkwedike/FunRobin/internal/domain/repository"
	"github.com/StephenEkwedike/FunRobin/pkg/pagination"
)

type tradeRepository struct {
	db *gorm.DB
}

// NewTradeRepository creates a new trade repository
func NewTradeRepository(db *gorm.DB) domainRepo.TradeRepository {
	return &tradeRepository{db: db}
}

func (r *tradeRepository) Create(ctx context.Context, trade *entity.Trade) error {
	return r.db.WithContext(ctx).Create(trade).Error
}

func (r *tradeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Trade, error) {
	var trade entity.Trade
	err := r.db.WithContext(ctx).First(&trade, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &trade, err
}

func (r *tradeRepository) Update(ctx context.Context, trade *entity.Trade) error {
	return r.db.WithContext(ctx).Save(trade).Error
}

func (r *tradeRepository) ListByUser(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Trade, int64, error) {
	var trades []entity.Trade
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Trade{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("opened_at DESC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&trades).Error

	return trades, total, err
}

// Leaderboard aggregates closed trades per user in SQL. Win rate and return
// are computed in the query so ordering happens in the database rather than
// in memory.
func (r *tradeRepository) Leaderboard(ctx context.Context, from, to *time.Time, orderByReturn bool, limit int) ([]domainRepo.LeaderboardRow, error) {
	var rows []domainRepo.LeaderboardRow

	query := r.db.WithContext(ctx).
		Table("trades").
		Select(`trades.user_id,
			COALESCE(NULLIF(users.username, ''), split_part(users.email, '@', 1)) AS display_name,
			NULLIF(users.avatar_url, '') AS avatar_url,
			COUNT(*) AS trades,
			COUNT(*) FILTER (WHERE trades.pnl > 0) AS wins,
			COUNT(*) FILTER (WHERE trades.pnl > 0)::float / COUNT(*) AS win_rate,
			COALESCE(SUM(trades.pnl), 0) AS pn_l,
			COALESCE(SUM(ABS(trades.entry_price * trades.quantity * trades.multiplier)), 0) AS cost,
			CASE WHEN COALESCE(SUM(ABS(trades.entry_price * trades.quantity * trades.multiplier)), 0) = 0 THEN 0
				ELSE COALESCE(SUM(trades.pnl), 0) / SUM(ABS(trades.entry_price * trades.quantity * trades.multiplier)) * 100
			END AS return_pct,
			MAX(trades.closed_at) AS last_trade_at`).
		Joins("JOIN users ON users.id = trades.user_id AND users.deleted_at IS NULL").
		Where("trades.status = ?", "closed").
		Where("trades.closed_at IS NOT NULL")

	if from != nil {
		query = query.Where("trades.closed_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("trades.closed_at < ?", *to)
	}

	order := "pn_l DESC, trades DESC"
	if orderByReturn {
		order = "return_pct DESC, trades DESC"
	}

	err := query.
		Group("trades.user_id, users.username, users.email, users.avatar_url").
		Order(order).
		Limit(limit).
		Scan(&rows).Error

	return rows, err
}
