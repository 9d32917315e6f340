package service

import (
	"context"
	"time"

	"github.com/StephenEkwedike/FunRobin/internal/domain/repository"
	"github.com/StephenEkwedike/FunRobin/pkg/apperror"
)

const defaultLeaderboardLimit = 50

// LeaderboardService ranks users by realized performance over closed trades
type LeaderboardService struct {
	tradeRepo repository.TradeRepository
}

// NewLeaderboardService creates a new leaderboard service
func NewLeaderboardService(tradeRepo repository.TradeRepository) *LeaderboardService {
	return &LeaderboardService{tradeRepo: tradeRepo}
}

// Leaderboard returns the ranked rows for a window ("all", "daily", "weekly",
// "monthly") and metric ("pnl" or "return_pct"). Windows are computed in UTC;
// weeks start on Monday.
func (s *LeaderboardService) Leaderboard(ctx context.Context, window, metric string, limit int) ([]repository.LeaderboardRow, error) {
	from, err := windowStart(window, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	var orderByReturn bool
	switch metric {
	case "", "pnl":
		orderByReturn = false
	case "return_pct":
		orderByReturn = true
	default:
		return nil, apperror.NewBadRequestError("Unknown metric: " + metric)
	}

	if limit <= 0 || limit > 200 {
		limit = defaultLeaderboardLimit
	}

	rows, err := s.tradeRepo.Leaderboard(ctx, from, nil, orderByReturn, limit)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []repository.LeaderboardRow{}
	}
	return rows, nil
}

// windowStart returns the inclusive lower bound for a leaderboard window, or
// nil for all-time.
func windowStart(window string, now time.Time) (*time.Time, error) {
	switch window {
	case "", "all":
		return nil, nil
	case "daily":
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		return &start, nil
	case "weekly":
		// Monday 00:00 UTC of the current week
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
			AddDate(0, 0, -(weekday - 1))
		return &start, nil
	case "monthly":
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return &start, nil
	default:
		return nil, apperror.NewBadRequestError("Unknown window: " + window)
	}
}
