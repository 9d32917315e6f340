package service

import (
	"context"
	"math"
	"math/rand"

	"github.com/StephenEkwedike/FunRobin/internal/domain/entity"
	"github.com/StephenEkwedike/FunRobin/internal/domain/enum"
	"github.com/StephenEkwedike/FunRobin/internal/domain/repository"
)

// Grid caps applied to free-plan users. Pro unlocks the full multiplier range
// and the hot badge.
const (
	freePlanMaxMultiplier = 10.0
)

// OptionService serves the option grid
type OptionService struct {
	optionRepo repository.OptionRepository
}

// NewOptionService creates a new option service
func NewOptionService(optionRepo repository.OptionRepository) *OptionService {
	return &OptionService{optionRepo: optionRepo}
}

// ListGrid returns the grid listings for a user on the given plan. Free users
// see capped multipliers and no hot flags so the full grid stays a pro perk.
func (s *OptionService) ListGrid(ctx context.Context, filter *repository.OptionFilter, plan enum.Plan) ([]entity.OptionListing, error) {
	if filter != nil && filter.HotOnly && !plan.IsPro() {
		// Hot filtering is meaningless when hot flags are hidden
		filter.HotOnly = false
	}

	listings, err := s.optionRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if !plan.IsPro() {
		for i := range listings {
			if listings[i].Multiplier > freePlanMaxMultiplier {
				listings[i].Multiplier = freePlanMaxMultiplier
			}
			listings[i].IsHot = false
		}
	}

	return listings, nil
}

// LiveQuotes returns the grid with prices jittered around their seeded values,
// simulating a ticking market for the pro view. Quotes drift up to ±1.5%; the
// listings themselves are never mutated.
func (s *OptionService) LiveQuotes(ctx context.Context, filter *repository.OptionFilter) ([]entity.OptionListing, error) {
	listings, err := s.optionRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	for i := range listings {
		drift := 1 + (rand.Float64()*2-1)*0.015
		listings[i].CurrentPrice = round2(listings[i].CurrentPrice * drift)
		listings[i].Premium = round2(listings[i].Premium * drift)
	}

	return listings, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
