package repository

import (
	"context"

	"github.com/StephenEkwedike/FunRobin/internal/domain/entity"
	"github.com/StephenEkwedike/FunRobin/internal/domain/enum"
)

// OptionFilter narrows the grid listing query
type OptionFilter struct {
	Search  string           // matches symbol or company, case-insensitive
	Type    *enum.OptionType // call or put
	HotOnly bool
}

// OptionRepository defines the interface for option grid data access
type OptionRepository interface {
	List(ctx context.Context, filter *OptionFilter) ([]entity.OptionListing, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, listings []entity.OptionListing) error
}
