package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/StephenEkwedike/FunRobin/internal/domain/entity"
	domainRepo "github.com/StephenEkwedike/FunRobin/internal/domain/repository"
)

type optionRepository struct {
	db *gorm.DB
}

// NewOptionRepository creates a new option repository
func NewOptionRepository(db *gorm.DB) domainRepo.OptionRepository {
	return &optionRepository{db: db}
}

func (r *optionRepository) List(ctx context.Context, filter *domainRepo.OptionFilter) ([]entity.OptionListing, error) {
	var listings []entity.OptionListing

	query := r.db.WithContext(ctx).Model(&entity.OptionListing{})

	if filter != nil {
		if filter.Search != "" {
			search := "%" + filter.Search + "%"
			query = query.Where("symbol ILIKE ? OR company ILIKE ?", search, search)
		}
		if filter.Type != nil {
			query = query.Where("type = ?", *filter.Type)
		}
		if filter.HotOnly {
			query = query.Where("is_hot = ?", true)
		}
	}

	err := query.Order("volume DESC").Find(&listings).Error
	return listings, err
}

func (r *optionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.OptionListing{}).Count(&count).Error
	return count, err
}

func (r *optionRepository) CreateBatch(ctx context.Context, listings []entity.OptionListing) error {
	if len(listings) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&listings).Error
}
