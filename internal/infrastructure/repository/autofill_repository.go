package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/StephenEkwedike/FunRobin/internal/domain/entity"
	domainRepo "github.com/StephenEkwedike/FunRobin/internal/domain/repository"
)

type autofillRepository struct {
	db *gorm.DB
}

// NewAutofillRepository creates a new autofill repository
func NewAutofillRepository(db *gorm.DB) domainRepo.AutofillRepository {
	return &autofillRepository{db: db}
}

func (r *autofillRepository) Create(ctx context.Context, rec *entity.AutofillRecord) error {
	err := r.db.WithContext(ctx).Create(rec).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainRepo.ErrCodeTaken
	}
	return err
}

// TakeByCode deletes the live record for code and returns it in one
// statement (DELETE ... RETURNING). Concurrent redemptions of the same code
// are serialized by Postgres: one caller gets the row, the rest get nothing.
func (r *autofillRepository) TakeByCode(ctx context.Context, code string, cutoff time.Time) (*entity.AutofillRecord, error) {
	var rec entity.AutofillRecord
	result := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("code = ? AND created_at >= ?", code, cutoff).
		Delete(&rec)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &rec, nil
}

func (r *autofillRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&entity.AutofillRecord{})
	return result.RowsAffected, result.Error
}
