package repository

import (
	"context"
	"errors"
	"time"

	"github.com/StephenEkwedike/FunRobin/internal/domain/entity"
)

// ErrCodeTaken indicates a freshly minted code collided with a live record.
var ErrCodeTaken = errors.New("autofill code already in use")

// AutofillRepository defines the interface for one-time autofill code storage.
// The store is the only coordination point between the issuing web app and the
// redeeming browser extension, so TakeByCode must be atomic at the storage
// level: of any number of concurrent calls for the same code, exactly one may
// observe the record.
type AutofillRepository interface {
	// Create stores a new record. Returns ErrCodeTaken when the code collides
	// with a live record so the caller can resample.
	Create(ctx context.Context, rec *entity.AutofillRecord) error

	// TakeByCode atomically fetches and deletes the record for code, ignoring
	// records created before cutoff (logically expired). Returns (nil, nil)
	// when no live record matches.
	TakeByCode(ctx context.Context, code string, cutoff time.Time) (*entity.AutofillRecord, error)

	// DeleteExpired purges records created before cutoff and returns how many
	// were removed. Physical cleanup only; expiry is enforced by the cutoff
	// in TakeByCode regardless.
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}
