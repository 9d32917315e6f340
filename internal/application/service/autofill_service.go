package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/StephenEkwedike/FunRobin/internal/domain/entity"
	"github.com/StephenEkwedike/FunRobin/internal/domain/repository"
	"github.com/StephenEkwedike/FunRobin/pkg/apperror"
	"github.com/StephenEkwedike/FunRobin/pkg/utils"
)

const maxCodeGenerationAttempts = 5

// AutofillService hands an order intent from the web app to the browser
// extension. The web app posts a payload and gets a short code; the extension
// presents the code and gets the payload back exactly once.
type AutofillService struct {
	autofillRepo repository.AutofillRepository
	codeTTL      time.Duration
	codeLength   int
}

// NewAutofillService creates a new autofill service
func NewAutofillService(autofillRepo repository.AutofillRepository, codeTTL time.Duration, codeLength int) *AutofillService {
	return &AutofillService{
		autofillRepo: autofillRepo,
		codeTTL:      codeTTL,
		codeLength:   codeLength,
	}
}

// CodeTTL returns the configured lifetime of an unredeemed code
func (s *AutofillService) CodeTTL() time.Duration {
	return s.codeTTL
}

// Issue stores payload under a freshly generated code and returns the code
// with its expiry. The payload must be a JSON object; beyond that the server
// does not look inside it.
func (s *AutofillService) Issue(ctx context.Context, payload json.RawMessage) (string, time.Time, error) {
	if !isJSONObject(payload) {
		return "", time.Time{}, apperror.NewBadRequestError("Payload must be a JSON object")
	}

	// Collisions against live codes are vanishingly rare at this alphabet and
	// length; resample a few times rather than fail the request.
	for attempt := 0; attempt < maxCodeGenerationAttempts; attempt++ {
		code, err := utils.GenerateAutofillCode(s.codeLength)
		if err != nil {
			return "", time.Time{}, err
		}

		rec := &entity.AutofillRecord{
			Code:    code,
			Payload: payload,
		}

		err = s.autofillRepo.Create(ctx, rec)
		if errors.Is(err, repository.ErrCodeTaken) {
			continue
		}
		if err != nil {
			return "", time.Time{}, err
		}

		expiresAt := rec.CreatedAt.Add(s.codeTTL)
		if rec.CreatedAt.IsZero() {
			expiresAt = time.Now().Add(s.codeTTL)
		}
		return code, expiresAt, nil
	}

	return "", time.Time{}, apperror.NewAppError(500, "Could not allocate a code, try again")
}

// Redeem consumes the record for code and returns its payload. A missing or
// malformed code is a validation error; a well-formed code that matches
// nothing gets ErrCodeNotFound whether it was never issued, already consumed,
// or expired — the three cases are indistinguishable to the caller.
func (s *AutofillService) Redeem(ctx context.Context, code string) (json.RawMessage, error) {
	code = utils.NormalizeAutofillCode(code)
	if !utils.IsValidAutofillCode(code, s.codeLength) {
		return nil, apperror.NewBadRequestError("Invalid code")
	}

	cutoff := time.Now().Add(-s.codeTTL)
	rec, err := s.autofillRepo.TakeByCode(ctx, code, cutoff)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperror.ErrCodeNotFound
	}

	return rec.Payload, nil
}

// StartSweep runs a background loop that purges expired records until ctx is
// cancelled. Logical expiry is enforced at redemption time regardless; the
// sweep just keeps the table from accumulating dead rows.
func (s *AutofillService) StartSweep(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				cutoff := time.Now().Add(-s.codeTTL)
				removed, err := s.autofillRepo.DeleteExpired(ctx, cutoff)
				if err != nil {
					log.Printf("autofill sweep failed: %v", err)
					continue
				}
				if removed > 0 {
					log.Printf("autofill sweep removed %d expired records", removed)
				}
			}
		}
	}()
}

// isJSONObject reports whether data parses as a JSON object (not an array,
// string, null, or other scalar).
func isJSONObject(data []byte) bool {
	var probe map[string]json.RawMessage
	if json.Unmarshal(data, &probe) != nil {
		return false
	}
	// Unmarshal accepts "null" into a map; an absent payload is not an object.
	return probe != nil
}
