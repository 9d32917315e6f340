package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/StephenEkwedike/FunRobin/internal/domain/entity"
	"github.com/StephenEkwedike/FunRobin/internal/domain/repository"
	"github.com/StephenEkwedike/FunRobin/pkg/apperror"
	"github.com/StephenEkwedike/FunRobin/pkg/utils"
)

// fakeAutofillRepo is an in-memory AutofillRepository. TakeByCode holds the
// lock for the whole check-and-delete, mirroring the atomicity the real
// Postgres DELETE ... RETURNING provides.
type fakeAutofillRepo struct {
	mu      sync.Mutex
	records map[string]*entity.AutofillRecord

	failCreates int // return ErrCodeTaken for this many Create calls
}

func newFakeAutofillRepo() *fakeAutofillRepo {
	return &fakeAutofillRepo{records: make(map[string]*entity.AutofillRecord)}
}

func (f *fakeAutofillRepo) Create(_ context.Context, rec *entity.AutofillRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failCreates > 0 {
		f.failCreates--
		return repository.ErrCodeTaken
	}
	if _, exists := f.records[rec.Code]; exists {
		return repository.ErrCodeTaken
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	stored := *rec
	f.records[rec.Code] = &stored
	return nil
}

func (f *fakeAutofillRepo) TakeByCode(_ context.Context, code string, cutoff time.Time) (*entity.AutofillRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	rec, exists := f.records[code]
	if !exists || rec.CreatedAt.Before(cutoff) {
		return nil, nil
	}
	delete(f.records, code)
	return rec, nil
}

func (f *fakeAutofillRepo) DeleteExpired(_ context.Context, cutoff time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var removed int64
	for code, rec := range f.records {
		if rec.CreatedAt.Before(cutoff) {
			delete(f.records, code)
			removed++
		}
	}
	return removed, nil
}

func (f *fakeAutofillRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.records)
}

func (f *fakeAutofillRepo) backdate(code string, age time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if rec, ok := f.records[code]; ok {
		rec.CreatedAt = rec.CreatedAt.Add(-age)
	}
}

func newTestAutofillService(repo repository.AutofillRepository) *AutofillService {
	return NewAutofillService(repo, 180*time.Second, 8)
}

func TestIssueReturnsValidCode(t *testing.T) {
	repo := newFakeAutofillRepo()
	svc := newTestAutofillService(repo)

	payload := json.RawMessage(`{"symbol":"TSLA","quantity":3}`)
	code, expiresAt, err := svc.Issue(context.Background(), payload)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if !utils.IsValidAutofillCode(code, 8) {
		t.Errorf("issued code %q is not a valid 8-character code", code)
	}

	ttl := time.Until(expiresAt)
	if ttl < 170*time.Second || ttl > 190*time.Second {
		t.Errorf("expiry %v away from now, want about 180s", ttl)
	}
}

func TestIssueRejectsNonObjectPayloads(t *testing.T) {
	svc := newTestAutofillService(newFakeAutofillRepo())

	tests := []struct {
		name    string
		payload string
	}{
		{"array", `[1,2,3]`},
		{"string", `"hello"`},
		{"number", `42`},
		{"null", `null`},
		{"invalid", `{"symbol":`},
		{"empty", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Issue(context.Background(), json.RawMessage(tt.payload))
			if err == nil {
				t.Fatalf("expected error for payload %q", tt.payload)
			}
			appErr := apperror.GetAppError(err)
			if appErr.Code != 400 {
				t.Errorf("status = %d, want 400", appErr.Code)
			}
		})
	}
}

func TestIssueResamplesOnCollision(t *testing.T) {
	repo := newFakeAutofillRepo()
	repo.failCreates = 3
	svc := newTestAutofillService(repo)

	code, _, err := svc.Issue(context.Background(), json.RawMessage(`{"a":1}`))
	if err != nil {
		t.Fatalf("Issue failed despite retries: %v", err)
	}
	if code == "" {
		t.Fatal("expected a code after resampling")
	}
}

func TestIssueGivesUpAfterRepeatedCollisions(t *testing.T) {
	repo := newFakeAutofillRepo()
	repo.failCreates = 100
	svc := newTestAutofillService(repo)

	if _, _, err := svc.Issue(context.Background(), json.RawMessage(`{"a":1}`)); err == nil {
		t.Fatal("expected error when every attempt collides")
	}
}

func TestRedeemRoundTripFidelity(t *testing.T) {
	repo := newFakeAutofillRepo()
	svc := newTestAutofillService(repo)

	// Key order and whitespace must survive verbatim
	payload := json.RawMessage(`{"zeta": 1, "alpha": {"nested": [true, null]}, "mid": "x"}`)
	code, _, err := svc.Issue(context.Background(), payload)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	got, err := svc.Redeem(context.Background(), code)
	if err != nil {
		t.Fatalf("Redeem failed: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("payload changed in transit:\n got %s\nwant %s", got, payload)
	}
}

func TestRedeemIsExactlyOnce(t *testing.T) {
	repo := newFakeAutofillRepo()
	svc := newTestAutofillService(repo)

	code, _, err := svc.Issue(context.Background(), json.RawMessage(`{"a":1}`))
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	const redeemers = 20
	var wg sync.WaitGroup
	successes := make(chan json.RawMessage, redeemers)
	failures := make(chan error, redeemers)

	for i := 0; i < redeemers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			payload, err := svc.Redeem(context.Background(), code)
			if err != nil {
				failures <- err
				return
			}
			successes <- payload
		}()
	}
	wg.Wait()
	close(successes)
	close(failures)

	if got := len(successes); got != 1 {
		t.Fatalf("%d redeemers succeeded, want exactly 1", got)
	}
	for err := range failures {
		if !errors.Is(err, apperror.ErrCodeNotFound) {
			t.Errorf("loser got %v, want ErrCodeNotFound", err)
		}
	}
}

func TestRedeemUnknownCode(t *testing.T) {
	svc := newTestAutofillService(newFakeAutofillRepo())

	_, err := svc.Redeem(context.Background(), "ABCD1234")
	if !errors.Is(err, apperror.ErrCodeNotFound) {
		t.Fatalf("err = %v, want ErrCodeNotFound", err)
	}
}

func TestRedeemMalformedCode(t *testing.T) {
	svc := newTestAutofillService(newFakeAutofillRepo())

	// Missing or malformed codes are validation errors, distinct from the
	// collapsed 404 for well-formed codes that match nothing
	for _, code := range []string{"", "short", "TOOLONGCODE123", "ABC!1234"} {
		_, err := svc.Redeem(context.Background(), code)
		if err == nil {
			t.Errorf("Redeem(%q) succeeded, want validation error", code)
			continue
		}
		if appErr := apperror.GetAppError(err); appErr.Code != 400 {
			t.Errorf("Redeem(%q) status = %d, want 400", code, appErr.Code)
		}
	}
}

func TestRedeemNormalizesCode(t *testing.T) {
	repo := newFakeAutofillRepo()
	svc := newTestAutofillService(repo)

	code, _, err := svc.Issue(context.Background(), json.RawMessage(`{"a":1}`))
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	lowered := "  " + string(bytes.ToLower([]byte(code))) + "\n"
	if _, err := svc.Redeem(context.Background(), lowered); err != nil {
		t.Fatalf("Redeem of normalized variant failed: %v", err)
	}
}

func TestRedeemExpiredCode(t *testing.T) {
	repo := newFakeAutofillRepo()
	svc := newTestAutofillService(repo)

	code, _, err := svc.Issue(context.Background(), json.RawMessage(`{"a":1}`))
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	repo.backdate(code, 181*time.Second)

	// Expired reads the same as never issued
	_, err = svc.Redeem(context.Background(), code)
	if !errors.Is(err, apperror.ErrCodeNotFound) {
		t.Fatalf("err = %v, want ErrCodeNotFound", err)
	}
}

func TestRedeemJustInsideTTL(t *testing.T) {
	repo := newFakeAutofillRepo()
	svc := newTestAutofillService(repo)

	code, _, err := svc.Issue(context.Background(), json.RawMessage(`{"a":1}`))
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	repo.backdate(code, 170*time.Second)

	if _, err := svc.Redeem(context.Background(), code); err != nil {
		t.Fatalf("Redeem inside TTL failed: %v", err)
	}
}

func TestSweepRemovesOnlyExpiredRecords(t *testing.T) {
	repo := newFakeAutofillRepo()
	svc := newTestAutofillService(repo)

	fresh, _, err := svc.Issue(context.Background(), json.RawMessage(`{"fresh":true}`))
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	stale, _, err := svc.Issue(context.Background(), json.RawMessage(`{"stale":true}`))
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	repo.backdate(stale, time.Hour)

	removed, err := repo.DeleteExpired(context.Background(), time.Now().Add(-180*time.Second))
	if err != nil {
		t.Fatalf("DeleteExpired failed: %v", err)
	}
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	if repo.count() != 1 {
		t.Errorf("records remaining = %d, want 1", repo.count())
	}

	if _, err := svc.Redeem(context.Background(), fresh); err != nil {
		t.Errorf("fresh code should survive the sweep: %v", err)
	}
}
