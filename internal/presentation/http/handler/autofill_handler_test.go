package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/StephenEkwedike/FunRobin/internal/application/service"
	"github.com/StephenEkwedike/FunRobin/internal/domain/entity"
	"github.com/StephenEkwedike/FunRobin/internal/domain/repository"
)

type memAutofillRepo struct {
	mu      sync.Mutex
	records map[string]*entity.AutofillRecord
}

func (m *memAutofillRepo) Create(_ context.Context, rec *entity.AutofillRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.records[rec.Code]; exists {
		return repository.ErrCodeTaken
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	stored := *rec
	m.records[rec.Code] = &stored
	return nil
}

func (m *memAutofillRepo) TakeByCode(_ context.Context, code string, cutoff time.Time) (*entity.AutofillRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, exists := m.records[code]
	if !exists || rec.CreatedAt.Before(cutoff) {
		return nil, nil
	}
	delete(m.records, code)
	return rec, nil
}

func (m *memAutofillRepo) DeleteExpired(_ context.Context, cutoff time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var removed int64
	for code, rec := range m.records {
		if rec.CreatedAt.Before(cutoff) {
			delete(m.records, code)
			removed++
		}
	}
	return removed, nil
}

func autofillTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	repo := &memAutofillRepo{records: make(map[string]*entity.AutofillRecord)}
	svc := service.NewAutofillService(repo, 180*time.Second, 8)
	h := NewAutofillHandler(svc)

	router := gin.New()
	router.POST("/api/autofill/create", h.Create)
	router.GET("/api/autofill/get", h.Get)
	return router
}

func TestAutofillExchangeRoundTrip(t *testing.T) {
	router := autofillTestRouter()

	payload := `{"broker":"robinhood","symbol":"TSLA","option_type":"put","strike":435,"quantity":3,"price_type":"limit"}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/autofill/create", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
	}

	var created struct {
		Code      string `json:"code"`
		ExpiresAt string `json:"expires_at"`
		TTLSec    int    `json:"ttl_sec"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if len(created.Code) != 8 {
		t.Fatalf("code = %q, want 8 characters", created.Code)
	}
	if created.TTLSec != 180 {
		t.Errorf("ttl_sec = %d, want 180", created.TTLSec)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/autofill/get?code="+created.Code, nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("redeem status = %d, body %s", w.Code, w.Body.String())
	}

	// The redemption body is the stored payload verbatim, not the envelope
	if w.Body.String() != payload {
		t.Errorf("redeemed body differs:\n got %s\nwant %s", w.Body.String(), payload)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q, want application/json", ct)
	}
}

func TestAutofillSecondRedeemIs404(t *testing.T) {
	router := autofillTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/autofill/create", strings.NewReader(`{"a":1}`))
	router.ServeHTTP(w, req)

	var created struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}

	for i, wantStatus := range []int{http.StatusOK, http.StatusNotFound} {
		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/api/autofill/get?code="+created.Code, nil)
		router.ServeHTTP(w, req)
		if w.Code != wantStatus {
			t.Fatalf("redeem #%d status = %d, want %d", i+1, w.Code, wantStatus)
		}
	}
}

func TestAutofillRedeemMissingAndBogusCodes(t *testing.T) {
	router := autofillTestRouter()

	tests := []struct {
		query string
		want  int
	}{
		{"", http.StatusBadRequest},             // missing
		{"?code=", http.StatusBadRequest},       // empty
		{"?code=NOPE", http.StatusBadRequest},   // wrong length
		{"?code=AAAAAAAA", http.StatusNotFound}, // well-formed, never issued
		{"?code=ZZZZ9999", http.StatusNotFound}, // well-formed, never issued
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/autofill/get"+tt.query, nil)
		router.ServeHTTP(w, req)
		if w.Code != tt.want {
			t.Errorf("redeem %q status = %d, want %d", tt.query, w.Code, tt.want)
		}
	}
}

func TestAutofillCreateRejectsNonObject(t *testing.T) {
	router := autofillTestRouter()

	for _, body := range []string{`[1,2]`, `"text"`, `null`, `{`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/autofill/create", strings.NewReader(body))
		router.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("create with %q status = %d, want 400", body, w.Code)
		}
	}
}
