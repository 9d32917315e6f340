package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/StephenEkwedike/FunRobin/internal/domain/enum"
	"github.com/StephenEkwedike/FunRobin/pkg/utils"
)

func proGatedRouter(t *testing.T) (*gin.Engine, *utils.JWTManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	router := gin.New()
	router.POST("/gated",
		AuthMiddleware(jwtManager),
		RequirePlan(enum.PlanPro),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		},
	)
	return router, jwtManager
}

func doGated(t *testing.T, router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/gated", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGatedRouteWithoutToken(t *testing.T) {
	router, _ := proGatedRouter(t)

	w := doGated(t, router, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestGatedRouteWithGarbageToken(t *testing.T) {
	router, _ := proGatedRouter(t)

	w := doGated(t, router, "Bearer not-a-jwt")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestGatedRouteFreePlan(t *testing.T) {
	router, jwtManager := proGatedRouter(t)

	token, err := jwtManager.GenerateAccessToken(uuid.New(), "free@example.com", enum.PlanFree)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	// Signed in but on the free plan: 402, not 401 or 403
	w := doGated(t, router, "Bearer "+token)
	if w.Code != http.StatusPaymentRequired {
		t.Errorf("status = %d, want 402", w.Code)
	}
}

func TestGatedRouteProPlan(t *testing.T) {
	router, jwtManager := proGatedRouter(t)

	token, err := jwtManager.GenerateAccessToken(uuid.New(), "pro@example.com", enum.PlanPro)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	w := doGated(t, router, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 (body: %s)", w.Code, w.Body.String())
	}
}

func TestMalformedAuthorizationHeader(t *testing.T) {
	router, jwtManager := proGatedRouter(t)

	token, err := jwtManager.GenerateAccessToken(uuid.New(), "pro@example.com", enum.PlanPro)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	for _, header := range []string{token, "Basic " + token, "Bearer"} {
		w := doGated(t, router, header)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, w.Code)
		}
	}
}
