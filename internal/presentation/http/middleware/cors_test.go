package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/StephenEkwedike/FunRobin/internal/config"
)

func corsTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(CORSMiddleware(&config.CORSConfig{}))
	router.GET("/api/autofill/get", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	router.GET("/api/v1/options", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestCodeRedeemAllowsForeignOrigin(t *testing.T) {
	router := corsTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/autofill/get?code=ABCD1234", nil)
	req.Header.Set("Origin", "https://robinhood.com")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("redeem from brokerage origin status = %d, want 200", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "" {
		t.Errorf("Access-Control-Allow-Credentials = %q, want unset", got)
	}
}

func TestCodeRedeemPreflightAllowed(t *testing.T) {
	router := corsTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/autofill/get", nil)
	req.Header.Set("Origin", "https://robinhood.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d, want 204", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestAllowlistStillGuardsOtherRoutes(t *testing.T) {
	router := corsTestRouter()

	// A foreign origin stays blocked outside the redemption path
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/options", nil)
	req.Header.Set("Origin", "https://robinhood.com")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("foreign origin on options status = %d, want 403", w.Code)
	}

	// The default dev origin passes with credentials allowed
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/options", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("dev origin on options status = %d, want 200", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Access-Control-Allow-Origin = %q, want http://localhost:3000", got)
	}
}
