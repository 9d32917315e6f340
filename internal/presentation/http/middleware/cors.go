package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/StephenEkwedike/FunRobin/internal/config"
)

// codeRedeemPath is exempt from the origin allowlist: the browser extension
// fetches it from whatever brokerage page it is running on, so no allowlist
// can name the caller's origin ahead of time.
const codeRedeemPath = "/api/autofill/get"

// CORSMiddleware creates the CORS policy for the API. Regular routes get the
// configured allowlist with credentials. The code redemption path allows any
// origin with credentials omitted; the one-time code is the only credential
// that request carries.
func CORSMiddleware(cfg *config.CORSConfig) gin.HandlerFunc {
	allowlist := cors.New(allowlistConfig(cfg))
	redeem := cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})

	return func(c *gin.Context) {
		if c.Request.URL.Path == codeRedeemPath {
			redeem(c)
			return
		}
		allowlist(c)
	}
}

func allowlistConfig(cfg *config.CORSConfig) cors.Config {
	corsConfig := cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     cfg.AllowedMethods,
		AllowHeaders:     cfg.AllowedHeaders,
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	// If no origins are configured, allow common development origins
	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000",
			"http://localhost:3001",
			"http://127.0.0.1:3000",
		}
	}

	// If no methods are configured, use defaults
	if len(corsConfig.AllowMethods) == 0 {
		corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	}

	// If no headers are configured, use defaults
	if len(corsConfig.AllowHeaders) == 0 {
		corsConfig.AllowHeaders = []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-Request-ID",
			"Origin",
		}
	}

	return corsConfig
}
