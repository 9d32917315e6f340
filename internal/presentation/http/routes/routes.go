package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/StephenEkwedike/FunRobin/internal/config"
	"github.com/StephenEkwedike/FunRobin/internal/domain/enum"
	"github.com/StephenEkwedike/FunRobin/internal/presentation/http/handler"
	"github.com/StephenEkwedike/FunRobin/internal/presentation/http/middleware"
	"github.com/StephenEkwedike/FunRobin/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	Autofill    *handler.AutofillHandler
	Option      *handler.OptionHandler
	Trade       *handler.TradeHandler
	Leaderboard *handler.LeaderboardHandler
	Billing     *handler.BillingHandler
	Settings    *handler.SettingsHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// Autofill code exchange. These two paths are the contract with the web
	// app and the browser extension and are pinned outside the versioned API.
	registerAutofillRoutes(router, h, deps)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h, deps)
		registerPublicRoutes(v1, h, deps)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewKeyedRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.PerUserMiddleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAutofillRoutes(router *gin.Engine, h *Handlers, deps *Deps) {
	autofill := router.Group("/api/autofill")

	// Creation requires a signed-in pro user: 401 without a token, 402 on the
	// free plan.
	autofill.POST("/create",
		middleware.AuthMiddleware(deps.JWTManager),
		middleware.RequirePlan(enum.PlanPro),
		h.Autofill.Create,
	)

	// Redemption is anonymous; the code is the credential. Per-IP limiting
	// keeps code guessing impractical.
	redeemLimiter := middleware.NewKeyedRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(deps.Cfg.Autofill.RedeemPerMin) / 60,
		BurstSize:         deps.Cfg.Autofill.RedeemPerMin,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
	autofill.GET("/get", redeemLimiter.PerIPMiddleware(), h.Autofill.Get)
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleAuth)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerPublicRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	// The grid is browsable signed out; a token upgrades the view via the
	// plan claim
	v1.GET("/options", middleware.OptionalAuthMiddleware(deps.JWTManager), h.Option.List)

	// Leaderboard is public
	v1.GET("/leaderboard", h.Leaderboard.Get)

	// Stripe calls this; authentication is the webhook signature
	v1.POST("/billing/webhook", h.Billing.Webhook)
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Settings
	protected.GET("/settings", h.Settings.GetSettings)
	protected.PUT("/settings", h.Settings.UpdateSettings)

	// Live quotes (pro)
	protected.GET("/options/live", middleware.RequirePlan(enum.PlanPro), h.Option.LiveQuotes)

	// Trades
	registerTradeRoutes(protected, h)

	// Billing
	protected.POST("/billing/checkout", h.Billing.CreateCheckout)
}

func registerTradeRoutes(protected *gin.RouterGroup, h *Handlers) {
	trades := protected.Group("/trades")
	{
		trades.GET("", h.Trade.List)
		trades.POST("", h.Trade.Open)
		trades.GET("/:id", h.Trade.Get)
		trades.POST("/:id/close", h.Trade.Close)
	}
}
