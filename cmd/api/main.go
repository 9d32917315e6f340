package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/StephenEkwedike/FunRobin/internal/application/service"
	"github.com/StephenEkwedike/FunRobin/internal/config"
	"github.com/StephenEkwedike/FunRobin/internal/infrastructure/database"
	"github.com/StephenEkwedike/FunRobin/internal/infrastructure/repository"
	"github.com/StephenEkwedike/FunRobin/internal/presentation/http/handler"
	"github.com/StephenEkwedike/FunRobin/internal/presentation/http/routes"
	"github.com/StephenEkwedike/FunRobin/pkg/billing"
	"github.com/StephenEkwedike/FunRobin/pkg/email"
	"github.com/StephenEkwedike/FunRobin/pkg/oauth"
	"github.com/StephenEkwedike/FunRobin/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the option grid
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	autofillRepo := repository.NewAutofillRepository(db)
	optionRepo := repository.NewOptionRepository(db)
	tradeRepo := repository.NewTradeRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	passwordResetRepo := repository.NewPasswordResetTokenRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
		FrontendURL:  cfg.Email.FrontendURL,
	})

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Initialize Stripe service
	stripeService := billing.NewStripeService(billing.StripeConfig{
		SecretKey:     cfg.Stripe.SecretKey,
		WebhookSecret: cfg.Stripe.WebhookSecret,
		ProPriceID:    cfg.Stripe.ProPriceID,
		SiteURL:       cfg.App.SiteURL,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, passwordResetRepo, settingsRepo, jwtManager, emailService, googleOAuthService)
	autofillService := service.NewAutofillService(autofillRepo, cfg.Autofill.CodeTTL, cfg.Autofill.CodeLength)
	optionService := service.NewOptionService(optionRepo)
	tradeService := service.NewTradeService(tradeRepo)
	leaderboardService := service.NewLeaderboardService(tradeRepo)
	billingService := service.NewBillingService(userRepo, stripeService)
	settingsService := service.NewSettingsService(settingsRepo)

	// Start the expired-code sweep
	autofillService.StartSweep(context.Background(), cfg.Autofill.SweepInterval)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Autofill:    handler.NewAutofillHandler(autofillService),
		Option:      handler.NewOptionHandler(optionService),
		Trade:       handler.NewTradeHandler(tradeService),
		Leaderboard: handler.NewLeaderboardHandler(leaderboardService),
		Billing:     handler.NewBillingHandler(billingService),
		Settings:    handler.NewSettingsHandler(settingsService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
