package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/StephenEkwedike/FunRobin/internal/config"
	"github.com/StephenEkwedike/FunRobin/internal/domain/entity"
	"github.com/StephenEkwedike/FunRobin/internal/domain/enum"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Account entities
		&entity.User{},
		&entity.PasswordResetToken{},
		&entity.UserSettings{},

		// Grid and trading entities
		&entity.OptionListing{},
		&entity.Trade{},

		// Autofill code exchange
		&entity.AutofillRecord{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the option grid when it is empty. The listings are
// mock data; the product never shows real market quotes.
func SeedDefaultData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.OptionListing{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count option listings: %w", err)
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding option grid...")

	listings := []entity.OptionListing{
		{Symbol: "TSLA", Company: "Tesla Inc.", Type: enum.OptionTypePut, Strike: 435, CurrentPrice: 433.73, Premium: 12.25, Expiry: "2025-10-31", Multiplier: 22, Volume: 18423, IsHot: true},
		{Symbol: "TSLA", Company: "Tesla Inc.", Type: enum.OptionTypeCall, Strike: 450, CurrentPrice: 433.73, Premium: 8.4, Expiry: "2025-11-07", Multiplier: 31, Volume: 22110, IsHot: true},
		{Symbol: "NVDA", Company: "NVIDIA Corp.", Type: enum.OptionTypeCall, Strike: 190, CurrentPrice: 186.52, Premium: 5.1, Expiry: "2025-10-31", Multiplier: 27, Volume: 40211, IsHot: true},
		{Symbol: "NVDA", Company: "NVIDIA Corp.", Type: enum.OptionTypePut, Strike: 180, CurrentPrice: 186.52, Premium: 3.95, Expiry: "2025-11-14", Multiplier: 18, Volume: 15877, IsHot: false},
		{Symbol: "AAPL", Company: "Apple Inc.", Type: enum.OptionTypeCall, Strike: 240, CurrentPrice: 236.18, Premium: 4.2, Expiry: "2025-11-21", Multiplier: 12, Volume: 9932, IsHot: false},
		{Symbol: "AAPL", Company: "Apple Inc.", Type: enum.OptionTypePut, Strike: 230, CurrentPrice: 236.18, Premium: 3.1, Expiry: "2025-10-31", Multiplier: 9, Volume: 7215, IsHot: false},
		{Symbol: "AMZN", Company: "Amazon.com Inc.", Type: enum.OptionTypeCall, Strike: 225, CurrentPrice: 219.4, Premium: 6.05, Expiry: "2025-11-07", Multiplier: 15, Volume: 12050, IsHot: false},
		{Symbol: "META", Company: "Meta Platforms Inc.", Type: enum.OptionTypePut, Strike: 700, CurrentPrice: 712.33, Premium: 19.8, Expiry: "2025-11-14", Multiplier: 24, Volume: 8414, IsHot: true},
		{Symbol: "AMD", Company: "Advanced Micro Devices", Type: enum.OptionTypeCall, Strike: 175, CurrentPrice: 168.9, Premium: 4.75, Expiry: "2025-10-31", Multiplier: 35, Volume: 31540, IsHot: true},
		{Symbol: "SPY", Company: "SPDR S&P 500 ETF", Type: enum.OptionTypePut, Strike: 660, CurrentPrice: 664.12, Premium: 7.3, Expiry: "2025-11-07", Multiplier: 8, Volume: 52314, IsHot: false},
		{Symbol: "GME", Company: "GameStop Corp.", Type: enum.OptionTypeCall, Strike: 30, CurrentPrice: 26.47, Premium: 1.85, Expiry: "2025-11-21", Multiplier: 48, Volume: 19822, IsHot: true},
		{Symbol: "COIN", Company: "Coinbase Global Inc.", Type: enum.OptionTypeCall, Strike: 320, CurrentPrice: 301.55, Premium: 14.6, Expiry: "2025-11-14", Multiplier: 29, Volume: 6120, IsHot: false},
	}

	if err := db.Create(&listings).Error; err != nil {
		return fmt.Errorf("failed to seed option listings: %w", err)
	}

	log.Printf("Seeded %d option listings", len(listings))
	return nil
}
