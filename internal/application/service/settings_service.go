package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/StephenEkwedike/FunRobin/internal/domain/entity"
	"github.com/StephenEkwedike/FunRobin/internal/domain/repository"
)

// SettingsService manages per-user application settings
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// Get returns the user's settings, creating defaults on first access
func (s *SettingsService) Get(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	settings, err := s.settingsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if settings != nil {
		return settings, nil
	}

	settings = &entity.UserSettings{
		UserID:             userID,
		Theme:              "light",
		ShowAnimations:     true,
		ShowConfetti:       true,
		DefaultQuantity:    1,
		DefaultPriceType:   "limit",
		EmailNotifications: true,
		HotOptionAlerts:    true,
	}
	if err := s.settingsRepo.Create(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// UpdateSettingsInput carries the updatable settings fields; nil means leave
// the current value alone.
type UpdateSettingsInput struct {
	Theme              *string `json:"theme"`
	ShowAnimations     *bool   `json:"show_animations"`
	ShowConfetti       *bool   `json:"show_confetti"`
	DefaultQuantity    *int    `json:"default_quantity"`
	DefaultPriceType   *string `json:"default_price_type"`
	EmailNotifications *bool   `json:"email_notifications"`
	HotOptionAlerts    *bool   `json:"hot_option_alerts"`
	LeaderboardAlerts  *bool   `json:"leaderboard_alerts"`
	MarketingEmails    *bool   `json:"marketing_emails"`
}

// Update applies partial changes to the user's settings
func (s *SettingsService) Update(ctx context.Context, userID uuid.UUID, input UpdateSettingsInput) (*entity.UserSettings, error) {
	settings, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Theme != nil {
		settings.Theme = *input.Theme
	}
	if input.ShowAnimations != nil {
		settings.ShowAnimations = *input.ShowAnimations
	}
	if input.ShowConfetti != nil {
		settings.ShowConfetti = *input.ShowConfetti
	}
	if input.DefaultQuantity != nil && *input.DefaultQuantity > 0 {
		settings.DefaultQuantity = *input.DefaultQuantity
	}
	if input.DefaultPriceType != nil {
		settings.DefaultPriceType = *input.DefaultPriceType
	}
	if input.EmailNotifications != nil {
		settings.EmailNotifications = *input.EmailNotifications
	}
	if input.HotOptionAlerts != nil {
		settings.HotOptionAlerts = *input.HotOptionAlerts
	}
	if input.LeaderboardAlerts != nil {
		settings.LeaderboardAlerts = *input.LeaderboardAlerts
	}
	if input.MarketingEmails != nil {
		settings.MarketingEmails = *input.MarketingEmails
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
