package request

// UpdateSettingsRequest represents a partial settings update. Absent fields
// keep their current values.
type UpdateSettingsRequest struct {
	Theme              *string `json:"theme" binding:"omitempty,oneof=light dark"`
	ShowAnimations     *bool   `json:"show_animations"`
	ShowConfetti       *bool   `json:"show_confetti"`
	DefaultQuantity    *int    `json:"default_quantity" binding:"omitempty,gt=0"`
	DefaultPriceType   *string `json:"default_price_type" binding:"omitempty,oneof=limit market"`
	EmailNotifications *bool   `json:"email_notifications"`
	HotOptionAlerts    *bool   `json:"hot_option_alerts"`
	LeaderboardAlerts  *bool   `json:"leaderboard_alerts"`
	MarketingEmails    *bool   `json:"marketing_emails"`
}
