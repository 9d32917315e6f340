package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/StephenEkwedike/FunRobin/internal/application/service"
	"github.com/StephenEkwedike/FunRobin/internal/presentation/http/dto/request"
	"github.com/StephenEkwedike/FunRobin/internal/presentation/http/dto/response"
)

// SettingsHandler handles user settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings returns the authenticated user's settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	settings, err := h.settingsService.Get(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved", settings)
}

// UpdateSettings applies partial changes to the authenticated user's settings
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.Update(c.Request.Context(), *userID, service.UpdateSettingsInput{
		Theme:              req.Theme,
		ShowAnimations:     req.ShowAnimations,
		ShowConfetti:       req.ShowConfetti,
		DefaultQuantity:    req.DefaultQuantity,
		DefaultPriceType:   req.DefaultPriceType,
		EmailNotifications: req.EmailNotifications,
		HotOptionAlerts:    req.HotOptionAlerts,
		LeaderboardAlerts:  req.LeaderboardAlerts,
		MarketingEmails:    req.MarketingEmails,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated", settings)
}
