package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/StephenEkwedike/FunRobin/internal/application/service"
	"github.com/StephenEkwedike/FunRobin/internal/presentation/http/dto/response"
)

// LeaderboardHandler handles leaderboard HTTP requests
type LeaderboardHandler struct {
	leaderboardService *service.LeaderboardService
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(leaderboardService *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// Get returns the ranked leaderboard for a window and metric
func (h *LeaderboardHandler) Get(c *gin.Context) {
	window := c.DefaultQuery("window", "all")
	metric := c.DefaultQuery("metric", "pnl")

	limit := 0
	if limitParam := c.Query("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil {
			response.BadRequest(c, "Invalid limit")
			return
		}
		limit = parsed
	}

	rows, err := h.leaderboardService.Leaderboard(c.Request.Context(), window, metric, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Leaderboard retrieved", gin.H{
		"window":  window,
		"metric":  metric,
		"entries": rows,
	})
}
