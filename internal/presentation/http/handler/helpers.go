package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/StephenEkwedike/FunRobin/internal/domain/enum"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserEmail extracts the user email from the Gin context
func GetUserEmail(c *gin.Context) string {
	email, exists := c.Get("user_email")
	if !exists {
		return ""
	}
	return email.(string)
}

// GetUserPlan extracts the user's plan from the Gin context, defaulting to
// free when no authenticated user is present.
func GetUserPlan(c *gin.Context) enum.Plan {
	planVal, exists := c.Get("user_plan")
	if !exists {
		return enum.PlanFree
	}
	plan, ok := planVal.(enum.Plan)
	if !ok {
		return enum.PlanFree
	}
	return plan
}
