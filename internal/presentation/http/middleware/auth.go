package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/StephenEkwedike/FunRobin/internal/domain/enum"
	"github.com/StephenEkwedike/FunRobin/internal/presentation/http/dto/response"
	"github.com/StephenEkwedike/FunRobin/pkg/utils"
)

// AuthMiddleware creates a JWT authentication middleware
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		tokenString := parts[1]

		// Validate the token
		claims, err := jwtManager.ValidateAccessToken(tokenString)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		// Set user info in context
		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_plan", claims.Plan)

		c.Next()
	}
}

// OptionalAuthMiddleware tries to authenticate but doesn't fail if no token is provided
func OptionalAuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.Next()
			return
		}

		tokenString := parts[1]
		claims, err := jwtManager.ValidateAccessToken(tokenString)
		if err != nil {
			c.Next()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_plan", claims.Plan)

		c.Next()
	}
}

// RequirePlan gates a route on the user's subscription plan. An
// unauthenticated request gets 401 from AuthMiddleware first; a signed-in
// user below the required plan gets 402 so the client routes to the upgrade
// flow rather than the sign-in page.
func RequirePlan(plan enum.Plan) gin.HandlerFunc {
	return func(c *gin.Context) {
		userPlan, exists := c.Get("user_plan")
		if !exists {
			response.Unauthorized(c, "Not authenticated")
			c.Abort()
			return
		}

		current, ok := userPlan.(enum.Plan)
		if !ok {
			response.Unauthorized(c, "Not authenticated")
			c.Abort()
			return
		}

		if plan == enum.PlanPro && !current.IsPro() {
			response.UpgradeRequired(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
