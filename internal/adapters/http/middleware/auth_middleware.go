package middleware

import (
	"strings"

	"tendertrack/internal/config"
	"tendertrack/internal/core/authz"
	"tendertrack/internal/core/domain"
	"tendertrack/internal/core/workflow"
	"tendertrack/internal/pkg/jwt"
	"tendertrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware creates authentication middleware
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var accessToken string

		// 1. Try to get token from cookie first
		accessToken = c.Cookies("access_token")

		// 2. If not in cookie, try Authorization header
		if accessToken == "" {
			authHeader := c.Get("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				accessToken = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		// 3. No token found
		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		// 4. Validate token
		claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		// 5. Set user info in context
		c.Locals("userID", claims.UserID)
		c.Locals("username", claims.Username)
		c.Locals("role", claims.Role)
		c.Locals("departmentID", claims.DepartmentID)

		return c.Next()
	}
}

// Require creates authorization middleware gating one operation. All
// non-workflow role checks go through this single gate.
func Require(op authz.Operation) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		if !authz.Allowed(domain.Role(role), op) {
			return response.Forbidden(c, "You don't have permission to access this resource")
		}

		return c.Next()
	}
}

// ActorFromContext builds the workflow actor from request locals
func ActorFromContext(c *fiber.Ctx) workflow.Actor {
	actor := workflow.Actor{}
	if userID, ok := c.Locals("userID").(uint); ok {
		actor.UserID = userID
	}
	if role, ok := c.Locals("role").(string); ok {
		actor.Role = domain.Role(role)
	}
	if deptID, ok := c.Locals("departmentID").(*uint); ok {
		actor.DepartmentID = deptID
	}
	return actor
}
