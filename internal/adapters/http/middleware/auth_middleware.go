package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ayushbite/LoanAppBackend/internal/adapters/persistence/repositories"
	"github.com/ayushbite/LoanAppBackend/internal/config"
	"github.com/ayushbite/LoanAppBackend/internal/core/domain"
	"github.com/ayushbite/LoanAppBackend/internal/pkg/response"
	"github.com/ayushbite/LoanAppBackend/internal/pkg/token"
)

// Protected creates the authentication middleware. It verifies the identity
// token from the Authorization header and resolves the referenced user
// against the credential store; a token whose user no longer exists is
// rejected. The chain re-runs fully on every request — nothing is cached.
func Protected(cfg *config.Config, users repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Get("Authorization"))
		if raw == "" {
			return response.Unauthorized(c, "Authorization token required")
		}

		// The Bearer prefix is optional and normalized here, nowhere else.
		accessToken := strings.TrimSpace(strings.TrimPrefix(raw, "Bearer "))
		if accessToken == "" {
			return response.Unauthorized(c, "Authorization token required")
		}

		claims, err := token.Validate(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == token.ErrTokenExpired {
				return response.Unauthorized(c, "Token expired")
			}
			return response.Unauthorized(c, "Invalid token")
		}

		user, err := users.GetByID(c.Context(), claims.UserID)
		if err != nil {
			return response.Unauthorized(c, "Invalid token")
		}

		c.Locals("userID", user.ID)
		c.Locals("email", user.Email)
		c.Locals("role", user.Role)

		return c.Next()
	}
}

// RequireRole creates role-based authorization middleware. It must run
// after Protected.
func RequireRole(allowedRoles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		for _, allowed := range allowedRoles {
			if domain.Role(role) == allowed {
				return c.Next()
			}
		}

		return response.Forbidden(c, "You don't have permission to access this resource")
	}
}

// AdminOnly middleware allows only the admin role
func AdminOnly() fiber.Handler {
	return RequireRole(domain.RoleAdmin)
}
