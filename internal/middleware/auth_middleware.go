package middleware

import (
	"strings"

	"quizforge/internal/domain"
	"quizforge/internal/service"

	"github.com/gofiber/fiber/v2"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	IdentityKey         = "identity" // Key for storing domain.Identity in fiber.Ctx locals
)

// Protected requires a valid JWT and stores the caller's identity in
// the request locals under IdentityKey.
func Protected(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(AuthorizationHeader)
		if authHeader == "" {
			return domain.NewUnauthorizedError("Authorization header is missing")
		}

		if !strings.HasPrefix(authHeader, BearerSchema) {
			return domain.NewUnauthorizedError("Authorization scheme is not Bearer")
		}

		tokenString := strings.TrimPrefix(authHeader, BearerSchema)
		if tokenString == "" {
			return domain.NewUnauthorizedError("Token is empty")
		}

		claims, err := authService.ValidateJWT(c.Context(), tokenString)
		if err != nil {
			return domain.NewUnauthorizedError("Invalid or expired token")
		}

		role, err := domain.ParseRole(claims.Role)
		if err != nil {
			return domain.NewUnauthorizedError("Token carries an unknown role")
		}

		c.Locals(IdentityKey, domain.Identity{UserID: claims.UserID, Role: role})
		return c.Next()
	}
}

// RequireRole rejects authenticated callers whose role does not match.
// It must run after Protected.
func RequireRole(role domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := c.Locals(IdentityKey).(domain.Identity)
		if !ok {
			return domain.NewUnauthorizedError("Authentication required")
		}
		if identity.Role != role {
			return domain.NewForbiddenError("Insufficient role for this operation")
		}
		return c.Next()
	}
}

// IdentityFromCtx returns the authenticated identity set by Protected.
func IdentityFromCtx(c *fiber.Ctx) (domain.Identity, bool) {
	identity, ok := c.Locals(IdentityKey).(domain.Identity)
	return identity, ok
}
