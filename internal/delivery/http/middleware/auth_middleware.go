package middleware

import (
	"slices"
	"strings"

	"foodlink/internal/delivery/http/response"
	"foodlink/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// ContextKeyOrganizationID is where Authenticate stores the caller's ID.
	ContextKeyOrganizationID = "organizationID"
	// ContextKeyRoles is where Authenticate stores the caller's roles.
	ContextKeyRoles = "roles"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the caller's
// identity on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}
		if claims.Type != "access" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Refresh tokens cannot be used for authentication")
		}

		c.Set(ContextKeyOrganizationID, claims.OrganizationID)
		c.Set(ContextKeyRoles, claims.Roles)

		return next(c)
	}
}

// RequireRole checks that the authenticated caller carries a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := c.Get(ContextKeyRoles).([]string)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if !slices.Contains(roles, requiredRole) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole+"' role")
			}

			return next(c)
		}
	}
}

// GetOrganizationID returns the authenticated organization's ID from the
// context, or false when the request was not authenticated.
func GetOrganizationID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextKeyOrganizationID).(uuid.UUID)

	return id, ok
}
