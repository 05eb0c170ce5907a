package middleware

import (
	"strings"

	"nexus/internal/delivery/api/response"
	deliverycontext "nexus/internal/delivery/context"
	"nexus/internal/domain/entity"
	"nexus/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware authenticates bearer tokens issued by the identity service and checks roles.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token and stores the caller on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		deliverycontext.SetPrincipal(c, deliverycontext.Principal{
			UserID: claims.UserID,
			Roles:  entity.RolesFromStrings(claims.Roles),
		})

		return next(c)
	}
}

// RequireRole lets the request through when the caller has any of the roles.
// It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := deliverycontext.GetPrincipal(c)
			if !ok {
				return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
			}

			for _, role := range roles {
				if principal.Roles.Contains(role) {
					return next(c)
				}
			}

			return response.Forbidden(c, "FORBIDDEN", "Permission denied for this role")
		}
	}
}
