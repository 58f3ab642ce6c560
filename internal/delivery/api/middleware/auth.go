package middleware

import (
	"strings"

	"nutria/internal/delivery/api/response"
	deliverycontext "nutria/internal/delivery/context"
	domainerrors "nutria/internal/domain/errors"
	"nutria/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware validates bearer access tokens issued for the API.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid token and stores the token subject.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, domainerrors.ErrTokenInvalid.ErrorCode(), "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, domainerrors.ErrTokenInvalid.ErrorCode(), "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil || claims.UserID == 0 {
			return response.AppErrorResponse(c, domainerrors.ErrTokenInvalid)
		}

		deliverycontext.SetUserID(c, claims.UserID)

		return next(c)
	}
}

// GetUserID returns the authenticated user id, if any.
func GetUserID(c echo.Context) (uint, bool) {
	return deliverycontext.GetUserID(c)
}
