package middleware

import (
	"strings"

	deliverycontext "taskapi/internal/delivery/context"
	domainerrors "taskapi/internal/domain/errors"
	"taskapi/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer access token and stores the authenticated
// user's email on the request context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrInvalidToken
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrInvalidToken
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return err
		}

		email := claims.Email()
		if email == "" {
			return domainerrors.ErrInvalidToken
		}

		deliverycontext.SetUserEmail(c, email)

		return next(c)
	}
}
