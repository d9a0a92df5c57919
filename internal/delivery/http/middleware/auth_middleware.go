// Package middleware contains the HTTP middlewares for the delivery layer.
package middleware

import (
	"strings"

	domainerrors "referral/internal/domain/errors"
	"referral/internal/domain/repository"
	"referral/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// userContextKey is where Authenticate stores the resolved user entity.
const userContextKey = "user"

// AuthMiddleware provides middleware for bearer token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the bearer token and resolves the calling user.
// The full user entity lands on the request context so handlers never re-read
// identity from the token themselves.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return errors.Wrap(domainerrors.ErrInvalidToken, "authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return errors.Wrap(domainerrors.ErrInvalidToken, "invalid token format, must be Bearer token")
		}

		email, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return errors.Wrap(err, "token verification failed")
		}

		user, err := m.userRepo.FindByEmail(c.Request().Context(), email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				// The token is valid but its subject no longer exists.
				return errors.Wrap(domainerrors.ErrUserNotFound, email)
			}

			return errors.Wrap(err, "failed to resolve authenticated user")
		}

		c.Set(userContextKey, user)

		return next(c)
	}
}
