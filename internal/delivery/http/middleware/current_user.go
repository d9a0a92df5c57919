package middleware

import (
	"referral/internal/domain/entity"
	domainerrors "referral/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthenticatedUser returns the user resolved by Authenticate. Calling it on
// a route that skipped the middleware is a programming error and reports as
// an invalid token.
func AuthenticatedUser(c echo.Context) (*entity.User, error) {
	user, ok := c.Get(userContextKey).(*entity.User)
	if !ok || user == nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "no authenticated user on request")
	}

	return user, nil
}
