// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "referral/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// echoValidator wraps a validator instance so Echo's c.Validate works on
// request DTOs carrying `validate` tags.
type echoValidator struct {
	validate *validator.Validate
}

// New creates the Echo validator.
func New() *echoValidator {
	return &echoValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Failures surface as the shared
// validation error so the error handler renders a consistent 400.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	return nil
}
