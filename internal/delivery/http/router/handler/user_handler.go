// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"referral/internal/delivery/http/response"
	"referral/internal/domain/entity"
	"referral/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// signupRequest is the JSON body for POST /users/signup.
type signupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// loginRequest is the form body for POST /users/login. The field names match
// the OAuth2 password grant convention, where username carries the email.
type loginRequest struct {
	Username string `form:"username" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// userResponse is the public shape of a user.
type userResponse struct {
	UUID         uuid.UUID  `json:"uuid"`
	Email        string     `json:"email"`
	ReferrerUUID *uuid.UUID `json:"referrer_uuid"`
	CreatedAt    time.Time  `json:"created_at"`
}

// tokenResponse carries a freshly issued bearer token.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// signupResponse combines the created user with their first token.
type signupResponse struct {
	User userResponse `json:"user"`
	tokenResponse
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{
		UUID:         user.UUID,
		Email:        user.Email,
		ReferrerUUID: user.ReferrerUUID,
		CreatedAt:    user.CreatedAt,
	}
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: logger}
}

// Signup handles the user registration request.
func (h *UserHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Signup(c.Request().Context(), &usecase.SignupInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	// The password hash never leaves the service.
	return response.Success(c, http.StatusOK, signupResponse{
		User: toUserResponse(output.User),
		tokenResponse: tokenResponse{
			AccessToken: output.AccessToken,
			TokenType:   "bearer",
		},
	}, "User registered successfully")
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tokenResponse{
		AccessToken: output.AccessToken,
		TokenType:   "bearer",
	}, "Login successful")
}
