// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"referral/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new user.
type SignupInput struct {
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// SignupOutput returns the newly created user and their first bearer token.
type SignupOutput struct {
	User        *entity.User
	AccessToken string
}

// LoginOutput returns the freshly issued bearer token.
type LoginOutput struct {
	AccessToken string
}

// UserUsecase defines the interface for credential handling and token issuance.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Signup registers a new user and issues a token bound to their email.
	// A duplicate email fails with ErrEmailAlreadyExists.
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)

	// Login verifies the credentials and issues a fresh token.
	// An unknown email fails with ErrUserNotFound, a wrong password with
	// ErrInvalidCredentials.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
