// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"referral/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByUUID retrieves a single user by their unique ID.
	FindByUUID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	// A duplicate email surfaces as domainerrors.ErrEmailAlreadyExists.
	Create(ctx context.Context, user *entity.User) error

	// UpdateReferrer sets the user's referrer reference.
	// Returns ErrUserNotFound when the user does not exist.
	UpdateReferrer(ctx context.Context, userUUID, referrerUUID uuid.UUID) error

	// FindReferrals retrieves all users whose referrer is the given user,
	// in stable creation order. Returns an empty slice when there are none.
	FindReferrals(ctx context.Context, referrerUUID uuid.UUID) ([]*entity.User, error)
}
