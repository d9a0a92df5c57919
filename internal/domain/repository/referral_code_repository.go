// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"referral/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for referral code persistence.
// This allows the application layer to handle specific outcomes without depending on database-specific errors.
var (
	// ErrCodeNotFound is returned when a referral code is not found.
	ErrCodeNotFound = errors.New("referral code not found")
	// ErrCodeConflict is returned when creating a code violates a uniqueness
	// constraint. The lifecycle retries generation on this error.
	ErrCodeConflict = errors.New("referral code conflicts with an existing one")
)

// ReferralCodeRepository defines the standard operations for referral code persistence.
type ReferralCodeRepository interface {
	// Create persists a new referral code.
	// Returns ErrCodeConflict on a uniqueness violation so the caller can retry.
	Create(ctx context.Context, code *entity.ReferralCode) error

	// FindByCode retrieves a referral code by its token value.
	FindByCode(ctx context.Context, code string) (*entity.ReferralCode, error)

	// FindByOwner retrieves the active referral code owned by the given user.
	FindByOwner(ctx context.Context, ownerUUID uuid.UUID) (*entity.ReferralCode, error)

	// DeleteByCode removes the code identified by its token value.
	// Returns ErrCodeNotFound when no such code exists.
	DeleteByCode(ctx context.Context, code string) error

	// DeleteByOwner removes any code owned by the given user.
	// Deleting when no code exists is not an error.
	DeleteByOwner(ctx context.Context, ownerUUID uuid.UUID) error
}
