package usecase

import (
	"context"

	"referral/internal/domain/entity"

	"github.com/google/uuid"
)

// ReferralUsecase covers the referral code lifecycle and the referrer/referral
// graph. It performs no authorization: ownership checks belong to the caller
// (see service.VerifyOwnership), which runs them before dispatching mutations.
type ReferralUsecase interface {
	// Generate replaces the owner's current code (if any) with a freshly
	// random one expiring after the configured validity window. Uniqueness
	// conflicts are retried up to a configured bound, after which the
	// operation fails with ErrCodeGenerationFailed.
	Generate(ctx context.Context, ownerUUID uuid.UUID) (*entity.ReferralCode, error)

	// FindCode loads a referral code by its token value.
	FindCode(ctx context.Context, code string) (*entity.ReferralCode, error)

	// GetByEmail loads the active referral code of the user with the given
	// email. Fails with ErrUserNotFound or ErrCodeNotFound.
	GetByEmail(ctx context.Context, email string) (*entity.ReferralCode, error)

	// Revoke deletes the code identified by its token value. The caller must
	// have verified ownership already.
	Revoke(ctx context.Context, code string) error

	// ValidateRedemption checks the business rules for redeeming a code:
	// the owner cannot redeem their own code, and expired codes are rejected.
	ValidateRedemption(code *entity.ReferralCode, userUUID uuid.UUID) error

	// Redeem attaches the user as a referral of the code's owner. Runs
	// ValidateRedemption again so deferred execution stays safe. A repeated
	// redemption overwrites the user's previous referrer.
	Redeem(ctx context.Context, code string, userUUID uuid.UUID) error

	// ReferralsOf returns every user referred by the given user, in stable
	// order. The slice is empty, never nil, when there are none.
	ReferralsOf(ctx context.Context, userUUID uuid.UUID) ([]*entity.User, error)
}
