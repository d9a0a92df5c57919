// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReferralCode is a random unique token identifying a user as a referrer.
// A user owns at most one active code at a time; generating a new one
// replaces the old. The code is redeemable by other users until it expires.
type ReferralCode struct {
	UUID           uuid.UUID // The unique identifier for this code record.
	Code           string    // The random token itself, 32 hex characters (128 bits of entropy). Globally unique.
	ExpirationTime time.Time // Absolute UTC timestamp after which the code can no longer be redeemed.
	OwnerUUID      uuid.UUID // The user who owns this code. Back-reference only, ownership lives on the user side.
	CreatedAt      time.Time // Timestamp of when this code was generated.
}

// OwnerID returns the owner's UUID, satisfying service.OwnedResource so the
// ownership guard can check this code without reflection.
func (c *ReferralCode) OwnerID() uuid.UUID {
	return c.OwnerUUID
}

// ExpiredAt reports whether the code is past its expiration time at the
// given instant.
func (c *ReferralCode) ExpiredAt(now time.Time) bool {
	return now.After(c.ExpirationTime)
}
