// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system. A user authenticates with
// email/password and may point at another user as its referrer, forming a
// self-referential graph: one optional referrer, any number of referrals.
type User struct {
	UUID         uuid.UUID  // The unique identifier for the user, generated at creation and immutable.
	Email        string     // The user's login identity. Unique across all users.
	PasswordHash string     // The bcrypt hash of the user's password. Plaintext is never stored.
	ReferrerUUID *uuid.UUID // The user who referred this one, nil when the user was not referred.
	Referrals    []*User    // Users whose ReferrerUUID points at this user. Populated on demand.
	CreatedAt    time.Time  // Timestamp of when this user account was created.
	UpdatedAt    time.Time  // Timestamp of the last modification to this user's data.
}
