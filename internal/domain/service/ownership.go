package service

import (
	domainerrors "referral/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// OwnedResource is implemented by entities that record a single owning user.
// Using an interface method instead of a field-name lookup makes the owner
// reference a compile-time check rather than a runtime reflection failure.
type OwnedResource interface {
	OwnerID() uuid.UUID
}

// VerifyOwnership fails with ErrForbidden when the resource's recorded owner
// does not match the authenticated user. Callers run this before any
// owner-only mutation.
func VerifyOwnership(resource OwnedResource, owner uuid.UUID) error {
	if resource.OwnerID() != owner {
		return errors.Wrap(domainerrors.ErrForbidden, "resource is owned by another user")
	}

	return nil
}
