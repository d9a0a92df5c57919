package service

import (
	"testing"
	"time"

	"referral/internal/domain/entity"
	domainerrors "referral/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestVerifyOwnership(t *testing.T) {
	owner := uuid.New()
	code := &entity.ReferralCode{
		UUID:           uuid.New(),
		Code:           "c0ffee00c0ffee00c0ffee00c0ffee00",
		ExpirationTime: time.Now().Add(time.Hour),
		OwnerUUID:      owner,
	}

	assert.NoError(t, VerifyOwnership(code, owner))

	err := VerifyOwnership(code, uuid.New())
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
