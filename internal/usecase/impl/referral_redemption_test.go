package impl

import (
	"context"
	"testing"
	"time"

	"referral/internal/domain/entity"
	domainerrors "referral/internal/domain/errors"
	"referral/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeCode(owner uuid.UUID) *entity.ReferralCode {
	return &entity.ReferralCode{
		UUID:           uuid.New(),
		Code:           "c0ffee00c0ffee00c0ffee00c0ffee00",
		ExpirationTime: time.Now().Add(24 * time.Hour),
		OwnerUUID:      owner,
	}
}

func TestReferralService_ValidateRedemption(t *testing.T) {
	fx := createTestReferralService(t)

	owner := uuid.New()
	redeemer := uuid.New()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, fx.service.ValidateRedemption(activeCode(owner), redeemer))
	})

	t.Run("self referral", func(t *testing.T) {
		err := fx.service.ValidateRedemption(activeCode(owner), owner)
		assert.True(t, errors.Is(err, domainerrors.ErrSelfReferral))
	})

	t.Run("expired", func(t *testing.T) {
		code := activeCode(owner)
		code.ExpirationTime = time.Now().Add(-time.Minute)

		err := fx.service.ValidateRedemption(code, redeemer)
		assert.True(t, errors.Is(err, domainerrors.ErrCodeExpired))
	})

	t.Run("expiry boundary is exclusive", func(t *testing.T) {
		code := activeCode(owner)
		code.ExpirationTime = time.Now().Add(time.Second)

		assert.NoError(t, fx.service.ValidateRedemption(code, redeemer))
	})
}

func TestReferralService_Redeem_Success(t *testing.T) {
	fx := createTestReferralService(t)

	ctx := context.Background()
	redeemer := uuid.New()
	code := activeCode(uuid.New())

	fx.codeRepo.EXPECT().FindByCode(ctx, code.Code).Return(code, nil)
	fx.userRepo.EXPECT().UpdateReferrer(ctx, redeemer, code.OwnerUUID).Return(nil)

	require.NoError(t, fx.service.Redeem(ctx, code.Code, redeemer))
}

func TestReferralService_Redeem_CodeGone(t *testing.T) {
	fx := createTestReferralService(t)

	ctx := context.Background()

	fx.codeRepo.EXPECT().FindByCode(ctx, "missing").Return(nil, repository.ErrCodeNotFound)

	err := fx.service.Redeem(ctx, "missing", uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrCodeNotFound))
}

func TestReferralService_Redeem_SelfReferral(t *testing.T) {
	fx := createTestReferralService(t)

	ctx := context.Background()
	owner := uuid.New()
	code := activeCode(owner)

	fx.codeRepo.EXPECT().FindByCode(ctx, code.Code).Return(code, nil)

	err := fx.service.Redeem(ctx, code.Code, owner)
	assert.True(t, errors.Is(err, domainerrors.ErrSelfReferral))
}

func TestReferralService_Redeem_Expired(t *testing.T) {
	fx := createTestReferralService(t)

	ctx := context.Background()
	code := activeCode(uuid.New())
	code.ExpirationTime = time.Now().Add(-time.Hour)

	fx.codeRepo.EXPECT().FindByCode(ctx, code.Code).Return(code, nil)

	err := fx.service.Redeem(ctx, code.Code, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrCodeExpired))
}

func TestReferralService_Redeem_UserGone(t *testing.T) {
	fx := createTestReferralService(t)

	ctx := context.Background()
	redeemer := uuid.New()
	code := activeCode(uuid.New())

	fx.codeRepo.EXPECT().FindByCode(ctx, code.Code).Return(code, nil)
	fx.userRepo.EXPECT().UpdateReferrer(ctx, redeemer, code.OwnerUUID).Return(repository.ErrUserNotFound)

	err := fx.service.Redeem(ctx, code.Code, redeemer)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
