package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"referral/config"
	"referral/internal/domain/entity"
	domainerrors "referral/internal/domain/errors"
	"referral/internal/domain/repository"
	mockRepo "referral/internal/mocks/repository"
	"referral/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// referralServiceFixtures holds all test dependencies for referral service tests.
type referralServiceFixtures struct {
	service   usecase.ReferralUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	codeRepo  *mockRepo.MockReferralCodeRepository
}

func createTestReferralService(t *testing.T) referralServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	codeRepo := mockRepo.NewMockReferralCodeRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Referral: &config.ReferralConfig{
			CodeValidity:        30 * 24 * time.Hour,
			MaxGenerateAttempts: 3,
		},
	}

	service := NewReferralService(ReferralServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		CodeRepo:  codeRepo,
		Config:    cfg,
		Logger:    logger,
	})

	return referralServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
		codeRepo:  codeRepo,
	}
}

func TestReferralService_Generate_Success(t *testing.T) {
	fx := createTestReferralService(t)

	ctx := context.Background()
	ownerUUID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFactory.EXPECT().ReferralCodeRepo().Return(fx.codeRepo)

			fx.codeRepo.EXPECT().DeleteByOwner(ctx, ownerUUID).Return(nil)
			fx.codeRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.ReferralCode")).
				Return(nil)

			return fn(mockFactory)
		})

	before := time.Now()
	code, err := fx.service.Generate(ctx, ownerUUID)
	require.NoError(t, err)
	require.NotNil(t, code)

	assert.Len(t, code.Code, 32)
	assert.Equal(t, ownerUUID, code.OwnerUUID)

	// Expiry sits one validity window past creation.
	expectedExpiry := before.Add(30 * 24 * time.Hour)
	assert.WithinDuration(t, expectedExpiry, code.ExpirationTime, 5*time.Second)
}

func TestReferralService_Generate_RetriesOnConflict(t *testing.T) {
	fx := createTestReferralService(t)

	ctx := context.Background()
	ownerUUID := uuid.New()

	calls := 0
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, _ func(repository.RepositoryFactory) error) error {
			calls++
			if calls == 1 {
				return repository.ErrCodeConflict
			}

			return nil
		})

	code, err := fx.service.Generate(ctx, ownerUUID)
	require.NoError(t, err)
	require.NotNil(t, code)
	assert.Equal(t, 2, calls)
}

func TestReferralService_Generate_ExhaustsAttempts(t *testing.T) {
	fx := createTestReferralService(t)

	ctx := context.Background()
	ownerUUID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrCodeConflict).
		Times(3)

	code, err := fx.service.Generate(ctx, ownerUUID)
	assert.Nil(t, code)
	assert.True(t, errors.Is(err, domainerrors.ErrCodeGenerationFailed))
}

func TestReferralService_Generate_CodesAreUnique(t *testing.T) {
	fx := createTestReferralService(t)

	ctx := context.Background()
	ownerUUID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(nil)

	first, err := fx.service.Generate(ctx, ownerUUID)
	require.NoError(t, err)

	second, err := fx.service.Generate(ctx, ownerUUID)
	require.NoError(t, err)

	assert.NotEqual(t, first.Code, second.Code)
}

func TestReferralService_FindCode(t *testing.T) {
	fx := createTestReferralService(t)

	ctx := context.Background()
	stored := &entity.ReferralCode{
		UUID:      uuid.New(),
		Code:      "c0ffee00c0ffee00c0ffee00c0ffee00",
		OwnerUUID: uuid.New(),
	}

	fx.codeRepo.EXPECT().FindByCode(ctx, stored.Code).Return(stored, nil)

	found, err := fx.service.FindCode(ctx, stored.Code)
	require.NoError(t, err)
	assert.Equal(t, stored, found)
}

func TestReferralService_FindCode_NotFound(t *testing.T) {
	fx := createTestReferralService(t)

	ctx := context.Background()

	fx.codeRepo.EXPECT().FindByCode(ctx, "missing").Return(nil, repository.ErrCodeNotFound)

	found, err := fx.service.FindCode(ctx, "missing")
	assert.Nil(t, found)
	assert.True(t, errors.Is(err, domainerrors.ErrCodeNotFound))
}

func TestReferralService_GetByEmail(t *testing.T) {
	fx := createTestReferralService(t)

	ctx := context.Background()
	user := &entity.User{UUID: uuid.New(), Email: "owner@example.com"}
	stored := &entity.ReferralCode{
		UUID:      uuid.New(),
		Code:      "c0ffee00c0ffee00c0ffee00c0ffee00",
		OwnerUUID: user.UUID,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.codeRepo.EXPECT().FindByOwner(ctx, user.UUID).Return(stored, nil)

	found, err := fx.service.GetByEmail(ctx, user.Email)
	require.NoError(t, err)
	assert.Equal(t, stored, found)
}

func TestReferralService_GetByEmail_UnknownUser(t *testing.T) {
	fx := createTestReferralService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "missing@example.com").Return(nil, repository.ErrUserNotFound)

	found, err := fx.service.GetByEmail(ctx, "missing@example.com")
	assert.Nil(t, found)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestReferralService_GetByEmail_NoCode(t *testing.T) {
	fx := createTestReferralService(t)

	ctx := context.Background()
	user := &entity.User{UUID: uuid.New(), Email: "owner@example.com"}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.codeRepo.EXPECT().FindByOwner(ctx, user.UUID).Return(nil, repository.ErrCodeNotFound)

	found, err := fx.service.GetByEmail(ctx, user.Email)
	assert.Nil(t, found)
	assert.True(t, errors.Is(err, domainerrors.ErrCodeNotFound))
}

func TestReferralService_Revoke(t *testing.T) {
	fx := createTestReferralService(t)

	ctx := context.Background()

	fx.codeRepo.EXPECT().DeleteByCode(ctx, "c0ffee").Return(nil)

	assert.NoError(t, fx.service.Revoke(ctx, "c0ffee"))
}

func TestReferralService_Revoke_NotFound(t *testing.T) {
	fx := createTestReferralService(t)

	ctx := context.Background()

	fx.codeRepo.EXPECT().DeleteByCode(ctx, "missing").Return(repository.ErrCodeNotFound)

	err := fx.service.Revoke(ctx, "missing")
	assert.True(t, errors.Is(err, domainerrors.ErrCodeNotFound))
}

func TestReferralService_ReferralsOf(t *testing.T) {
	fx := createTestReferralService(t)

	ctx := context.Background()
	referrer := &entity.User{UUID: uuid.New(), Email: "referrer@example.com"}
	referrals := []*entity.User{
		{UUID: uuid.New(), Email: "first@example.com"},
		{UUID: uuid.New(), Email: "second@example.com"},
	}

	fx.userRepo.EXPECT().FindByUUID(ctx, referrer.UUID).Return(referrer, nil)
	fx.userRepo.EXPECT().FindReferrals(ctx, referrer.UUID).Return(referrals, nil)

	found, err := fx.service.ReferralsOf(ctx, referrer.UUID)
	require.NoError(t, err)
	assert.Equal(t, referrals, found)
}

func TestReferralService_ReferralsOf_UnknownUser(t *testing.T) {
	fx := createTestReferralService(t)

	ctx := context.Background()
	missing := uuid.New()

	fx.userRepo.EXPECT().FindByUUID(ctx, missing).Return(nil, repository.ErrUserNotFound)

	found, err := fx.service.ReferralsOf(ctx, missing)
	assert.Nil(t, found)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
