package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"time"

	"referral/config"
	"referral/internal/domain/entity"
	domainerrors "referral/internal/domain/errors"
	"referral/internal/domain/repository"
	"referral/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// referralCodeBytes is the number of random bytes per code; hex encoding
// yields a 32-character string.
const referralCodeBytes = 16

// referralService implements the ReferralUsecase interface.
type referralService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	codeRepo    repository.ReferralCodeRepository
	logger      *slog.Logger
	validity    time.Duration
	maxAttempts int
	now         func() time.Time
}

// ReferralServiceParams holds dependencies for referralService, injected by Fx.
type ReferralServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	CodeRepo  repository.ReferralCodeRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewReferralService is the constructor for referralService.
func NewReferralService(params ReferralServiceParams) usecase.ReferralUsecase {
	return &referralService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		codeRepo:    params.CodeRepo,
		logger:      params.Logger,
		validity:    params.Config.Referral.CodeValidity,
		maxAttempts: params.Config.Referral.MaxGenerateAttempts,
		now:         time.Now,
	}
}

// Generate creates a fresh referral code for the owner, replacing any
// previous one. Collisions on the random code are retried up to the
// configured bound.
func (srv *referralService) Generate(ctx context.Context, ownerUUID uuid.UUID) (*entity.ReferralCode, error) {
	var created *entity.ReferralCode

	for attempt := 1; attempt <= srv.maxAttempts; attempt++ {
		code, err := newCode()
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrCodeGenerationFailed, err.Error())
		}

		candidate := &entity.ReferralCode{
			Code:           code,
			ExpirationTime: srv.now().Add(srv.validity),
			OwnerUUID:      ownerUUID,
		}

		err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			// Replacing inside the same transaction keeps the
			// one-active-code-per-owner invariant without a gap.
			if err := factory.ReferralCodeRepo().DeleteByOwner(ctx, ownerUUID); err != nil {
				return err
			}

			return factory.ReferralCodeRepo().Create(ctx, candidate)
		})
		if err == nil {
			created = candidate

			break
		}

		if errors.Is(err, repository.ErrCodeConflict) {
			srv.logger.Warn("Referral code collision, retrying",
				slog.Int("attempt", attempt),
				slog.Any("ownerUUID", ownerUUID))

			continue
		}

		return nil, errors.Wrap(err, "failed to create referral code")
	}

	if created == nil {
		return nil, errors.Wrapf(domainerrors.ErrCodeGenerationFailed,
			"exhausted %d attempts", srv.maxAttempts)
	}

	srv.logger.Info("Referral code generated",
		slog.Any("ownerUUID", ownerUUID),
		slog.Time("expiresAt", created.ExpirationTime))

	return created, nil
}

// FindCode looks up a referral code by its value.
func (srv *referralService) FindCode(ctx context.Context, code string) (*entity.ReferralCode, error) {
	found, err := srv.codeRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrCodeNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCodeNotFound, code)
		}

		return nil, errors.Wrap(err, "failed to find referral code")
	}

	return found, nil
}

// GetByEmail returns the active referral code owned by the user with the
// given email address.
func (srv *referralService) GetByEmail(ctx context.Context, email string) (*entity.ReferralCode, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, email)
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	code, err := srv.codeRepo.FindByOwner(ctx, user.UUID)
	if err != nil {
		if errors.Is(err, repository.ErrCodeNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCodeNotFound, "no referral code for "+email)
		}

		return nil, errors.Wrap(err, "failed to find referral code by owner")
	}

	return code, nil
}

// Revoke deletes a referral code by its value.
func (srv *referralService) Revoke(ctx context.Context, code string) error {
	if err := srv.codeRepo.DeleteByCode(ctx, code); err != nil {
		if errors.Is(err, repository.ErrCodeNotFound) {
			return errors.Wrap(domainerrors.ErrCodeNotFound, code)
		}

		return errors.Wrap(err, "failed to delete referral code")
	}

	srv.logger.Info("Referral code revoked")

	return nil
}

// ValidateRedemption checks the business rules that gate a redemption
// without performing it: the code must not belong to the redeeming user and
// must not be expired.
func (srv *referralService) ValidateRedemption(code *entity.ReferralCode, userUUID uuid.UUID) error {
	if code.OwnerUUID == userUUID {
		return errors.Wrap(domainerrors.ErrSelfReferral, "own referral code")
	}

	if code.ExpiredAt(srv.now()) {
		return errors.Wrap(domainerrors.ErrCodeExpired, code.Code)
	}

	return nil
}

// Redeem records the code's owner as the user's referrer. The rules are
// re-checked here since redemption may run deferred, after the initial
// validation.
func (srv *referralService) Redeem(ctx context.Context, code string, userUUID uuid.UUID) error {
	found, err := srv.FindCode(ctx, code)
	if err != nil {
		return err
	}

	if err := srv.ValidateRedemption(found, userUUID); err != nil {
		return err
	}

	if err := srv.userRepo.UpdateReferrer(ctx, userUUID, found.OwnerUUID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, userUUID.String())
		}

		return errors.Wrap(err, "failed to update referrer")
	}

	srv.logger.Info("Referral code redeemed",
		slog.Any("userUUID", userUUID),
		slog.Any("referrerUUID", found.OwnerUUID))

	return nil
}

// ReferralsOf lists the users referred by the given user.
func (srv *referralService) ReferralsOf(ctx context.Context, userUUID uuid.UUID) ([]*entity.User, error) {
	if _, err := srv.userRepo.FindByUUID(ctx, userUUID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, userUUID.String())
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	referrals, err := srv.userRepo.FindReferrals(ctx, userUUID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list referrals")
	}

	return referrals, nil
}

func newCode() (string, error) {
	buf := make([]byte, referralCodeBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return hex.EncodeToString(buf), nil
}
