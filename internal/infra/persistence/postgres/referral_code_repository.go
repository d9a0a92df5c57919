package postgres

import (
	"context"

	"referral/internal/domain/entity"
	"referral/internal/domain/repository"
	"referral/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// referralCodeRepository implements the domain's ReferralCodeRepository interface using GORM.
type referralCodeRepository struct {
	db *gorm.DB
}

// NewReferralCodeRepository is the constructor for referralCodeRepository.
func NewReferralCodeRepository(db *gorm.DB) repository.ReferralCodeRepository {
	return &referralCodeRepository{db: db}
}

// Create persists a new referral code.
func (repo *referralCodeRepository) Create(ctx context.Context, code *entity.ReferralCode) error {
	codeM := fromReferralCodeDomain(code)

	if err := repo.db.WithContext(ctx).Create(codeM).Error; err != nil {
		// Both the code value and the owner carry unique indexes; either
		// violation surfaces as a conflict for the caller to retry or report.
		if isUniqueConstraintViolation(err) {
			return repository.ErrCodeConflict
		}

		return errors.Wrap(err, "failed to create referral code")
	}

	code.UUID = codeM.UUID
	code.CreatedAt = codeM.CreatedAt

	return nil
}

// FindByCode retrieves a referral code by its token value.
func (repo *referralCodeRepository) FindByCode(ctx context.Context, code string) (*entity.ReferralCode, error) {
	var codeM model.ReferralCodeModel
	err := repo.db.WithContext(ctx).
		Where("code = ?", code).
		First(&codeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find referral code")
	}

	return toReferralCodeDomain(&codeM), nil
}

// FindByOwner retrieves the active referral code owned by the given user.
func (repo *referralCodeRepository) FindByOwner(ctx context.Context, ownerUUID uuid.UUID) (*entity.ReferralCode, error) {
	var codeM model.ReferralCodeModel
	err := repo.db.WithContext(ctx).
		Where("owner_uuid = ?", ownerUUID).
		First(&codeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find referral code by owner")
	}

	return toReferralCodeDomain(&codeM), nil
}

// DeleteByCode removes the code identified by its token value.
func (repo *referralCodeRepository) DeleteByCode(ctx context.Context, code string) error {
	result := repo.db.WithContext(ctx).
		Where("code = ?", code).
		Delete(&model.ReferralCodeModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete referral code")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCodeNotFound
	}

	return nil
}

// DeleteByOwner removes any code owned by the given user. Nothing to delete
// is not an error.
func (repo *referralCodeRepository) DeleteByOwner(ctx context.Context, ownerUUID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("owner_uuid = ?", ownerUUID).
		Delete(&model.ReferralCodeModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete referral code by owner")
	}

	return nil
}

// toReferralCodeDomain maps the persistence model to the pure domain entity.
func toReferralCodeDomain(m *model.ReferralCodeModel) *entity.ReferralCode {
	return &entity.ReferralCode{
		UUID:           m.UUID,
		Code:           m.Code,
		ExpirationTime: m.ExpirationTime,
		OwnerUUID:      m.OwnerUUID,
		CreatedAt:      m.CreatedAt,
	}
}

// fromReferralCodeDomain maps the domain entity to its persistence model.
func fromReferralCodeDomain(code *entity.ReferralCode) *model.ReferralCodeModel {
	return &model.ReferralCodeModel{
		UUID:           code.UUID,
		Code:           code.Code,
		ExpirationTime: code.ExpirationTime,
		OwnerUUID:      code.OwnerUUID,
	}
}
