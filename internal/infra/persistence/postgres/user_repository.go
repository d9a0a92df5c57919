package postgres

import (
	"context"

	"referral/internal/domain/entity"
	domainerrors "referral/internal/domain/errors"
	"referral/internal/domain/repository"
	"referral/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByUUID retrieves a single user by their unique ID.
func (repo *userRepository) FindByUUID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("uuid = ?", id).
		First(&userM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		// Otherwise, return the original database error.
		return nil, errors.Wrap(err, "failed to find user by uuid")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	// Map the pure domain entity to a GORM persistence model.
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required user information")
		}

		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.UUID = userM.UUID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdateReferrer sets the user's referrer reference.
func (repo *userRepository) UpdateReferrer(ctx context.Context, userUUID, referrerUUID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("uuid = ?", userUUID).
		Update("referrer_uuid", referrerUUID)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(result.Error, "failed to update referrer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// FindReferrals retrieves all users whose referrer is the given user.
func (repo *userRepository) FindReferrals(ctx context.Context, referrerUUID uuid.UUID) ([]*entity.User, error) {
	var models []*model.UserModel
	err := repo.db.WithContext(ctx).
		Where("referrer_uuid = ?", referrerUUID).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find referrals")
	}

	referrals := make([]*entity.User, 0, len(models))
	for _, m := range models {
		referrals = append(referrals, toUserDomain(m))
	}

	return referrals, nil
}

// toUserDomain maps the persistence model to the pure domain entity.
func toUserDomain(m *model.UserModel) *entity.User {
	return &entity.User{
		UUID:         m.UUID,
		Email:        m.Email,
		PasswordHash: m.Password,
		ReferrerUUID: m.ReferrerUUID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// fromUserDomain maps the domain entity to its persistence model.
func fromUserDomain(user *entity.User) *model.UserModel {
	return &model.UserModel{
		UUID:         user.UUID,
		Email:        user.Email,
		Password:     user.PasswordHash,
		ReferrerUUID: user.ReferrerUUID,
	}
}
