package postgres

import (
	"context"

	"aegis/internal/domain/entity"
	domainerrors "aegis/internal/domain/errors"
	"aegis/internal/domain/repository"
	"aegis/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// resetTokenRepository implements the domain.ResetTokenRepository interface.
type resetTokenRepository struct {
	db *gorm.DB
}

// NewResetTokenRepository is the constructor for resetTokenRepository.
func NewResetTokenRepository(db *gorm.DB) repository.ResetTokenRepository {
	return &resetTokenRepository{db: db}
}

// FindByToken retrieves a token record by its opaque value.
func (repo *resetTokenRepository) FindByToken(ctx context.Context, token string) (*entity.PasswordResetToken, error) {
	var tokenM model.ResetTokenModel

	err := repo.db.WithContext(ctx).
		Where("token = ?", token).
		First(&tokenM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResetTokenNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toResetTokenDomain(&tokenM), nil
}

// Create persists a freshly issued token.
func (repo *resetTokenRepository) Create(ctx context.Context, token *entity.PasswordResetToken) error {
	tokenM := fromResetTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		// The unique email index catches two concurrent issuance calls;
		// the caller's delete-then-insert lost the race.
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrInvalidResetToken.WrapMessage("a reset token was just issued for this email")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create reset token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// Delete removes a consumed token record.
func (repo *resetTokenRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ResetTokenModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}

	if result.RowsAffected == 0 {
		return repository.ErrResetTokenNotFound
	}

	return nil
}

// DeleteByEmail removes any live token for the email.
func (repo *resetTokenRepository) DeleteByEmail(ctx context.Context, email string) error {
	err := repo.db.WithContext(ctx).
		Where("lower(email) = lower(?)", email).
		Delete(&model.ResetTokenModel{}).Error
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// --- Mapper Functions ---

// toResetTokenDomain converts a GORM ResetTokenModel to a domain PasswordResetToken entity.
func toResetTokenDomain(data *model.ResetTokenModel) *entity.PasswordResetToken {
	if data == nil {
		return nil
	}

	return &entity.PasswordResetToken{
		ID:        data.ID,
		Token:     data.Token,
		Email:     data.Email,
		ExpiresAt: data.ExpiresAt,
		Used:      data.Used,
		CreatedAt: data.CreatedAt,
	}
}

// fromResetTokenDomain converts a domain PasswordResetToken entity to a GORM ResetTokenModel.
func fromResetTokenDomain(data *entity.PasswordResetToken) *model.ResetTokenModel {
	if data == nil {
		return nil
	}

	return &model.ResetTokenModel{
		ID:        data.ID,
		Token:     data.Token,
		Email:     data.Email,
		ExpiresAt: data.ExpiresAt,
		Used:      data.Used,
		CreatedAt: data.CreatedAt,
	}
}
