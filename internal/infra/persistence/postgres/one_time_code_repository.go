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

// oneTimeCodeRepository implements the domain.OneTimeCodeRepository interface.
type oneTimeCodeRepository struct {
	db *gorm.DB
}

// NewOneTimeCodeRepository is the constructor for oneTimeCodeRepository.
func NewOneTimeCodeRepository(db *gorm.DB) repository.OneTimeCodeRepository {
	return &oneTimeCodeRepository{db: db}
}

// FindByEmail retrieves the pending code for the purpose and email.
func (repo *oneTimeCodeRepository) FindByEmail(ctx context.Context, purpose entity.CodePurpose, email string) (*entity.OneTimeCode, error) {
	var codeM model.OneTimeCodeModel

	err := repo.db.WithContext(ctx).
		Where("purpose = ? AND lower(email) = lower(?)", string(purpose), email).
		First(&codeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCodeNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toOneTimeCodeDomain(&codeM), nil
}

// Create persists a freshly issued code.
func (repo *oneTimeCodeRepository) Create(ctx context.Context, code *entity.OneTimeCode) error {
	codeM := fromOneTimeCodeDomain(code)

	if err := repo.db.WithContext(ctx).Create(codeM).Error; err != nil {
		// The (purpose, email) unique index catches two concurrent
		// issuance calls; the caller's delete-then-insert lost the race.
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrOtpAlreadyUsed.WrapMessage("a code was just issued for this email")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create one-time code")
	}

	code.ID = codeM.ID
	code.CreatedAt = codeM.CreatedAt

	return nil
}

// Update persists attempt-counter and verified-flag changes.
func (repo *oneTimeCodeRepository) Update(ctx context.Context, code *entity.OneTimeCode) error {
	codeM := fromOneTimeCodeDomain(code)

	if err := repo.db.WithContext(ctx).Save(codeM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update one-time code")
	}

	return nil
}

// Delete removes a consumed code record.
func (repo *oneTimeCodeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OneTimeCodeModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}

	if result.RowsAffected == 0 {
		return repository.ErrCodeNotFound
	}

	return nil
}

// DeleteByEmail removes any pending code for the purpose and email.
func (repo *oneTimeCodeRepository) DeleteByEmail(ctx context.Context, purpose entity.CodePurpose, email string) error {
	err := repo.db.WithContext(ctx).
		Where("purpose = ? AND lower(email) = lower(?)", string(purpose), email).
		Delete(&model.OneTimeCodeModel{}).Error
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// --- Mapper Functions ---

// toOneTimeCodeDomain converts a GORM OneTimeCodeModel to a domain OneTimeCode entity.
func toOneTimeCodeDomain(data *model.OneTimeCodeModel) *entity.OneTimeCode {
	if data == nil {
		return nil
	}

	return &entity.OneTimeCode{
		ID:        data.ID,
		Email:     data.Email,
		Purpose:   entity.CodePurpose(data.Purpose),
		Code:      data.Code,
		ExpiresAt: data.ExpiresAt,
		Attempts:  data.Attempts,
		Verified:  data.Verified,
		CreatedAt: data.CreatedAt,
	}
}

// fromOneTimeCodeDomain converts a domain OneTimeCode entity to a GORM OneTimeCodeModel.
func fromOneTimeCodeDomain(data *entity.OneTimeCode) *model.OneTimeCodeModel {
	if data == nil {
		return nil
	}

	return &model.OneTimeCodeModel{
		ID:        data.ID,
		Purpose:   string(data.Purpose),
		Email:     data.Email,
		Code:      data.Code,
		ExpiresAt: data.ExpiresAt,
		Attempts:  data.Attempts,
		Verified:  data.Verified,
		CreatedAt: data.CreatedAt,
	}
}
