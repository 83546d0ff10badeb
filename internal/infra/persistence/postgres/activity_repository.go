package postgres

import (
	"context"

	"aegis/internal/domain/entity"
	domainerrors "aegis/internal/domain/errors"
	"aegis/internal/domain/repository"
	"aegis/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// activityRepository implements the domain.ActivityRepository interface.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

// Append persists a new activity entry.
func (repo *activityRepository) Append(ctx context.Context, entry *entity.ActivityEntry) error {
	entryM := fromActivityDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append activity entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// FindByEmail returns all entries for the email, newest first.
func (repo *activityRepository) FindByEmail(ctx context.Context, email string) ([]*entity.ActivityEntry, error) {
	var entryModels []*model.ActivityModel

	err := repo.db.WithContext(ctx).
		Where("lower(email) = lower(?)", email).
		Order("created_at desc").
		Find(&entryModels).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	entries := make([]*entity.ActivityEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toActivityDomain(entryM))
	}

	return entries, nil
}

// --- Mapper Functions ---

// toActivityDomain converts a GORM ActivityModel to a domain ActivityEntry entity.
func toActivityDomain(data *model.ActivityModel) *entity.ActivityEntry {
	if data == nil {
		return nil
	}

	return &entity.ActivityEntry{
		ID:        data.ID,
		Email:     data.Email,
		Action:    entity.ActivityAction(data.Action),
		IPAddress: data.IPAddress,
		CreatedAt: data.CreatedAt,
	}
}

// fromActivityDomain converts a domain ActivityEntry entity to a GORM ActivityModel.
func fromActivityDomain(data *entity.ActivityEntry) *model.ActivityModel {
	if data == nil {
		return nil
	}

	return &model.ActivityModel{
		ID:        data.ID,
		Email:     data.Email,
		Action:    string(data.Action),
		IPAddress: data.IPAddress,
		CreatedAt: data.CreatedAt,
	}
}
