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

// auditLogRepository implements the domain.AuditLogRepository interface.
type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository is the constructor for auditLogRepository.
func NewAuditLogRepository(db *gorm.DB) repository.AuditLogRepository {
	return &auditLogRepository{db: db}
}

// Append persists a new audit entry.
func (repo *auditLogRepository) Append(ctx context.Context, entry *entity.AuditLogEntry) error {
	entryM := fromAuditLogDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required audit information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append audit entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// Search returns one page of entries matching the filter, newest first.
func (repo *auditLogRepository) Search(ctx context.Context, filter repository.AuditLogFilter, page repository.Pagination) (*repository.AuditLogPage, error) {
	query := repo.db.WithContext(ctx).Model(&model.AuditLogModel{})
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if filter.ActorEmail != "" {
		query = query.Where("lower(actor_email) = lower(?)", filter.ActorEmail)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	var entryModels []*model.AuditLogModel
	err := query.
		Order("created_at desc").
		Offset(page.Page * page.Size).
		Limit(page.Size).
		Find(&entryModels).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	entries := make([]*entity.AuditLogEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toAuditLogDomain(entryM))
	}

	return &repository.AuditLogPage{
		Entries: entries,
		Total:   total,
		Page:    page.Page,
		Size:    page.Size,
	}, nil
}

// --- Mapper Functions ---

// toAuditLogDomain converts a GORM AuditLogModel to a domain AuditLogEntry entity.
func toAuditLogDomain(data *model.AuditLogModel) *entity.AuditLogEntry {
	if data == nil {
		return nil
	}

	return &entity.AuditLogEntry{
		ID:         data.ID,
		ActorEmail: data.ActorEmail,
		Action:     entity.AuditAction(data.Action),
		EntityType: data.EntityType,
		EntityID:   data.EntityID,
		CreatedAt:  data.CreatedAt,
	}
}

// fromAuditLogDomain converts a domain AuditLogEntry entity to a GORM AuditLogModel.
func fromAuditLogDomain(data *entity.AuditLogEntry) *model.AuditLogModel {
	if data == nil {
		return nil
	}

	return &model.AuditLogModel{
		ID:         data.ID,
		ActorEmail: data.ActorEmail,
		Action:     string(data.Action),
		EntityType: data.EntityType,
		EntityID:   data.EntityID,
		CreatedAt:  data.CreatedAt,
	}
}
