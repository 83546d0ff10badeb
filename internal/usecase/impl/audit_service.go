package impl

import (
	"context"
	"log/slog"

	deliverycontext "aegis/internal/delivery/context"
	"aegis/internal/domain/entity"
	"aegis/internal/domain/repository"
	"aegis/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// auditService implements the AuditUsecase interface.
type auditService struct {
	accountRepo repository.AccountRepository
	auditRepo   repository.AuditLogRepository
	logger      *slog.Logger
}

// AuditServiceParams holds dependencies for auditService, injected by Fx.
type AuditServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	AuditRepo   repository.AuditLogRepository
	Logger      *slog.Logger
}

// NewAuditService is the constructor for auditService.
func NewAuditService(params AuditServiceParams) usecase.AuditUsecase {
	return &auditService{
		accountRepo: params.AccountRepo,
		auditRepo:   params.AuditRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *auditService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Record appends one audit entry attributing an action to an actor.
func (srv *auditService) Record(ctx context.Context, actorEmail string, action entity.AuditAction, entityType string, entityID uuid.UUID) error {
	entry := &entity.AuditLogEntry{
		ActorEmail: actorEmail,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
	}

	if err := srv.auditRepo.Append(ctx, entry); err != nil {
		srv.log(ctx).Error("Failed to append audit entry", slog.String("action", string(action)), slog.Any("error", err))

		return errors.Wrap(err, "failed to append audit entry")
	}

	return nil
}

// GetAuditLogs returns a page of the trail, newest first. SUPER_ADMIN only;
// viewing the trail is itself not audited.
func (srv *auditService) GetAuditLogs(ctx context.Context, input usecase.GetAuditLogsInput) (*repository.AuditLogPage, error) {
	if err := requireSuperAdmin(ctx, srv.accountRepo, input.ActorID); err != nil {
		return nil, err
	}

	page, err := srv.auditRepo.Search(ctx,
		repository.AuditLogFilter{
			Action:     input.Action,
			ActorEmail: input.AdminEmail,
		},
		normalizePage(input.Page, input.Size),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search audit trail")
	}

	return page, nil
}
