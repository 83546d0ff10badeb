package impl

import (
	"context"
	"log/slog"

	deliverycontext "aegis/internal/delivery/context"
	"aegis/internal/domain/entity"
	domainerrors "aegis/internal/domain/errors"
	"aegis/internal/domain/repository"
	"aegis/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// activityService implements the ActivityUsecase interface.
type activityService struct {
	activityRepo repository.ActivityRepository
	logger       *slog.Logger
}

// ActivityServiceParams holds dependencies for activityService, injected by Fx.
type ActivityServiceParams struct {
	fx.In

	ActivityRepo repository.ActivityRepository
	Logger       *slog.Logger
}

// NewActivityService is the constructor for activityService.
func NewActivityService(params ActivityServiceParams) usecase.ActivityUsecase {
	return &activityService{
		activityRepo: params.ActivityRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *activityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Record appends one activity entry for the email.
func (srv *activityService) Record(ctx context.Context, email string, action entity.ActivityAction, ip string) error {
	entry := &entity.ActivityEntry{
		Email:     email,
		Action:    action,
		IPAddress: ip,
	}

	if err := srv.activityRepo.Append(ctx, entry); err != nil {
		srv.log(ctx).Error("Failed to append activity entry", slog.String("action", string(action)), slog.Any("error", err))

		return errors.Wrap(err, "failed to append activity entry")
	}

	return nil
}

// GetActivity returns all entries for the email, newest first.
func (srv *activityService) GetActivity(ctx context.Context, email string) ([]*entity.ActivityEntry, error) {
	entries, err := srv.activityRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load activity entries")
	}

	return entries, nil
}

// requireSuperAdmin verifies the actor exists, is active and holds the
// SUPER_ADMIN role.
func requireSuperAdmin(ctx context.Context, accountRepo repository.AccountRepository, actorID uuid.UUID) error {
	actor, err := accountRepo.FindByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(domainerrors.ErrAccessDenied, "unknown actor")
		}

		return errors.Wrap(err, "failed to load acting account")
	}

	if !actor.Active {
		return errors.Wrap(domainerrors.ErrAccountDisabled, "acting account disabled")
	}
	if actor.Role != entity.RoleSuperAdmin {
		return errors.Wrapf(domainerrors.ErrAccessDenied, "role %s not permitted", actor.Role)
	}

	return nil
}
