package impl

import (
	"context"
	"log/slog"

	deliverycontext "aegis/internal/delivery/context"
	"aegis/internal/domain/entity"
	domainerrors "aegis/internal/domain/errors"
	"aegis/internal/domain/repository"
	"aegis/internal/domain/service"
	"aegis/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	// auditEntityAccount tags audit entries that target an account row.
	auditEntityAccount = "ACCOUNT"
)

// adminService implements the AdminUsecase interface.
// Every mutation resolves and validates the actor before touching the target,
// and writes its audit entry in the same transaction as the change.
type adminService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// resolveActor loads the acting account and verifies it holds one of the
// allowed roles. A missing actor and an insufficient role both come back as
// AccessDenied; a disabled actor is reported as AccountDisabled so the caller
// can tell their own account is the problem.
func (srv *adminService) resolveActor(ctx context.Context, accountRepo repository.AccountRepository, actorID uuid.UUID, allowed ...entity.Role) (*entity.Account, error) {
	actor, err := accountRepo.FindByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccessDenied, "unknown actor")
		}

		return nil, errors.Wrap(err, "failed to load acting account")
	}

	if !actor.Active {
		return nil, errors.Wrap(domainerrors.ErrAccountDisabled, "acting account disabled")
	}

	for _, role := range allowed {
		if actor.Role == role {
			return actor, nil
		}
	}

	return nil, errors.Wrapf(domainerrors.ErrAccessDenied, "role %s not permitted", actor.Role)
}

// CreateAdmin creates an active, pre-verified ADMIN account. Admin-created
// accounts skip the email verification flow.
func (srv *adminService) CreateAdmin(ctx context.Context, input usecase.CreateAdminInput) (*entity.Account, error) {
	srv.log(ctx).Info("Creating admin", slog.Any("actorID", input.ActorID), slog.String("email", input.Email))

	var created *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		actor, err := srv.resolveActor(ctx, accountRepo, input.ActorID, entity.RoleSuperAdmin)
		if err != nil {
			return err
		}

		exists, err := accountRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check email availability")
		}
		if exists {
			return errors.Wrap(domainerrors.ErrEmailAlreadyExists, "email already registered")
		}

		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return err
		}

		newAdmin := &entity.Account{
			Email:         input.Email,
			Name:          input.Name,
			PasswordHash:  hashedPassword,
			Role:          entity.RoleAdmin,
			Active:        true,
			EmailVerified: true,
		}

		if err := accountRepo.Create(ctx, newAdmin); err != nil {
			return errors.Wrap(err, "failed to create admin account")
		}

		created = newAdmin

		return repoFactory.AuditRepo().Append(ctx, &entity.AuditLogEntry{
			ActorEmail: actor.Email,
			Action:     entity.AuditCreatedAdmin,
			EntityType: auditEntityAccount,
			EntityID:   newAdmin.ID,
		})
	})
	if err != nil {
		srv.log(ctx).Warn("Create admin failed", slog.Any("actorID", input.ActorID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Admin created", slog.Any("adminID", created.ID))

	return created, nil
}

// UpdateAdminStatus blocks or unblocks an ADMIN account.
func (srv *adminService) UpdateAdminStatus(ctx context.Context, input usecase.UpdateAdminStatusInput) (*entity.Account, error) {
	srv.log(ctx).Info("Updating admin status", slog.Any("actorID", input.ActorID), slog.Any("targetID", input.TargetID), slog.Bool("active", input.Active))

	var updated *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		actor, err := srv.resolveActor(ctx, accountRepo, input.ActorID, entity.RoleSuperAdmin)
		if err != nil {
			return err
		}
		if input.ActorID == input.TargetID {
			return errors.Wrap(domainerrors.ErrAccessDenied, "cannot change own status")
		}

		target, err := srv.loadAdminTarget(ctx, accountRepo, input.TargetID, entity.RoleAdmin)
		if err != nil {
			return err
		}

		if err := accountRepo.AcquireUpdateLock(ctx, target.ID); err != nil {
			return errors.Wrap(err, "failed to lock target account")
		}

		target.Active = input.Active
		if err := accountRepo.Update(ctx, target); err != nil {
			return errors.Wrap(err, "failed to persist admin status")
		}

		action := entity.AuditBlockedAdmin
		if input.Active {
			action = entity.AuditUnblockedAdmin
		}

		updated = target

		return repoFactory.AuditRepo().Append(ctx, &entity.AuditLogEntry{
			ActorEmail: actor.Email,
			Action:     action,
			EntityType: auditEntityAccount,
			EntityID:   target.ID,
		})
	})
	if err != nil {
		srv.log(ctx).Warn("Update admin status failed", slog.Any("actorID", input.ActorID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// UpdateAdminRole moves an active admin between the administrative roles.
func (srv *adminService) UpdateAdminRole(ctx context.Context, input usecase.UpdateAdminRoleInput) (*entity.Account, error) {
	srv.log(ctx).Info("Updating admin role", slog.Any("actorID", input.ActorID), slog.Any("targetID", input.TargetID), slog.Any("newRole", input.NewRole))

	if !input.NewRole.IsAdministrative() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "role %s is not administrative", input.NewRole)
	}

	var updated *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		actor, err := srv.resolveActor(ctx, accountRepo, input.ActorID, entity.RoleSuperAdmin)
		if err != nil {
			return err
		}
		if input.ActorID == input.TargetID {
			return errors.Wrap(domainerrors.ErrAccessDenied, "cannot change own role")
		}

		target, err := srv.loadAdminTarget(ctx, accountRepo, input.TargetID, entity.RoleAdmin, entity.RoleSuperAdmin)
		if err != nil {
			return err
		}
		if !target.Active {
			return errors.Wrap(domainerrors.ErrAccountDisabled, "target account disabled")
		}
		if target.Role == input.NewRole {
			return errors.Wrap(domainerrors.ErrNoOpRoleChange, "account already holds this role")
		}

		if err := accountRepo.AcquireUpdateLock(ctx, target.ID); err != nil {
			return errors.Wrap(err, "failed to lock target account")
		}

		target.Role = input.NewRole
		if err := accountRepo.Update(ctx, target); err != nil {
			return errors.Wrap(err, "failed to persist admin role")
		}

		updated = target

		return repoFactory.AuditRepo().Append(ctx, &entity.AuditLogEntry{
			ActorEmail: actor.Email,
			Action:     entity.AuditChangeAdminRole,
			EntityType: auditEntityAccount,
			EntityID:   target.ID,
		})
	})
	if err != nil {
		srv.log(ctx).Warn("Update admin role failed", slog.Any("actorID", input.ActorID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// ForceResetAdminPassword stores a new password for another admin without the
// old-password check. This administrative override also skips the reuse
// check that self-service changes enforce.
func (srv *adminService) ForceResetAdminPassword(ctx context.Context, input usecase.ForceResetAdminPasswordInput) error {
	srv.log(ctx).Info("Force resetting admin password", slog.Any("actorID", input.ActorID), slog.Any("targetID", input.TargetID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		actor, err := srv.resolveActor(ctx, accountRepo, input.ActorID, entity.RoleSuperAdmin)
		if err != nil {
			return err
		}
		if input.ActorID == input.TargetID {
			return errors.Wrap(domainerrors.ErrAccessDenied, "cannot force reset own password")
		}

		target, err := srv.loadAdminTarget(ctx, accountRepo, input.TargetID, entity.RoleAdmin, entity.RoleSuperAdmin)
		if err != nil {
			return err
		}

		if err := accountRepo.AcquireUpdateLock(ctx, target.ID); err != nil {
			return errors.Wrap(err, "failed to lock target account")
		}

		newHash, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			return err
		}
		target.PasswordHash = newHash

		if err := accountRepo.Update(ctx, target); err != nil {
			return errors.Wrap(err, "failed to persist forced password reset")
		}

		return repoFactory.AuditRepo().Append(ctx, &entity.AuditLogEntry{
			ActorEmail: actor.Email,
			Action:     entity.AuditForceResetAdminPassword,
			EntityType: auditEntityAccount,
			EntityID:   target.ID,
		})
	})
	if err != nil {
		srv.log(ctx).Warn("Force reset admin password failed", slog.Any("actorID", input.ActorID), slog.Any("error", err))

		return err
	}

	return nil
}

// UpdateUserStatus blocks or unblocks an end-user account.
func (srv *adminService) UpdateUserStatus(ctx context.Context, input usecase.UpdateUserStatusInput) (*entity.Account, error) {
	srv.log(ctx).Info("Updating user status", slog.Any("actorID", input.ActorID), slog.Any("targetID", input.TargetID), slog.Bool("active", input.Active))

	var updated *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		actor, err := srv.resolveActor(ctx, accountRepo, input.ActorID, entity.RoleAdmin, entity.RoleSuperAdmin)
		if err != nil {
			return err
		}

		target, err := accountRepo.FindByID(ctx, input.TargetID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "target account not found")
			}

			return errors.Wrap(err, "failed to load target account")
		}
		if target.Role != entity.RoleUser {
			return errors.Wrap(domainerrors.ErrAccountNotFound, "target is not an end-user account")
		}

		if err := accountRepo.AcquireUpdateLock(ctx, target.ID); err != nil {
			return errors.Wrap(err, "failed to lock target account")
		}

		target.Active = input.Active
		if err := accountRepo.Update(ctx, target); err != nil {
			return errors.Wrap(err, "failed to persist user status")
		}

		action := entity.AuditBlockedUser
		if input.Active {
			action = entity.AuditUnblockedUser
		}

		updated = target

		return repoFactory.AuditRepo().Append(ctx, &entity.AuditLogEntry{
			ActorEmail: actor.Email,
			Action:     action,
			EntityType: auditEntityAccount,
			EntityID:   target.ID,
		})
	})
	if err != nil {
		srv.log(ctx).Warn("Update user status failed", slog.Any("actorID", input.ActorID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// ListAdmins returns a page of accounts with administrative roles.
// Read access is not audited.
func (srv *adminService) ListAdmins(ctx context.Context, input usecase.ListAdminsInput) (*repository.AccountPage, error) {
	if _, err := srv.resolveActor(ctx, srv.accountRepo, input.ActorID, entity.RoleSuperAdmin); err != nil {
		return nil, err
	}

	page, err := srv.accountRepo.Search(ctx,
		repository.AccountFilter{
			Active: input.Active,
			Roles:  []entity.Role{entity.RoleAdmin, entity.RoleSuperAdmin},
		},
		normalizePage(input.Page, input.Size),
		repository.SortOrder{Field: input.SortField, Desc: input.SortDesc},
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list admins")
	}

	return page, nil
}

// GetAdminByID returns a single administrative account.
func (srv *adminService) GetAdminByID(ctx context.Context, actorID, targetID uuid.UUID) (*entity.Account, error) {
	if _, err := srv.resolveActor(ctx, srv.accountRepo, actorID, entity.RoleSuperAdmin); err != nil {
		return nil, err
	}

	return srv.loadAdminTarget(ctx, srv.accountRepo, targetID, entity.RoleAdmin, entity.RoleSuperAdmin)
}

// SearchUsers returns a page of end-user accounts matching the filters.
func (srv *adminService) SearchUsers(ctx context.Context, input usecase.SearchUsersInput) (*repository.AccountPage, error) {
	if _, err := srv.resolveActor(ctx, srv.accountRepo, input.ActorID, entity.RoleAdmin, entity.RoleSuperAdmin); err != nil {
		return nil, err
	}

	page, err := srv.accountRepo.Search(ctx,
		repository.AccountFilter{
			Email:  input.Email,
			Name:   input.Name,
			Active: input.Active,
			Roles:  []entity.Role{entity.RoleUser},
		},
		normalizePage(input.Page, input.Size),
		repository.SortOrder{Field: "createdAt", Desc: true},
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search users")
	}

	return page, nil
}

// GetDashboardStats returns account aggregates for reporting.
func (srv *adminService) GetDashboardStats(ctx context.Context, actorID uuid.UUID) (*usecase.DashboardStats, error) {
	if _, err := srv.resolveActor(ctx, srv.accountRepo, actorID, entity.RoleAdmin, entity.RoleSuperAdmin); err != nil {
		return nil, err
	}

	counts, err := srv.accountRepo.Counts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account counts")
	}

	return &usecase.DashboardStats{
		TotalAccounts:      counts.Total,
		ActiveAccounts:     counts.Active,
		InactiveAccounts:   counts.Inactive,
		AdminAccounts:      counts.Admins,
		VerifiedAccounts:   counts.Verified,
		UnverifiedAccounts: counts.Unverified,
	}, nil
}

// loadAdminTarget loads the target account and verifies it holds one of the
// expected roles. A missing account and a wrong-role account both come back
// as AdminNotFound.
func (srv *adminService) loadAdminTarget(ctx context.Context, accountRepo repository.AccountRepository, targetID uuid.UUID, allowed ...entity.Role) (*entity.Account, error) {
	target, err := accountRepo.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAdminNotFound, "target admin not found")
		}

		return nil, errors.Wrap(err, "failed to load target account")
	}

	for _, role := range allowed {
		if target.Role == role {
			return target, nil
		}
	}

	return nil, errors.Wrapf(domainerrors.ErrAdminNotFound, "target role %s is not an admin", target.Role)
}

func normalizePage(page, size int) repository.Pagination {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	return repository.Pagination{Page: page, Size: size}
}
