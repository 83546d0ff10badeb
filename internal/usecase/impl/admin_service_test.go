package impl

import (
	"context"
	"testing"

	"aegis/internal/domain/entity"
	domainerrors "aegis/internal/domain/errors"
	"aegis/internal/domain/repository"
	mockRepo "aegis/internal/mocks/repository"
	mockSvc "aegis/internal/mocks/service"
	"aegis/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// adminServiceFixtures holds all test dependencies for admin service tests.
type adminServiceFixtures struct {
	service     usecase.AdminUsecase
	txManager   *mockRepo.MockTransactionManager
	accountRepo *mockRepo.MockAccountRepository
	hasher      *mockSvc.MockPasswordHasher
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewAdminService(AdminServiceParams{
		TxManager:   txManager,
		AccountRepo: accountRepo,
		Hasher:      hasher,
		Logger:      newDiscardLogger(),
	})

	return adminServiceFixtures{
		service:     service,
		txManager:   txManager,
		accountRepo: accountRepo,
		hasher:      hasher,
	}
}

func accountWithRole(role entity.Role) *entity.Account {
	return &entity.Account{
		ID:            uuid.New(),
		Email:         string(role) + "@example.com",
		Name:          "Account",
		PasswordHash:  "hashed_password",
		Role:          role,
		Active:        true,
		EmailVerified: true,
	}
}

func TestAdminService_CreateAdmin_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	actor := accountWithRole(entity.RoleSuperAdmin)
	input := usecase.CreateAdminInput{
		ActorID:  actor.ID,
		Name:     "New Admin",
		Email:    "admin@example.com",
		Password: "Sup3r$trong",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockAuditRepo := mockRepo.NewMockAuditLogRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().AuditRepo().Return(mockAuditRepo)

			mockAccountRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
			mockAccountRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(false, nil)

			fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

			mockAccountRepo.EXPECT().
				Create(ctx, mock.MatchedBy(func(account *entity.Account) bool {
					// Admin-created accounts skip the verification flow.
					return account.Role == entity.RoleAdmin && account.Active && account.EmailVerified
				})).
				Run(func(ctx context.Context, account *entity.Account) {
					account.ID = uuid.New()
				}).
				Return(nil)

			mockAuditRepo.EXPECT().
				Append(ctx, mock.MatchedBy(func(entry *entity.AuditLogEntry) bool {
					return entry.Action == entity.AuditCreatedAdmin && entry.ActorEmail == actor.Email
				})).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	created, err := fx.service.CreateAdmin(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, entity.RoleAdmin, created.Role)
	assert.True(t, created.Active)
	assert.True(t, created.EmailVerified)
}

func TestAdminService_CreateAdmin_NonSuperAdminActor(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	actor := accountWithRole(entity.RoleAdmin)
	input := usecase.CreateAdminInput{ActorID: actor.ID, Email: "admin@example.com", Password: "Sup3r$trong"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)

			mockAccountRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrapf(domainerrors.ErrAccessDenied, "role %s not permitted", actor.Role))

	created, err := fx.service.CreateAdmin(ctx, input)

	assert.Nil(t, created)
	assert.True(t, errors.Is(err, domainerrors.ErrAccessDenied))
}

func TestAdminService_UpdateAdminStatus_Block(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	actor := accountWithRole(entity.RoleSuperAdmin)
	target := accountWithRole(entity.RoleAdmin)
	input := usecase.UpdateAdminStatusInput{ActorID: actor.ID, TargetID: target.ID, Active: false}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockAuditRepo := mockRepo.NewMockAuditLogRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().AuditRepo().Return(mockAuditRepo)

			mockAccountRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
			mockAccountRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
			mockAccountRepo.EXPECT().AcquireUpdateLock(ctx, target.ID).Return(nil)

			mockAccountRepo.EXPECT().
				Update(ctx, mock.MatchedBy(func(updated *entity.Account) bool {
					return !updated.Active
				})).
				Return(nil)

			mockAuditRepo.EXPECT().
				Append(ctx, mock.MatchedBy(func(entry *entity.AuditLogEntry) bool {
					return entry.Action == entity.AuditBlockedAdmin && entry.EntityID == target.ID
				})).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated, err := fx.service.UpdateAdminStatus(ctx, input)

	require.NoError(t, err)
	assert.False(t, updated.Active)
}

func TestAdminService_UpdateAdminStatus_SelfTarget(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	actor := accountWithRole(entity.RoleSuperAdmin)
	input := usecase.UpdateAdminStatusInput{ActorID: actor.ID, TargetID: actor.ID, Active: false}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)

			mockAccountRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrAccessDenied, "cannot change own status"))

	updated, err := fx.service.UpdateAdminStatus(ctx, input)

	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrAccessDenied))
}

func TestAdminService_UpdateAdminStatus_SuperAdminTargetRejected(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	actor := accountWithRole(entity.RoleSuperAdmin)
	target := accountWithRole(entity.RoleSuperAdmin)
	input := usecase.UpdateAdminStatusInput{ActorID: actor.ID, TargetID: target.ID, Active: false}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)

			mockAccountRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
			mockAccountRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrapf(domainerrors.ErrAdminNotFound, "target role %s is not an admin", target.Role))

	// Status toggling only applies to ADMIN accounts.
	updated, err := fx.service.UpdateAdminStatus(ctx, input)

	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrAdminNotFound))
}

func TestAdminService_UpdateAdminRole_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	actor := accountWithRole(entity.RoleSuperAdmin)
	target := accountWithRole(entity.RoleAdmin)
	input := usecase.UpdateAdminRoleInput{ActorID: actor.ID, TargetID: target.ID, NewRole: entity.RoleSuperAdmin}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockAuditRepo := mockRepo.NewMockAuditLogRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().AuditRepo().Return(mockAuditRepo)

			mockAccountRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
			mockAccountRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
			mockAccountRepo.EXPECT().AcquireUpdateLock(ctx, target.ID).Return(nil)

			mockAccountRepo.EXPECT().
				Update(ctx, mock.MatchedBy(func(updated *entity.Account) bool {
					return updated.Role == entity.RoleSuperAdmin
				})).
				Return(nil)

			mockAuditRepo.EXPECT().
				Append(ctx, mock.MatchedBy(func(entry *entity.AuditLogEntry) bool {
					return entry.Action == entity.AuditChangeAdminRole && entry.EntityID == target.ID
				})).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated, err := fx.service.UpdateAdminRole(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleSuperAdmin, updated.Role)
}

func TestAdminService_UpdateAdminRole_NonAdministrativeRole(t *testing.T) {
	fx := createTestAdminService(t)

	updated, err := fx.service.UpdateAdminRole(context.Background(), usecase.UpdateAdminRoleInput{
		ActorID:  uuid.New(),
		TargetID: uuid.New(),
		NewRole:  entity.RoleUser,
	})

	// Demoting an admin to USER is not a role change this operation supports.
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAdminService_UpdateAdminRole_NoOp(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	actor := accountWithRole(entity.RoleSuperAdmin)
	target := accountWithRole(entity.RoleAdmin)
	input := usecase.UpdateAdminRoleInput{ActorID: actor.ID, TargetID: target.ID, NewRole: entity.RoleAdmin}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)

			mockAccountRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
			mockAccountRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrNoOpRoleChange, "account already holds this role"))

	updated, err := fx.service.UpdateAdminRole(ctx, input)

	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrNoOpRoleChange))
}

func TestAdminService_UpdateAdminRole_DisabledTarget(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	actor := accountWithRole(entity.RoleSuperAdmin)
	target := accountWithRole(entity.RoleAdmin)
	target.Active = false
	input := usecase.UpdateAdminRoleInput{ActorID: actor.ID, TargetID: target.ID, NewRole: entity.RoleSuperAdmin}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)

			mockAccountRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
			mockAccountRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrAccountDisabled, "target account disabled"))

	updated, err := fx.service.UpdateAdminRole(ctx, input)

	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountDisabled))
}

func TestAdminService_ForceResetAdminPassword_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	actor := accountWithRole(entity.RoleSuperAdmin)
	target := accountWithRole(entity.RoleAdmin)
	input := usecase.ForceResetAdminPasswordInput{
		ActorID:     actor.ID,
		TargetID:    target.ID,
		NewPassword: "Ev3nB3tter!",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockAuditRepo := mockRepo.NewMockAuditLogRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().AuditRepo().Return(mockAuditRepo)

			mockAccountRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
			mockAccountRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
			mockAccountRepo.EXPECT().AcquireUpdateLock(ctx, target.ID).Return(nil)

			fx.hasher.EXPECT().Hash(input.NewPassword).Return("new_hash", nil)

			mockAccountRepo.EXPECT().
				Update(ctx, mock.MatchedBy(func(updated *entity.Account) bool {
					return updated.PasswordHash == "new_hash"
				})).
				Return(nil)

			mockAuditRepo.EXPECT().
				Append(ctx, mock.MatchedBy(func(entry *entity.AuditLogEntry) bool {
					return entry.Action == entity.AuditForceResetAdminPassword && entry.EntityID == target.ID
				})).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.ForceResetAdminPassword(ctx, input)

	assert.NoError(t, err)
}

func TestAdminService_UpdateUserStatus_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	actor := accountWithRole(entity.RoleAdmin)
	target := accountWithRole(entity.RoleUser)
	target.Active = false
	input := usecase.UpdateUserStatusInput{ActorID: actor.ID, TargetID: target.ID, Active: true}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockAuditRepo := mockRepo.NewMockAuditLogRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().AuditRepo().Return(mockAuditRepo)

			mockAccountRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
			mockAccountRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
			mockAccountRepo.EXPECT().AcquireUpdateLock(ctx, target.ID).Return(nil)

			mockAccountRepo.EXPECT().
				Update(ctx, mock.MatchedBy(func(updated *entity.Account) bool {
					return updated.Active
				})).
				Return(nil)

			mockAuditRepo.EXPECT().
				Append(ctx, mock.MatchedBy(func(entry *entity.AuditLogEntry) bool {
					return entry.Action == entity.AuditUnblockedUser && entry.EntityID == target.ID
				})).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated, err := fx.service.UpdateUserStatus(ctx, input)

	require.NoError(t, err)
	assert.True(t, updated.Active)
}

func TestAdminService_UpdateUserStatus_NonUserTarget(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	actor := accountWithRole(entity.RoleAdmin)
	target := accountWithRole(entity.RoleAdmin)
	input := usecase.UpdateUserStatusInput{ActorID: actor.ID, TargetID: target.ID, Active: false}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)

			mockAccountRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
			mockAccountRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrAccountNotFound, "target is not an end-user account"))

	// Admin accounts are managed through the admin status operation.
	updated, err := fx.service.UpdateUserStatus(ctx, input)

	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestAdminService_ListAdmins(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	actor := accountWithRole(entity.RoleSuperAdmin)
	expected := &repository.AccountPage{
		Accounts: []*entity.Account{accountWithRole(entity.RoleAdmin)},
		Total:    1,
		Page:     0,
		Size:     20,
	}

	fx.accountRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)

	fx.accountRepo.EXPECT().
		Search(ctx,
			repository.AccountFilter{Roles: []entity.Role{entity.RoleAdmin, entity.RoleSuperAdmin}},
			repository.Pagination{Page: 0, Size: 20},
			repository.SortOrder{Field: "email", Desc: false},
		).
		Return(expected, nil)

	page, err := fx.service.ListAdmins(ctx, usecase.ListAdminsInput{
		ActorID:   actor.ID,
		SortField: "email",
	})

	require.NoError(t, err)
	assert.Equal(t, expected, page)
}

func TestAdminService_ListAdmins_RequiresSuperAdmin(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	actor := accountWithRole(entity.RoleAdmin)

	fx.accountRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)

	page, err := fx.service.ListAdmins(ctx, usecase.ListAdminsInput{ActorID: actor.ID})

	assert.Nil(t, page)
	assert.True(t, errors.Is(err, domainerrors.ErrAccessDenied))
}

func TestAdminService_SearchUsers_ClampsPageSize(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	actor := accountWithRole(entity.RoleAdmin)
	expected := &repository.AccountPage{Total: 0, Page: 0, Size: 100}

	fx.accountRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)

	fx.accountRepo.EXPECT().
		Search(ctx,
			repository.AccountFilter{Email: "owner", Roles: []entity.Role{entity.RoleUser}},
			repository.Pagination{Page: 0, Size: 100},
			repository.SortOrder{Field: "createdAt", Desc: true},
		).
		Return(expected, nil)

	page, err := fx.service.SearchUsers(ctx, usecase.SearchUsersInput{
		ActorID: actor.ID,
		Email:   "owner",
		Page:    -3,
		Size:    5000,
	})

	require.NoError(t, err)
	assert.Equal(t, expected, page)
}

func TestAdminService_GetAdminByID(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	actor := accountWithRole(entity.RoleSuperAdmin)
	target := accountWithRole(entity.RoleAdmin)

	fx.accountRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
	fx.accountRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)

	found, err := fx.service.GetAdminByID(ctx, actor.ID, target.ID)

	require.NoError(t, err)
	assert.Equal(t, target, found)
}

func TestAdminService_GetAdminByID_UserTarget(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	actor := accountWithRole(entity.RoleSuperAdmin)
	target := accountWithRole(entity.RoleUser)

	fx.accountRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
	fx.accountRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)

	found, err := fx.service.GetAdminByID(ctx, actor.ID, target.ID)

	assert.Nil(t, found)
	assert.True(t, errors.Is(err, domainerrors.ErrAdminNotFound))
}

func TestAdminService_GetDashboardStats(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	actor := accountWithRole(entity.RoleSuperAdmin)

	fx.accountRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)

	fx.accountRepo.EXPECT().Counts(ctx).Return(&repository.AccountCounts{
		Total:      10,
		Active:     7,
		Inactive:   3,
		Admins:     2,
		Verified:   8,
		Unverified: 2,
	}, nil)

	stats, err := fx.service.GetDashboardStats(ctx, actor.ID)

	require.NoError(t, err)
	assert.Equal(t, &usecase.DashboardStats{
		TotalAccounts:      10,
		ActiveAccounts:     7,
		InactiveAccounts:   3,
		AdminAccounts:      2,
		VerifiedAccounts:   8,
		UnverifiedAccounts: 2,
	}, stats)
}

func TestAdminService_GetDashboardStats_DisabledActor(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	actor := accountWithRole(entity.RoleAdmin)
	actor.Active = false

	fx.accountRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)

	stats, err := fx.service.GetDashboardStats(ctx, actor.ID)

	assert.Nil(t, stats)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountDisabled))
}
