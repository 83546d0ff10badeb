// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"aegis/config"
	deliverycontext "aegis/internal/delivery/context"
	"aegis/internal/domain/entity"
	domainerrors "aegis/internal/domain/errors"
	"aegis/internal/domain/lockout"
	"aegis/internal/domain/repository"
	"aegis/internal/domain/service"
	"aegis/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	clock        service.Clock
	policy       *lockout.Policy
	verification usecase.VerificationUsecase
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	Clock        service.Clock
	Verification usecase.VerificationUsecase
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	var maxFailedAttempts int
	var lockDuration time.Duration
	if params.Config != nil && params.Config.Auth != nil {
		maxFailedAttempts = params.Config.Auth.MaxFailedAttempts
		lockDuration = params.Config.Auth.LockDuration
	}

	return &authService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		clock:        params.Clock,
		policy:       lockout.NewPolicy(maxFailedAttempts, lockDuration),
		verification: params.Verification,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login authenticates a credential pair. The checks run in a fixed order so
// that nothing beyond "invalid credentials" leaks for an unknown email, and
// the failed-attempt counter is committed even though the call fails.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	var loginErr error
	var identity entity.Identity

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				// Do not reveal whether the email exists.
				loginErr = errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")

				return nil
			}

			return errors.Wrap(err, "failed to find account by email")
		}

		// Serialize concurrent attempts against the same account, then
		// re-read so the lockout counter is current.
		if err := accountRepo.AcquireUpdateLock(ctx, account.ID); err != nil {
			return errors.Wrap(err, "failed to lock account row for login")
		}
		account, err = accountRepo.FindByID(ctx, account.ID)
		if err != nil {
			return errors.Wrap(err, "failed to reload account after lock")
		}

		now := srv.clock.Now()

		if srv.policy.IsLocked(account, now) {
			loginErr = errors.Wrapf(domainerrors.ErrAccountLocked,
				"account locked until %s", account.LockedUntil.Format(time.RFC3339))

			return nil
		}
		if !account.EmailVerified {
			loginErr = errors.Wrap(domainerrors.ErrEmailNotVerified, "email not verified")

			return nil
		}
		if !account.Active {
			loginErr = errors.Wrap(domainerrors.ErrAccountDisabled, "account disabled")

			return nil
		}

		if !srv.hasher.Check(input.Password, account.PasswordHash) {
			srv.policy.RecordFailure(account, now)
			if err := accountRepo.Update(ctx, account); err != nil {
				return errors.Wrap(err, "failed to persist failed login attempt")
			}
			if err := repoFactory.ActivityRepo().Append(ctx, &entity.ActivityEntry{
				Email:     account.Email,
				Action:    entity.ActivityLoginFailed,
				IPAddress: input.IPAddress,
			}); err != nil {
				return errors.Wrap(err, "failed to record failed login activity")
			}

			loginErr = errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")

			return nil
		}

		srv.policy.RecordSuccess(account)
		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to persist successful login")
		}
		if err := repoFactory.ActivityRepo().Append(ctx, &entity.ActivityEntry{
			Email:     account.Email,
			Action:    entity.ActivityLoginSuccess,
			IPAddress: input.IPAddress,
		}); err != nil {
			return errors.Wrap(err, "failed to record successful login activity")
		}

		identity = *entity.IdentityOf(account)

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute login transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute login transaction")
	}

	if loginErr != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", loginErr))

		return nil, loginErr
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("accountID", identity.ID))

	return &usecase.LoginOutput{Identity: identity}, nil
}

// Signup creates an inactive, unverified USER account and issues an email
// verification code.
func (srv *authService) Signup(ctx context.Context, input usecase.SignupInput) (*usecase.SignupOutput, error) {
	srv.log(ctx).Info("Starting signup", slog.String("email", input.Email))

	if input.Password != input.ConfirmPassword {
		return nil, errors.Wrap(domainerrors.ErrPasswordMismatch, "password confirmation does not match")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Warn("Password rejected during signup", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	newAccount := &entity.Account{
		Email:         input.Email,
		Name:          input.Name,
		PasswordHash:  hashedPassword,
		Role:          entity.RoleUser,
		Active:        false,
		EmailVerified: false,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		exists, err := accountRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check email availability")
		}
		if exists {
			return errors.Wrap(domainerrors.ErrEmailAlreadyExists, "email already registered")
		}

		return accountRepo.Create(ctx, newAccount)
	})
	if err != nil {
		srv.log(ctx).Warn("Signup failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	// Issue the verification code after the account exists. A delivery
	// failure must not undo the registration.
	if err := srv.verification.SendVerificationCode(ctx, newAccount.Email); err != nil {
		srv.log(ctx).Warn("Failed to issue verification code after signup",
			slog.String("email", newAccount.Email), slog.Any("error", err))
	}

	srv.log(ctx).Info("Signup completed, pending verification", slog.Any("accountID", newAccount.ID))

	return &usecase.SignupOutput{Account: newAccount}, nil
}

// Logout is a stateless extension point; there is no session store to clear.
func (srv *authService) Logout(ctx context.Context, accountID uuid.UUID) error {
	srv.log(ctx).Info("Logout", slog.Any("accountID", accountID))

	return nil
}

// GetCurrent returns the account behind an authenticated identity.
func (srv *authService) GetCurrent(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load current account")
	}

	return account, nil
}

// ChangePassword replaces the caller's password after verifying the current one.
func (srv *authService) ChangePassword(ctx context.Context, input usecase.ChangePasswordInput) error {
	srv.log(ctx).Info("Changing password", slog.Any("accountID", input.AccountID))

	if input.NewPassword != input.ConfirmPassword {
		return errors.Wrap(domainerrors.ErrPasswordMismatch, "password confirmation does not match")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		if err := accountRepo.AcquireUpdateLock(ctx, input.AccountID); err != nil {
			return errors.Wrap(err, "failed to lock account row for password change")
		}
		account, err := accountRepo.FindByID(ctx, input.AccountID)
		if err != nil {
			return errors.Wrap(err, "failed to load account for password change")
		}

		if !srv.hasher.Check(input.CurrentPassword, account.PasswordHash) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "current password mismatch")
		}
		if srv.hasher.Check(input.NewPassword, account.PasswordHash) {
			return errors.Wrap(domainerrors.ErrPasswordReuse, "new password equals current password")
		}

		newHash, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			return err
		}
		account.PasswordHash = newHash

		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to persist new password")
		}

		return repoFactory.ActivityRepo().Append(ctx, &entity.ActivityEntry{
			Email:     account.Email,
			Action:    entity.ActivityPasswordChanged,
			IPAddress: input.IPAddress,
		})
	})
	if err != nil {
		srv.log(ctx).Warn("Password change failed", slog.Any("accountID", input.AccountID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Password changed", slog.Any("accountID", input.AccountID))

	return nil
}

// ChangeEmail moves the account to a new address. The new address starts
// unverified and a fresh verification code is issued for it.
func (srv *authService) ChangeEmail(ctx context.Context, input usecase.ChangeEmailInput) error {
	srv.log(ctx).Info("Changing email", slog.Any("accountID", input.AccountID))

	var newEmail string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		if err := accountRepo.AcquireUpdateLock(ctx, input.AccountID); err != nil {
			return errors.Wrap(err, "failed to lock account row for email change")
		}
		account, err := accountRepo.FindByID(ctx, input.AccountID)
		if err != nil {
			return errors.Wrap(err, "failed to load account for email change")
		}

		if !srv.hasher.Check(input.Password, account.PasswordHash) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
		}

		exists, err := accountRepo.ExistsByEmail(ctx, input.NewEmail)
		if err != nil {
			return errors.Wrap(err, "failed to check email availability")
		}
		if exists {
			return errors.Wrap(domainerrors.ErrEmailAlreadyExists, "email already registered")
		}

		account.Email = input.NewEmail
		account.EmailVerified = false

		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to persist email change")
		}

		newEmail = account.Email

		return repoFactory.ActivityRepo().Append(ctx, &entity.ActivityEntry{
			Email:     account.Email,
			Action:    entity.ActivityEmailChanged,
			IPAddress: input.IPAddress,
		})
	})
	if err != nil {
		srv.log(ctx).Warn("Email change failed", slog.Any("accountID", input.AccountID), slog.Any("error", err))

		return err
	}

	if err := srv.verification.SendVerificationCode(ctx, newEmail); err != nil {
		srv.log(ctx).Warn("Failed to issue verification code after email change",
			slog.Any("accountID", input.AccountID), slog.Any("error", err))
	}

	return nil
}

// DeleteAccount removes the caller's account permanently. The deletion
// activity is written in the same transaction, before the row disappears.
func (srv *authService) DeleteAccount(ctx context.Context, accountID uuid.UUID, ip string) error {
	srv.log(ctx).Info("Deleting account", slog.Any("accountID", accountID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByID(ctx, accountID)
		if err != nil {
			return errors.Wrap(err, "failed to load account for deletion")
		}

		if err := repoFactory.ActivityRepo().Append(ctx, &entity.ActivityEntry{
			Email:     account.Email,
			Action:    entity.ActivityAccountDeleted,
			IPAddress: ip,
		}); err != nil {
			return errors.Wrap(err, "failed to record account deletion")
		}

		return accountRepo.Delete(ctx, accountID)
	})
	if err != nil {
		srv.log(ctx).Error("Account deletion failed", slog.Any("accountID", accountID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Account deleted", slog.Any("accountID", accountID))

	return nil
}
