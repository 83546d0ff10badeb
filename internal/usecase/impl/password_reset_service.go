package impl

import (
	"context"
	"log/slog"
	"time"

	"aegis/config"
	deliverycontext "aegis/internal/delivery/context"
	"aegis/internal/domain/entity"
	domainerrors "aegis/internal/domain/errors"
	"aegis/internal/domain/repository"
	"aegis/internal/domain/service"
	"aegis/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultResetTokenTTL is how long an issued reset token stays valid.
const defaultResetTokenTTL = 15 * time.Minute

// passwordResetService implements the PasswordResetUsecase interface.
type passwordResetService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	codeGen     service.CodeGenerator
	notifier    service.NotificationSender
	clock       service.Clock
	tokenTTL    time.Duration
	codeTTL     time.Duration
	logger      *slog.Logger
}

// PasswordResetServiceParams holds dependencies for passwordResetService, injected by Fx.
type PasswordResetServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	CodeGen     service.CodeGenerator
	Notifier    service.NotificationSender
	Clock       service.Clock
	Config      *config.Config
	Logger      *slog.Logger
}

// NewPasswordResetService is the constructor for passwordResetService.
func NewPasswordResetService(params PasswordResetServiceParams) usecase.PasswordResetUsecase {
	tokenTTL := defaultResetTokenTTL
	codeTTL := defaultCodeTTL
	if params.Config != nil && params.Config.Auth != nil {
		if params.Config.Auth.ResetTokenTTL > 0 {
			tokenTTL = params.Config.Auth.ResetTokenTTL
		}
		if params.Config.Auth.CodeTTL > 0 {
			codeTTL = params.Config.Auth.CodeTTL
		}
	}

	return &passwordResetService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		codeGen:     params.CodeGen,
		notifier:    params.Notifier,
		clock:       params.Clock,
		tokenTTL:    tokenTTL,
		codeTTL:     codeTTL,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *passwordResetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestResetLink issues a reset token and mails a link. An unknown email
// returns success without issuing anything, so the endpoint cannot be used
// to probe which addresses hold accounts.
func (srv *passwordResetService) RequestResetLink(ctx context.Context, email string, ip string) error {
	srv.log(ctx).Info("Password reset link requested", slog.String("email", email))

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Debug("Reset link requested for unknown email", slog.String("email", email))

			return nil
		}

		return errors.Wrap(err, "failed to find account for reset link")
	}

	token, err := srv.codeGen.Token()
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}

	newToken := &entity.PasswordResetToken{
		Token:     token,
		Email:     account.Email,
		ExpiresAt: srv.clock.Now().Add(srv.tokenTTL),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.TokenRepo()

		// Delete-then-insert keeps at most one live token per email.
		if err := tokenRepo.DeleteByEmail(ctx, account.Email); err != nil {
			return errors.Wrap(err, "failed to supersede prior reset token")
		}
		if err := tokenRepo.Create(ctx, newToken); err != nil {
			return errors.Wrap(err, "failed to store reset token")
		}

		return repoFactory.ActivityRepo().Append(ctx, &entity.ActivityEntry{
			Email:     account.Email,
			Action:    entity.ActivityPasswordResetRequested,
			IPAddress: ip,
		})
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute reset token transaction", slog.String("email", email), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute reset token transaction")
	}

	if err := srv.notifier.SendResetLink(ctx, account.Email, token); err != nil {
		srv.log(ctx).Warn("Reset link delivery failed", slog.String("email", email), slog.Any("error", err))
	}

	return nil
}

// ResetWithToken consumes a reset token and stores the new password.
// Absent, expired and already-used tokens are indistinguishable to the caller.
func (srv *passwordResetService) ResetWithToken(ctx context.Context, input usecase.ResetWithTokenInput) error {
	srv.log(ctx).Info("Password reset with token")

	if input.NewPassword != input.ConfirmPassword {
		return errors.Wrap(domainerrors.ErrPasswordMismatch, "password confirmation does not match")
	}

	var resetErr error

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.TokenRepo()

		token, err := tokenRepo.FindByToken(ctx, input.Token)
		if err != nil {
			if errors.Is(err, repository.ErrResetTokenNotFound) {
				resetErr = errors.Wrap(domainerrors.ErrInvalidResetToken, "unknown reset token")

				return nil
			}

			return errors.Wrap(err, "failed to load reset token")
		}
		if token.Used || token.ExpiredAt(srv.clock.Now()) {
			resetErr = errors.Wrap(domainerrors.ErrInvalidResetToken, "reset token no longer valid")

			return nil
		}

		accountRepo := repoFactory.AccountRepo()
		account, err := accountRepo.FindByEmail(ctx, token.Email)
		if err != nil {
			return errors.Wrap(err, "failed to load account for reset")
		}
		if err := accountRepo.AcquireUpdateLock(ctx, account.ID); err != nil {
			return errors.Wrap(err, "failed to lock account row for reset")
		}

		newHash, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			resetErr = err

			return nil
		}
		account.PasswordHash = newHash
		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to persist reset password")
		}

		// Single use: the consumed token is destroyed, not flagged.
		if err := tokenRepo.Delete(ctx, token.ID); err != nil {
			return errors.Wrap(err, "failed to destroy consumed reset token")
		}

		return repoFactory.ActivityRepo().Append(ctx, &entity.ActivityEntry{
			Email:     account.Email,
			Action:    entity.ActivityPasswordResetSuccess,
			IPAddress: input.IPAddress,
		})
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute password reset transaction", slog.Any("error", err))

		return errors.Wrap(err, "failed to execute password reset transaction")
	}

	if resetErr != nil {
		srv.log(ctx).Warn("Password reset failed", slog.Any("error", resetErr))

		return resetErr
	}

	srv.log(ctx).Info("Password reset completed")

	return nil
}

// RequestResetCode issues a reset code and mails it. Same anti-enumeration
// behavior as RequestResetLink.
func (srv *passwordResetService) RequestResetCode(ctx context.Context, email string, ip string) error {
	srv.log(ctx).Info("Password reset code requested", slog.String("email", email))

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Debug("Reset code requested for unknown email", slog.String("email", email))

			return nil
		}

		return errors.Wrap(err, "failed to find account for reset code")
	}

	code, err := srv.codeGen.NumericCode()
	if err != nil {
		return errors.Wrap(err, "failed to generate reset code")
	}

	newCode := &entity.OneTimeCode{
		Email:     account.Email,
		Purpose:   entity.PurposePasswordReset,
		Code:      code,
		ExpiresAt: srv.clock.Now().Add(srv.codeTTL),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		codeRepo := repoFactory.CodeRepo()

		if err := codeRepo.DeleteByEmail(ctx, entity.PurposePasswordReset, account.Email); err != nil {
			return errors.Wrap(err, "failed to supersede prior reset code")
		}
		if err := codeRepo.Create(ctx, newCode); err != nil {
			return errors.Wrap(err, "failed to store reset code")
		}

		return repoFactory.ActivityRepo().Append(ctx, &entity.ActivityEntry{
			Email:     account.Email,
			Action:    entity.ActivityPasswordResetRequested,
			IPAddress: ip,
		})
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute reset code transaction", slog.String("email", email), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute reset code transaction")
	}

	if err := srv.notifier.SendCode(ctx, account.Email, entity.PurposePasswordReset, code); err != nil {
		srv.log(ctx).Warn("Reset code delivery failed", slog.String("email", email), slog.Any("error", err))
	}

	return nil
}

// ResetWithCode consumes a reset code and stores the new password. A mismatch
// commits the attempt increment before the typed error is returned.
func (srv *passwordResetService) ResetWithCode(ctx context.Context, input usecase.ResetWithCodeInput) error {
	srv.log(ctx).Info("Password reset with code", slog.String("email", input.Email))

	if input.NewPassword != input.ConfirmPassword {
		return errors.Wrap(domainerrors.ErrPasswordMismatch, "password confirmation does not match")
	}

	var resetErr error

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		codeRepo := repoFactory.CodeRepo()

		pending, err := codeRepo.FindByEmail(ctx, entity.PurposePasswordReset, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrCodeNotFound) {
				resetErr = errors.Wrap(domainerrors.ErrOtpNotFound, "no pending reset code")

				return nil
			}

			return errors.Wrap(err, "failed to load reset code")
		}

		now := srv.clock.Now()
		switch {
		case pending.Verified:
			resetErr = errors.Wrap(domainerrors.ErrOtpAlreadyUsed, "reset code already consumed")

			return nil
		case pending.ExpiredAt(now):
			resetErr = errors.Wrap(domainerrors.ErrOtpExpired, "reset code expired")

			return nil
		case pending.Exhausted():
			resetErr = errors.Wrap(domainerrors.ErrOtpAttemptsExceeded, "reset attempts exhausted")

			return nil
		}

		if pending.Code != input.Code {
			pending.Attempts++
			if err := codeRepo.Update(ctx, pending); err != nil {
				return errors.Wrap(err, "failed to persist reset attempt")
			}

			resetErr = errors.Wrap(domainerrors.ErrInvalidOtp, "reset code mismatch")

			return nil
		}

		accountRepo := repoFactory.AccountRepo()
		account, err := accountRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to load account for reset")
		}
		if err := accountRepo.AcquireUpdateLock(ctx, account.ID); err != nil {
			return errors.Wrap(err, "failed to lock account row for reset")
		}

		newHash, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			resetErr = err

			return nil
		}
		account.PasswordHash = newHash
		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to persist reset password")
		}

		if err := codeRepo.Delete(ctx, pending.ID); err != nil {
			return errors.Wrap(err, "failed to destroy consumed reset code")
		}

		return repoFactory.ActivityRepo().Append(ctx, &entity.ActivityEntry{
			Email:     account.Email,
			Action:    entity.ActivityPasswordResetSuccess,
			IPAddress: input.IPAddress,
		})
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute reset code transaction", slog.String("email", input.Email), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute reset code transaction")
	}

	if resetErr != nil {
		srv.log(ctx).Warn("Password reset failed", slog.String("email", input.Email), slog.Any("error", resetErr))

		return resetErr
	}

	srv.log(ctx).Info("Password reset completed", slog.String("email", input.Email))

	return nil
}
