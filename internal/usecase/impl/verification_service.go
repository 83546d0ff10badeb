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

// defaultCodeTTL is how long an issued code stays valid.
const defaultCodeTTL = 10 * time.Minute

// verificationService implements the VerificationUsecase interface.
type verificationService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	codeGen     service.CodeGenerator
	notifier    service.NotificationSender
	clock       service.Clock
	codeTTL     time.Duration
	logger      *slog.Logger
}

// VerificationServiceParams holds dependencies for verificationService, injected by Fx.
type VerificationServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	CodeGen     service.CodeGenerator
	Notifier    service.NotificationSender
	Clock       service.Clock
	Config      *config.Config
	Logger      *slog.Logger
}

// NewVerificationService is the constructor for verificationService.
func NewVerificationService(params VerificationServiceParams) usecase.VerificationUsecase {
	codeTTL := defaultCodeTTL
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.CodeTTL > 0 {
		codeTTL = params.Config.Auth.CodeTTL
	}

	return &verificationService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		codeGen:     params.CodeGen,
		notifier:    params.Notifier,
		clock:       params.Clock,
		codeTTL:     codeTTL,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *verificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendVerificationCode issues a fresh code for the email, superseding any
// pending one. The security record is committed before delivery is attempted,
// so a mail outage never leaves the caller without a code row to retry against.
func (srv *verificationService) SendVerificationCode(ctx context.Context, email string) error {
	srv.log(ctx).Info("Issuing verification code", slog.String("email", email))

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(domainerrors.ErrAccountNotFound, "no account for this email")
		}

		return errors.Wrap(err, "failed to find account for verification")
	}
	if account.EmailVerified {
		return errors.Wrap(domainerrors.ErrEmailAlreadyVerified, "email already verified")
	}

	code, err := srv.codeGen.NumericCode()
	if err != nil {
		return errors.Wrap(err, "failed to generate verification code")
	}

	newCode := &entity.OneTimeCode{
		Email:     account.Email,
		Purpose:   entity.PurposeEmailVerification,
		Code:      code,
		ExpiresAt: srv.clock.Now().Add(srv.codeTTL),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		codeRepo := repoFactory.CodeRepo()

		// Delete-then-insert keeps at most one live code per email.
		if err := codeRepo.DeleteByEmail(ctx, entity.PurposeEmailVerification, account.Email); err != nil {
			return errors.Wrap(err, "failed to supersede prior verification code")
		}
		if err := codeRepo.Create(ctx, newCode); err != nil {
			return errors.Wrap(err, "failed to store verification code")
		}

		return repoFactory.ActivityRepo().Append(ctx, &entity.ActivityEntry{
			Email:  account.Email,
			Action: entity.ActivityOtpSent,
		})
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute verification code transaction", slog.String("email", email), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute verification code transaction")
	}

	// Best-effort delivery: the committed code record must survive a mail
	// failure, otherwise the owner could never request another.
	if err := srv.notifier.SendCode(ctx, account.Email, entity.PurposeEmailVerification, code); err != nil {
		srv.log(ctx).Warn("Verification code delivery failed", slog.String("email", email), slog.Any("error", err))
	}

	return nil
}

// VerifyEmail consumes a pending code. A mismatch commits the attempt
// increment before the typed error is returned, so retries cannot reset the
// attempt budget.
func (srv *verificationService) VerifyEmail(ctx context.Context, email, code string, ip string) error {
	srv.log(ctx).Info("Verifying email", slog.String("email", email))

	var verifyErr error

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		codeRepo := repoFactory.CodeRepo()

		pending, err := codeRepo.FindByEmail(ctx, entity.PurposeEmailVerification, email)
		if err != nil {
			if errors.Is(err, repository.ErrCodeNotFound) {
				verifyErr = errors.Wrap(domainerrors.ErrOtpNotFound, "no pending verification code")

				return nil
			}

			return errors.Wrap(err, "failed to load verification code")
		}

		now := srv.clock.Now()
		switch {
		case pending.Verified:
			verifyErr = errors.Wrap(domainerrors.ErrOtpAlreadyUsed, "verification code already consumed")

			return nil
		case pending.ExpiredAt(now):
			verifyErr = errors.Wrap(domainerrors.ErrOtpExpired, "verification code expired")

			return nil
		case pending.Exhausted():
			verifyErr = errors.Wrap(domainerrors.ErrOtpAttemptsExceeded, "verification attempts exhausted")

			return nil
		}

		if pending.Code != code {
			pending.Attempts++
			if err := codeRepo.Update(ctx, pending); err != nil {
				return errors.Wrap(err, "failed to persist verification attempt")
			}

			verifyErr = errors.Wrap(domainerrors.ErrInvalidOtp, "verification code mismatch")

			return nil
		}

		accountRepo := repoFactory.AccountRepo()
		account, err := accountRepo.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				verifyErr = errors.Wrap(domainerrors.ErrAccountNotFound, "no account for this email")

				return nil
			}

			return errors.Wrap(err, "failed to load account for verification")
		}
		if err := accountRepo.AcquireUpdateLock(ctx, account.ID); err != nil {
			return errors.Wrap(err, "failed to lock account row for verification")
		}

		// Verification also activates the account: signup leaves it
		// inactive until the owner proves control of the mailbox.
		account.EmailVerified = true
		account.Active = true
		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to persist verified account")
		}

		if err := codeRepo.Delete(ctx, pending.ID); err != nil {
			return errors.Wrap(err, "failed to destroy consumed verification code")
		}

		return repoFactory.ActivityRepo().Append(ctx, &entity.ActivityEntry{
			Email:     account.Email,
			Action:    entity.ActivityEmailVerified,
			IPAddress: ip,
		})
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute email verification transaction", slog.String("email", email), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute email verification transaction")
	}

	if verifyErr != nil {
		srv.log(ctx).Warn("Email verification failed", slog.String("email", email), slog.Any("error", verifyErr))

		return verifyErr
	}

	srv.log(ctx).Info("Email verified", slog.String("email", email))

	return nil
}
