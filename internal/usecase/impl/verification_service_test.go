package impl

import (
	"context"
	"testing"
	"time"

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

// verificationServiceFixtures holds all test dependencies for verification service tests.
type verificationServiceFixtures struct {
	service     usecase.VerificationUsecase
	txManager   *mockRepo.MockTransactionManager
	accountRepo *mockRepo.MockAccountRepository
	codeGen     *mockSvc.MockCodeGenerator
	notifier    *mockSvc.MockNotificationSender
	clock       *mockSvc.MockClock
}

func createTestVerificationService(t *testing.T) verificationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	codeGen := mockSvc.NewMockCodeGenerator(t)
	notifier := mockSvc.NewMockNotificationSender(t)
	clock := mockSvc.NewMockClock(t)

	service := NewVerificationService(VerificationServiceParams{
		TxManager:   txManager,
		AccountRepo: accountRepo,
		CodeGen:     codeGen,
		Notifier:    notifier,
		Clock:       clock,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return verificationServiceFixtures{
		service:     service,
		txManager:   txManager,
		accountRepo: accountRepo,
		codeGen:     codeGen,
		notifier:    notifier,
		clock:       clock,
	}
}

func pendingVerificationCode(email string, now time.Time) *entity.OneTimeCode {
	return &entity.OneTimeCode{
		ID:        uuid.New(),
		Email:     email,
		Purpose:   entity.PurposeEmailVerification,
		Code:      "654321",
		ExpiresAt: now.Add(10 * time.Minute),
	}
}

func TestVerificationService_SendVerificationCode_Success(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	now := time.Now()
	account := activeAccount()
	account.EmailVerified = false

	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	fx.codeGen.EXPECT().NumericCode().Return("654321", nil)
	fx.clock.EXPECT().Now().Return(now)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCodeRepo := mockRepo.NewMockOneTimeCodeRepository(t)
			mockActivityRepo := mockRepo.NewMockActivityRepository(t)

			mockFactory.EXPECT().CodeRepo().Return(mockCodeRepo)
			mockFactory.EXPECT().ActivityRepo().Return(mockActivityRepo)

			// Any prior code is superseded before the new one is stored.
			mockCodeRepo.EXPECT().
				DeleteByEmail(ctx, entity.PurposeEmailVerification, account.Email).
				Return(nil)

			mockCodeRepo.EXPECT().
				Create(ctx, mock.MatchedBy(func(code *entity.OneTimeCode) bool {
					return code.Email == account.Email &&
						code.Purpose == entity.PurposeEmailVerification &&
						code.Code == "654321" &&
						code.ExpiresAt.Equal(now.Add(10*time.Minute))
				})).
				Return(nil)

			mockActivityRepo.EXPECT().
				Append(ctx, mock.MatchedBy(func(entry *entity.ActivityEntry) bool {
					return entry.Action == entity.ActivityOtpSent && entry.Email == account.Email
				})).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.notifier.EXPECT().
		SendCode(ctx, account.Email, entity.PurposeEmailVerification, "654321").
		Return(nil)

	err := fx.service.SendVerificationCode(ctx, account.Email)

	assert.NoError(t, err)
}

func TestVerificationService_SendVerificationCode_DeliveryFailureIsNotFatal(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	account := activeAccount()
	account.EmailVerified = false

	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	fx.codeGen.EXPECT().NumericCode().Return("654321", nil)
	fx.clock.EXPECT().Now().Return(time.Now())

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCodeRepo := mockRepo.NewMockOneTimeCodeRepository(t)
			mockActivityRepo := mockRepo.NewMockActivityRepository(t)

			mockFactory.EXPECT().CodeRepo().Return(mockCodeRepo)
			mockFactory.EXPECT().ActivityRepo().Return(mockActivityRepo)

			mockCodeRepo.EXPECT().
				DeleteByEmail(ctx, entity.PurposeEmailVerification, account.Email).
				Return(nil)
			mockCodeRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.OneTimeCode")).Return(nil)
			mockActivityRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.ActivityEntry")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.notifier.EXPECT().
		SendCode(ctx, account.Email, entity.PurposeEmailVerification, "654321").
		Return(errors.New("smtp unreachable"))

	// The committed code record survives a mail outage.
	err := fx.service.SendVerificationCode(ctx, account.Email)

	assert.NoError(t, err)
}

func TestVerificationService_SendVerificationCode_AlreadyVerified(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	account := activeAccount()

	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)

	err := fx.service.SendVerificationCode(ctx, account.Email)

	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyVerified))
}

func TestVerificationService_SendVerificationCode_UnknownEmail(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()

	fx.accountRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrAccountNotFound)

	err := fx.service.SendVerificationCode(ctx, "ghost@example.com")

	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestVerificationService_VerifyEmail_Success(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	now := time.Now()
	account := activeAccount()
	account.Active = false
	account.EmailVerified = false
	pending := pendingVerificationCode(account.Email, now)

	fx.clock.EXPECT().Now().Return(now)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCodeRepo := mockRepo.NewMockOneTimeCodeRepository(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockActivityRepo := mockRepo.NewMockActivityRepository(t)

			mockFactory.EXPECT().CodeRepo().Return(mockCodeRepo)
			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().ActivityRepo().Return(mockActivityRepo)

			mockCodeRepo.EXPECT().
				FindByEmail(ctx, entity.PurposeEmailVerification, account.Email).
				Return(pending, nil)

			mockAccountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
			mockAccountRepo.EXPECT().AcquireUpdateLock(ctx, account.ID).Return(nil)

			// Verification also activates the account.
			mockAccountRepo.EXPECT().
				Update(ctx, mock.MatchedBy(func(updated *entity.Account) bool {
					return updated.EmailVerified && updated.Active
				})).
				Return(nil)

			mockCodeRepo.EXPECT().Delete(ctx, pending.ID).Return(nil)

			mockActivityRepo.EXPECT().
				Append(ctx, mock.MatchedBy(func(entry *entity.ActivityEntry) bool {
					return entry.Action == entity.ActivityEmailVerified
				})).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.VerifyEmail(ctx, account.Email, "654321", "203.0.113.7")

	assert.NoError(t, err)
}

func TestVerificationService_VerifyEmail_Mismatch_PersistsAttempt(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	now := time.Now()
	pending := pendingVerificationCode("owner@example.com", now)
	pending.Attempts = 2

	fx.clock.EXPECT().Now().Return(now)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCodeRepo := mockRepo.NewMockOneTimeCodeRepository(t)

			mockFactory.EXPECT().CodeRepo().Return(mockCodeRepo)

			mockCodeRepo.EXPECT().
				FindByEmail(ctx, entity.PurposeEmailVerification, pending.Email).
				Return(pending, nil)

			// The attempt increment commits even though the call fails.
			mockCodeRepo.EXPECT().
				Update(ctx, mock.MatchedBy(func(updated *entity.OneTimeCode) bool {
					return updated.Attempts == 3
				})).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.VerifyEmail(ctx, pending.Email, "000000", "")

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOtp))
}

func TestVerificationService_VerifyEmail_Rejections(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		name    string
		pending *entity.OneTimeCode
		wantErr error
	}{
		{
			name: "already consumed",
			pending: func() *entity.OneTimeCode {
				code := pendingVerificationCode("owner@example.com", now)
				code.Verified = true

				return code
			}(),
			wantErr: domainerrors.ErrOtpAlreadyUsed,
		},
		{
			name: "expired",
			pending: func() *entity.OneTimeCode {
				code := pendingVerificationCode("owner@example.com", now)
				code.ExpiresAt = now.Add(-time.Minute)

				return code
			}(),
			wantErr: domainerrors.ErrOtpExpired,
		},
		{
			name: "attempts exhausted",
			pending: func() *entity.OneTimeCode {
				code := pendingVerificationCode("owner@example.com", now)
				code.Attempts = entity.MaxCodeAttempts

				return code
			}(),
			wantErr: domainerrors.ErrOtpAttemptsExceeded,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			fx := createTestVerificationService(t)

			ctx := context.Background()

			fx.clock.EXPECT().Now().Return(now)

			fx.txManager.EXPECT().
				Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
				Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
					mockFactory := mockRepo.NewMockRepositoryFactory(t)
					mockCodeRepo := mockRepo.NewMockOneTimeCodeRepository(t)

					mockFactory.EXPECT().CodeRepo().Return(mockCodeRepo)

					mockCodeRepo.EXPECT().
						FindByEmail(ctx, entity.PurposeEmailVerification, testCase.pending.Email).
						Return(testCase.pending, nil)

					_ = fn(mockFactory)
				}).
				Return(nil)

			// Even a correct guess is rejected in these states.
			err := fx.service.VerifyEmail(ctx, testCase.pending.Email, testCase.pending.Code, "")

			assert.True(t, errors.Is(err, testCase.wantErr))
		})
	}
}

func TestVerificationService_VerifyEmail_NoPendingCode(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCodeRepo := mockRepo.NewMockOneTimeCodeRepository(t)

			mockFactory.EXPECT().CodeRepo().Return(mockCodeRepo)

			mockCodeRepo.EXPECT().
				FindByEmail(ctx, entity.PurposeEmailVerification, "owner@example.com").
				Return(nil, repository.ErrCodeNotFound)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.VerifyEmail(ctx, "owner@example.com", "654321", "")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOtpNotFound))
}
