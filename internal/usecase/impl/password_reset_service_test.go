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
)

// passwordResetServiceFixtures holds all test dependencies for password reset service tests.
type passwordResetServiceFixtures struct {
	service     usecase.PasswordResetUsecase
	txManager   *mockRepo.MockTransactionManager
	accountRepo *mockRepo.MockAccountRepository
	hasher      *mockSvc.MockPasswordHasher
	codeGen     *mockSvc.MockCodeGenerator
	notifier    *mockSvc.MockNotificationSender
	clock       *mockSvc.MockClock
}

func createTestPasswordResetService(t *testing.T) passwordResetServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	codeGen := mockSvc.NewMockCodeGenerator(t)
	notifier := mockSvc.NewMockNotificationSender(t)
	clock := mockSvc.NewMockClock(t)

	service := NewPasswordResetService(PasswordResetServiceParams{
		TxManager:   txManager,
		AccountRepo: accountRepo,
		Hasher:      hasher,
		CodeGen:     codeGen,
		Notifier:    notifier,
		Clock:       clock,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return passwordResetServiceFixtures{
		service:     service,
		txManager:   txManager,
		accountRepo: accountRepo,
		hasher:      hasher,
		codeGen:     codeGen,
		notifier:    notifier,
		clock:       clock,
	}
}

func liveResetToken(email string, now time.Time) *entity.PasswordResetToken {
	return &entity.PasswordResetToken{
		ID:        uuid.New(),
		Token:     "3f6c1e9a-0b42-4c57-a8c0-2a2d1d9b4f11",
		Email:     email,
		ExpiresAt: now.Add(15 * time.Minute),
	}
}

func TestPasswordResetService_RequestResetLink_Success(t *testing.T) {
	fx := createTestPasswordResetService(t)

	ctx := context.Background()
	now := time.Now()
	account := activeAccount()

	fx.accountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
	fx.codeGen.EXPECT().Token().Return("3f6c1e9a-0b42-4c57-a8c0-2a2d1d9b4f11", nil)
	fx.clock.EXPECT().Now().Return(now)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTokenRepo := mockRepo.NewMockResetTokenRepository(t)
			mockActivityRepo := mockRepo.NewMockActivityRepository(t)

			mockFactory.EXPECT().TokenRepo().Return(mockTokenRepo)
			mockFactory.EXPECT().ActivityRepo().Return(mockActivityRepo)

			// Any prior token is superseded before the new one is stored.
			mockTokenRepo.EXPECT().DeleteByEmail(ctx, account.Email).Return(nil)

			mockTokenRepo.EXPECT().
				Create(ctx, mock.MatchedBy(func(token *entity.PasswordResetToken) bool {
					return token.Email == account.Email &&
						token.Token == "3f6c1e9a-0b42-4c57-a8c0-2a2d1d9b4f11" &&
						token.ExpiresAt.Equal(now.Add(15*time.Minute))
				})).
				Return(nil)

			mockActivityRepo.EXPECT().
				Append(ctx, mock.MatchedBy(func(entry *entity.ActivityEntry) bool {
					return entry.Action == entity.ActivityPasswordResetRequested
				})).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.notifier.EXPECT().
		SendResetLink(ctx, account.Email, "3f6c1e9a-0b42-4c57-a8c0-2a2d1d9b4f11").
		Return(nil)

	err := fx.service.RequestResetLink(ctx, account.Email, "203.0.113.7")

	assert.NoError(t, err)
}

func TestPasswordResetService_RequestResetLink_UnknownEmail(t *testing.T) {
	fx := createTestPasswordResetService(t)

	ctx := context.Background()

	fx.accountRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrAccountNotFound)

	// No token is issued and nothing is mailed, but the caller cannot tell.
	err := fx.service.RequestResetLink(ctx, "ghost@example.com", "203.0.113.7")

	assert.NoError(t, err)
}

func TestPasswordResetService_ResetWithToken_Success(t *testing.T) {
	fx := createTestPasswordResetService(t)

	ctx := context.Background()
	now := time.Now()
	account := activeAccount()
	token := liveResetToken(account.Email, now)

	input := usecase.ResetWithTokenInput{
		Token:           token.Token,
		NewPassword:     "Ev3nB3tter!",
		ConfirmPassword: "Ev3nB3tter!",
	}

	fx.clock.EXPECT().Now().Return(now)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTokenRepo := mockRepo.NewMockResetTokenRepository(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockActivityRepo := mockRepo.NewMockActivityRepository(t)

			mockFactory.EXPECT().TokenRepo().Return(mockTokenRepo)
			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().ActivityRepo().Return(mockActivityRepo)

			mockTokenRepo.EXPECT().FindByToken(ctx, token.Token).Return(token, nil)

			mockAccountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
			mockAccountRepo.EXPECT().AcquireUpdateLock(ctx, account.ID).Return(nil)

			fx.hasher.EXPECT().Hash(input.NewPassword).Return("new_hash", nil)

			mockAccountRepo.EXPECT().
				Update(ctx, mock.MatchedBy(func(updated *entity.Account) bool {
					return updated.PasswordHash == "new_hash"
				})).
				Return(nil)

			// Single use: the consumed token is destroyed.
			mockTokenRepo.EXPECT().Delete(ctx, token.ID).Return(nil)

			mockActivityRepo.EXPECT().
				Append(ctx, mock.MatchedBy(func(entry *entity.ActivityEntry) bool {
					return entry.Action == entity.ActivityPasswordResetSuccess
				})).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.ResetWithToken(ctx, input)

	assert.NoError(t, err)
}

func TestPasswordResetService_ResetWithToken_PasswordMismatch(t *testing.T) {
	fx := createTestPasswordResetService(t)

	err := fx.service.ResetWithToken(context.Background(), usecase.ResetWithTokenInput{
		Token:           "irrelevant",
		NewPassword:     "Ev3nB3tter!",
		ConfirmPassword: "different",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordMismatch))
}

func TestPasswordResetService_ResetWithToken_Invalid(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		name  string
		token *entity.PasswordResetToken
		// nil token means the lookup misses entirely.
	}{
		{name: "unknown token", token: nil},
		{
			name: "already used",
			token: func() *entity.PasswordResetToken {
				token := liveResetToken("owner@example.com", now)
				token.Used = true

				return token
			}(),
		},
		{
			name: "expired",
			token: func() *entity.PasswordResetToken {
				token := liveResetToken("owner@example.com", now)
				token.ExpiresAt = now.Add(-time.Minute)

				return token
			}(),
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			fx := createTestPasswordResetService(t)

			ctx := context.Background()
			input := usecase.ResetWithTokenInput{
				Token:           "3f6c1e9a-0b42-4c57-a8c0-2a2d1d9b4f11",
				NewPassword:     "Ev3nB3tter!",
				ConfirmPassword: "Ev3nB3tter!",
			}

			if testCase.token != nil {
				fx.clock.EXPECT().Now().Return(now)
			}

			fx.txManager.EXPECT().
				Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
				Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
					mockFactory := mockRepo.NewMockRepositoryFactory(t)
					mockTokenRepo := mockRepo.NewMockResetTokenRepository(t)

					mockFactory.EXPECT().TokenRepo().Return(mockTokenRepo)

					if testCase.token == nil {
						mockTokenRepo.EXPECT().
							FindByToken(ctx, input.Token).
							Return(nil, repository.ErrResetTokenNotFound)
					} else {
						mockTokenRepo.EXPECT().FindByToken(ctx, input.Token).Return(testCase.token, nil)
					}

					_ = fn(mockFactory)
				}).
				Return(nil)

			// Absent, used and expired tokens are indistinguishable.
			err := fx.service.ResetWithToken(ctx, input)

			assert.True(t, errors.Is(err, domainerrors.ErrInvalidResetToken))
		})
	}
}

func TestPasswordResetService_RequestResetCode_Success(t *testing.T) {
	fx := createTestPasswordResetService(t)

	ctx := context.Background()
	now := time.Now()
	account := activeAccount()

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

			mockCodeRepo.EXPECT().
				DeleteByEmail(ctx, entity.PurposePasswordReset, account.Email).
				Return(nil)

			mockCodeRepo.EXPECT().
				Create(ctx, mock.MatchedBy(func(code *entity.OneTimeCode) bool {
					return code.Purpose == entity.PurposePasswordReset && code.Code == "654321"
				})).
				Return(nil)

			mockActivityRepo.EXPECT().
				Append(ctx, mock.MatchedBy(func(entry *entity.ActivityEntry) bool {
					return entry.Action == entity.ActivityPasswordResetRequested
				})).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.notifier.EXPECT().
		SendCode(ctx, account.Email, entity.PurposePasswordReset, "654321").
		Return(nil)

	err := fx.service.RequestResetCode(ctx, account.Email, "203.0.113.7")

	assert.NoError(t, err)
}

func TestPasswordResetService_RequestResetCode_UnknownEmail(t *testing.T) {
	fx := createTestPasswordResetService(t)

	ctx := context.Background()

	fx.accountRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrAccountNotFound)

	err := fx.service.RequestResetCode(ctx, "ghost@example.com", "")

	assert.NoError(t, err)
}

func TestPasswordResetService_ResetWithCode_Success(t *testing.T) {
	fx := createTestPasswordResetService(t)

	ctx := context.Background()
	now := time.Now()
	account := activeAccount()
	pending := &entity.OneTimeCode{
		ID:        uuid.New(),
		Email:     account.Email,
		Purpose:   entity.PurposePasswordReset,
		Code:      "654321",
		ExpiresAt: now.Add(10 * time.Minute),
	}

	input := usecase.ResetWithCodeInput{
		Email:           account.Email,
		Code:            "654321",
		NewPassword:     "Ev3nB3tter!",
		ConfirmPassword: "Ev3nB3tter!",
	}

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
				FindByEmail(ctx, entity.PurposePasswordReset, account.Email).
				Return(pending, nil)

			mockAccountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
			mockAccountRepo.EXPECT().AcquireUpdateLock(ctx, account.ID).Return(nil)

			fx.hasher.EXPECT().Hash(input.NewPassword).Return("new_hash", nil)

			mockAccountRepo.EXPECT().
				Update(ctx, mock.MatchedBy(func(updated *entity.Account) bool {
					return updated.PasswordHash == "new_hash"
				})).
				Return(nil)

			mockCodeRepo.EXPECT().Delete(ctx, pending.ID).Return(nil)

			mockActivityRepo.EXPECT().
				Append(ctx, mock.MatchedBy(func(entry *entity.ActivityEntry) bool {
					return entry.Action == entity.ActivityPasswordResetSuccess
				})).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.ResetWithCode(ctx, input)

	assert.NoError(t, err)
}

func TestPasswordResetService_ResetWithCode_Mismatch_PersistsAttempt(t *testing.T) {
	fx := createTestPasswordResetService(t)

	ctx := context.Background()
	now := time.Now()
	pending := &entity.OneTimeCode{
		ID:        uuid.New(),
		Email:     "owner@example.com",
		Purpose:   entity.PurposePasswordReset,
		Code:      "654321",
		ExpiresAt: now.Add(10 * time.Minute),
	}

	input := usecase.ResetWithCodeInput{
		Email:           pending.Email,
		Code:            "000000",
		NewPassword:     "Ev3nB3tter!",
		ConfirmPassword: "Ev3nB3tter!",
	}

	fx.clock.EXPECT().Now().Return(now)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCodeRepo := mockRepo.NewMockOneTimeCodeRepository(t)

			mockFactory.EXPECT().CodeRepo().Return(mockCodeRepo)

			mockCodeRepo.EXPECT().
				FindByEmail(ctx, entity.PurposePasswordReset, pending.Email).
				Return(pending, nil)

			mockCodeRepo.EXPECT().
				Update(ctx, mock.MatchedBy(func(updated *entity.OneTimeCode) bool {
					return updated.Attempts == 1
				})).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.ResetWithCode(ctx, input)

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOtp))
}

func TestPasswordResetService_ResetWithCode_WeakPassword(t *testing.T) {
	fx := createTestPasswordResetService(t)

	ctx := context.Background()
	now := time.Now()
	account := activeAccount()
	pending := &entity.OneTimeCode{
		ID:        uuid.New(),
		Email:     account.Email,
		Purpose:   entity.PurposePasswordReset,
		Code:      "654321",
		ExpiresAt: now.Add(10 * time.Minute),
	}

	input := usecase.ResetWithCodeInput{
		Email:           account.Email,
		Code:            "654321",
		NewPassword:     "weakpass",
		ConfirmPassword: "weakpass",
	}

	fx.clock.EXPECT().Now().Return(now)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCodeRepo := mockRepo.NewMockOneTimeCodeRepository(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().CodeRepo().Return(mockCodeRepo)
			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)

			mockCodeRepo.EXPECT().
				FindByEmail(ctx, entity.PurposePasswordReset, account.Email).
				Return(pending, nil)

			mockAccountRepo.EXPECT().FindByEmail(ctx, account.Email).Return(account, nil)
			mockAccountRepo.EXPECT().AcquireUpdateLock(ctx, account.ID).Return(nil)

			fx.hasher.EXPECT().
				Hash(input.NewPassword).
				Return("", errors.Wrap(domainerrors.ErrPasswordStrength, "must contain at least one uppercase letter"))

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.ResetWithCode(ctx, input)

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}
