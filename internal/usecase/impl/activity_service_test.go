package impl

import (
	"context"
	"testing"

	"aegis/internal/domain/entity"
	mockRepo "aegis/internal/mocks/repository"
	"aegis/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// activityServiceFixtures holds all test dependencies for activity service tests.
type activityServiceFixtures struct {
	service      usecase.ActivityUsecase
	activityRepo *mockRepo.MockActivityRepository
}

func createTestActivityService(t *testing.T) activityServiceFixtures {
	activityRepo := mockRepo.NewMockActivityRepository(t)

	service := NewActivityService(ActivityServiceParams{
		ActivityRepo: activityRepo,
		Logger:       newDiscardLogger(),
	})

	return activityServiceFixtures{
		service:      service,
		activityRepo: activityRepo,
	}
}

func TestActivityService_Record(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()

	fx.activityRepo.EXPECT().
		Append(ctx, mock.MatchedBy(func(entry *entity.ActivityEntry) bool {
			return entry.Email == "owner@example.com" &&
				entry.Action == entity.ActivityLoginSuccess &&
				entry.IPAddress == "203.0.113.7"
		})).
		Return(nil)

	err := fx.service.Record(ctx, "owner@example.com", entity.ActivityLoginSuccess, "203.0.113.7")

	assert.NoError(t, err)
}

func TestActivityService_Record_AppendFailure(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()

	fx.activityRepo.EXPECT().
		Append(ctx, mock.AnythingOfType("*entity.ActivityEntry")).
		Return(errors.New("insert failed"))

	err := fx.service.Record(ctx, "owner@example.com", entity.ActivityLoginFailed, "")

	assert.Error(t, err)
}

func TestActivityService_GetActivity(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	expected := []*entity.ActivityEntry{
		{Email: "owner@example.com", Action: entity.ActivityLoginSuccess},
		{Email: "owner@example.com", Action: entity.ActivityOtpSent},
	}

	fx.activityRepo.EXPECT().FindByEmail(ctx, "owner@example.com").Return(expected, nil)

	entries, err := fx.service.GetActivity(ctx, "owner@example.com")

	require.NoError(t, err)
	assert.Equal(t, expected, entries)
}

func TestActivityService_GetActivity_Empty(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()

	fx.activityRepo.EXPECT().FindByEmail(ctx, "quiet@example.com").Return(nil, nil)

	entries, err := fx.service.GetActivity(ctx, "quiet@example.com")

	require.NoError(t, err)
	assert.Empty(t, entries)
}
