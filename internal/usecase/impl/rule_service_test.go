package impl

import (
	"context"
	"testing"

	"nudge/internal/domain/entity"
	domainerrors "nudge/internal/domain/errors"
	"nudge/internal/domain/repository"
	mockRepo "nudge/internal/mocks/repository"
	"nudge/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRuleService(t *testing.T) (usecase.RuleUsecase, *mockRepo.MockRuleRepository, *mockRepo.MockRelationshipRepository) {
	t.Helper()

	mockRuleRepo := mockRepo.NewMockRuleRepository(t)
	mockRelationRepo := mockRepo.NewMockRelationshipRepository(t)

	svc := NewRuleService(RuleServiceParams{
		RuleRepo:     mockRuleRepo,
		RelationRepo: mockRelationRepo,
		Logger:       newDiscardLogger(),
	})

	return svc, mockRuleRepo, mockRelationRepo
}

func TestRuleService_CreateRule_GlobalAppliesDefaults(t *testing.T) {
	svc, mockRuleRepo, _ := newTestRuleService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	mockRuleRepo.EXPECT().
		CreateRule(ctx, mock.MatchedBy(func(r *entity.NotificationRule) bool {
			return r.OwnerID == ownerID && r.IsGlobal() && r.Title == entity.DefaultRuleTitle && r.URL == entity.DefaultDeepLink
		})).
		Return(nil)

	rule, err := svc.CreateRule(ctx, ownerID, &usecase.RuleInput{TimeOfDay: "07:30", Message: "Drink water"})
	require.NoError(t, err)
	assert.Equal(t, "07:30", rule.TimeOfDay)
}

func TestRuleService_CreateRule_PersonalTargetMustBeClient(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	primary, linked, stranger := uuid.New(), uuid.New(), uuid.New()

	t.Run("linked client accepted", func(t *testing.T) {
		svc, mockRuleRepo, mockRelationRepo := newTestRuleService(t)

		mockRelationRepo.EXPECT().FindPrimaryClientIDs(ctx, ownerID).Return([]uuid.UUID{primary}, nil)
		mockRelationRepo.EXPECT().FindLinkedClientIDs(ctx, ownerID).Return([]uuid.UUID{linked}, nil)
		mockRuleRepo.EXPECT().CreateRule(ctx, mock.AnythingOfType("*entity.NotificationRule")).Return(nil)

		rule, err := svc.CreateRule(ctx, ownerID, &usecase.RuleInput{TargetID: &linked, TimeOfDay: "20:00", Message: "Sleep"})
		require.NoError(t, err)
		assert.Equal(t, linked, *rule.TargetID)
	})

	t.Run("stranger rejected", func(t *testing.T) {
		svc, _, mockRelationRepo := newTestRuleService(t)

		mockRelationRepo.EXPECT().FindPrimaryClientIDs(ctx, ownerID).Return([]uuid.UUID{primary}, nil)
		mockRelationRepo.EXPECT().FindLinkedClientIDs(ctx, ownerID).Return([]uuid.UUID{linked}, nil)

		_, err := svc.CreateRule(ctx, ownerID, &usecase.RuleInput{TargetID: &stranger, TimeOfDay: "20:00", Message: "Sleep"})
		assert.ErrorIs(t, err, domainerrors.ErrRuleTargetNotClient)
	})
}

func TestRuleService_CreateRule_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.RuleInput
	}{
		{name: "nil", input: nil},
		{name: "unpadded hour", input: &usecase.RuleInput{TimeOfDay: "9:00", Message: "m"}},
		{name: "out of range", input: &usecase.RuleInput{TimeOfDay: "24:00", Message: "m"}},
		{name: "seconds", input: &usecase.RuleInput{TimeOfDay: "09:00:00", Message: "m"}},
		{name: "empty message", input: &usecase.RuleInput{TimeOfDay: "09:00", Message: "  "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestRuleService(t)

			_, err := svc.CreateRule(context.Background(), uuid.New(), tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestRuleService_UpdateRule(t *testing.T) {
	ctx := context.Background()
	ownerID, ruleID := uuid.New(), uuid.New()

	t.Run("owner updates", func(t *testing.T) {
		svc, mockRuleRepo, _ := newTestRuleService(t)

		existing := &entity.NotificationRule{ID: ruleID, OwnerID: ownerID, TimeOfDay: "08:00", Message: "old"}
		mockRuleRepo.EXPECT().FindRuleByID(ctx, ruleID).Return(existing, nil)
		mockRuleRepo.EXPECT().
			UpdateRule(ctx, mock.MatchedBy(func(r *entity.NotificationRule) bool {
				return r.ID == ruleID && r.TimeOfDay == "08:15" && r.Message == "new"
			})).
			Return(nil)

		rule, err := svc.UpdateRule(ctx, ownerID, ruleID, &usecase.RuleInput{TimeOfDay: "08:15", Message: "new"})
		require.NoError(t, err)
		assert.Equal(t, "new", rule.Message)
	})

	t.Run("other coach forbidden", func(t *testing.T) {
		svc, mockRuleRepo, _ := newTestRuleService(t)

		existing := &entity.NotificationRule{ID: ruleID, OwnerID: uuid.New(), TimeOfDay: "08:00", Message: "old"}
		mockRuleRepo.EXPECT().FindRuleByID(ctx, ruleID).Return(existing, nil)

		_, err := svc.UpdateRule(ctx, ownerID, ruleID, &usecase.RuleInput{TimeOfDay: "08:15", Message: "new"})
		assert.ErrorIs(t, err, domainerrors.ErrRuleOwnershipViolation)
	})

	t.Run("missing rule", func(t *testing.T) {
		svc, mockRuleRepo, _ := newTestRuleService(t)

		mockRuleRepo.EXPECT().FindRuleByID(ctx, ruleID).Return(nil, repository.ErrRuleNotFound)

		_, err := svc.UpdateRule(ctx, ownerID, ruleID, &usecase.RuleInput{TimeOfDay: "08:15", Message: "new"})
		assert.ErrorIs(t, err, domainerrors.ErrRuleNotFound)
	})
}

func TestRuleService_DeleteRule(t *testing.T) {
	svc, mockRuleRepo, _ := newTestRuleService(t)

	ctx := context.Background()
	ownerID, ruleID := uuid.New(), uuid.New()

	mockRuleRepo.EXPECT().FindRuleByID(ctx, ruleID).Return(&entity.NotificationRule{ID: ruleID, OwnerID: ownerID}, nil)
	mockRuleRepo.EXPECT().DeleteRule(ctx, ruleID).Return(nil)

	require.NoError(t, svc.DeleteRule(ctx, ownerID, ruleID))
}

func TestRuleService_ListRules(t *testing.T) {
	svc, mockRuleRepo, _ := newTestRuleService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	rules := []*entity.NotificationRule{{ID: uuid.New(), OwnerID: ownerID}}

	mockRuleRepo.EXPECT().FindRulesByOwner(ctx, ownerID).Return(rules, nil)

	got, err := svc.ListRules(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, rules, got)
}
