package handler

import (
	"net/http"
	"testing"

	"nudge/internal/domain/entity"
	domainerrors "nudge/internal/domain/errors"
	mockUC "nudge/internal/mocks/usecase"
	"nudge/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRuleHandler(t *testing.T) (*RuleHandler, *mockUC.MockRuleUsecase) {
	t.Helper()

	uc := mockUC.NewMockRuleUsecase(t)

	return NewRuleHandler(RuleHandlerParams{RuleUC: uc, Logger: newDiscardLogger()}), uc
}

func TestRuleHandler_CreateRule(t *testing.T) {
	e := newTestEcho()
	coachID := uuid.New()
	clientID := uuid.New()

	t.Run("personal rule", func(t *testing.T) {
		h, uc := newTestRuleHandler(t)
		uc.EXPECT().
			CreateRule(mock.Anything, coachID, mock.MatchedBy(func(in *usecase.RuleInput) bool {
				return in.TargetID != nil && *in.TargetID == clientID && in.TimeOfDay == "07:30"
			})).
			Return(&entity.NotificationRule{ID: uuid.New(), OwnerID: coachID, TargetID: &clientID, TimeOfDay: "07:30"}, nil)

		body := `{"target_id":"` + clientID.String() + `","time_of_day":"07:30","message":"Log your breakfast"}`
		c, rec := newJSONContext(e, http.MethodPost, "/api/v1/rules", body, &coachID, entity.RoleCoach)

		require.NoError(t, h.CreateRule(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("rejects a malformed time", func(t *testing.T) {
		h, _ := newTestRuleHandler(t)

		for _, tod := range []string{"7:30", "24:00", "12:60", "noon"} {
			c, rec := newJSONContext(e, http.MethodPost, "/api/v1/rules", `{"time_of_day":"`+tod+`","message":"m"}`, &coachID, entity.RoleCoach)

			require.NoError(t, h.CreateRule(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code, tod)
		}
	})

	t.Run("target outside the roster", func(t *testing.T) {
		h, uc := newTestRuleHandler(t)
		uc.EXPECT().CreateRule(mock.Anything, coachID, mock.Anything).Return(nil, domainerrors.ErrRuleTargetNotClient)

		body := `{"target_id":"` + uuid.NewString() + `","time_of_day":"08:00","message":"m"}`
		c, rec := newJSONContext(e, http.MethodPost, "/api/v1/rules", body, &coachID, entity.RoleCoach)

		require.NoError(t, h.CreateRule(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "RULE_TARGET_NOT_CLIENT")
	})
}

func TestRuleHandler_UpdateRule(t *testing.T) {
	e := newTestEcho()
	coachID := uuid.New()
	ruleID := uuid.New()

	t.Run("invalid id", func(t *testing.T) {
		h, _ := newTestRuleHandler(t)

		c, rec := newJSONContext(e, http.MethodPut, "/api/v1/rules/x", `{"time_of_day":"08:00","message":"m"}`, &coachID, entity.RoleCoach)
		c.SetParamNames("id")
		c.SetParamValues("x")

		require.NoError(t, h.UpdateRule(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("foreign rule", func(t *testing.T) {
		h, uc := newTestRuleHandler(t)
		uc.EXPECT().UpdateRule(mock.Anything, coachID, ruleID, mock.Anything).Return(nil, domainerrors.ErrRuleOwnershipViolation)

		c, rec := newJSONContext(e, http.MethodPut, "/api/v1/rules/"+ruleID.String(), `{"time_of_day":"08:00","message":"m"}`, &coachID, entity.RoleCoach)
		c.SetParamNames("id")
		c.SetParamValues(ruleID.String())

		require.NoError(t, h.UpdateRule(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestRuleHandler_DeleteRule(t *testing.T) {
	e := newTestEcho()
	coachID := uuid.New()
	ruleID := uuid.New()

	h, uc := newTestRuleHandler(t)
	uc.EXPECT().DeleteRule(mock.Anything, coachID, ruleID).Return(nil)

	c, rec := newJSONContext(e, http.MethodDelete, "/api/v1/rules/"+ruleID.String(), "", &coachID, entity.RoleCoach)
	c.SetParamNames("id")
	c.SetParamValues(ruleID.String())

	require.NoError(t, h.DeleteRule(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
