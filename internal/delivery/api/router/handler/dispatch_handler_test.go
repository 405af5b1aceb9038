package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"nudge/internal/domain/entity"
	domainerrors "nudge/internal/domain/errors"
	mockUC "nudge/internal/mocks/usecase"
	"nudge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestDispatchHandler(t *testing.T) (*DispatchHandler, *mockUC.MockDispatchUsecase) {
	t.Helper()

	uc := mockUC.NewMockDispatchUsecase(t)

	return NewDispatchHandler(DispatchHandlerParams{DispatchUC: uc, Logger: newDiscardLogger()}), uc
}

func TestDispatchHandler_Dispatch(t *testing.T) {
	e := newTestEcho()
	adminID := uuid.New()
	userID := uuid.New()

	t.Run("returns flat counts on success", func(t *testing.T) {
		h, uc := newTestDispatchHandler(t)
		uc.EXPECT().
			Dispatch(mock.Anything, mock.MatchedBy(func(cmd *usecase.DispatchCommand) bool {
				return cmd.Type == entity.DispatchTypeDirect && cmd.UserID == userID.String() && cmd.Body == "hi"
			})).
			Return(&entity.DispatchSummary{Message: "Notification sent", Sent: 2, Failed: 1}, nil)

		body := `{"type":"direct","user_id":"` + userID.String() + `","body":"hi"}`
		c, rec := newJSONContext(e, http.MethodPost, "/api/v1/dispatch", body, &adminID, entity.RoleAdmin)

		require.NoError(t, h.Dispatch(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Notification sent","sent":2,"failed":1}`, rec.Body.String())
	})

	t.Run("malformed direct is a flat 400", func(t *testing.T) {
		h, uc := newTestDispatchHandler(t)
		uc.EXPECT().
			Dispatch(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrValidationFailed.WithDetails("missing required fields: user_id, body"))

		c, rec := newJSONContext(e, http.MethodPost, "/api/v1/dispatch", `{"type":"direct"}`, &adminID, entity.RoleAdmin)

		require.NoError(t, h.Dispatch(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp domainerrors.DispatchErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "missing required fields: user_id, body", resp.Error)
	})

	t.Run("invalid JSON never reaches the usecase", func(t *testing.T) {
		h, _ := newTestDispatchHandler(t)

		c, rec := newJSONContext(e, http.MethodPost, "/api/v1/dispatch", `{"type":`, &adminID, entity.RoleAdmin)

		require.NoError(t, h.Dispatch(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"invalid JSON body"}`, rec.Body.String())
	})

	t.Run("store failure hides the cause", func(t *testing.T) {
		h, uc := newTestDispatchHandler(t)
		uc.EXPECT().
			Dispatch(mock.Anything, mock.Anything).
			Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "list rules"))

		c, rec := newJSONContext(e, http.MethodPost, "/api/v1/dispatch", `{"type":"sweep"}`, &adminID, entity.RoleAdmin)

		require.NoError(t, h.Dispatch(c))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})
}

func TestDispatchHandler_ListDispatches(t *testing.T) {
	e := newTestEcho()
	adminID := uuid.New()

	t.Run("passes paging through", func(t *testing.T) {
		h, uc := newTestDispatchHandler(t)
		records := []*entity.DispatchRecord{{ID: uuid.New(), Type: entity.DispatchTypeSweep, RuleCount: 3, Sent: 5}}
		uc.EXPECT().ListDispatchRecords(mock.Anything, 5, 10).Return(records, nil)

		c, rec := newJSONContext(e, http.MethodGet, "/api/v1/dispatches?limit=5&offset=10", "", &adminID, entity.RoleAdmin)

		require.NoError(t, h.ListDispatches(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"rule_count":3`)
	})

	t.Run("defaults the page size", func(t *testing.T) {
		h, uc := newTestDispatchHandler(t)
		uc.EXPECT().ListDispatchRecords(mock.Anything, defaultDispatchPageSize, 0).Return(nil, nil)

		c, rec := newJSONContext(e, http.MethodGet, "/api/v1/dispatches", "", &adminID, entity.RoleAdmin)

		require.NoError(t, h.ListDispatches(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects a non-numeric limit", func(t *testing.T) {
		h, _ := newTestDispatchHandler(t)

		c, rec := newJSONContext(e, http.MethodGet, "/api/v1/dispatches?limit=ten", "", &adminID, entity.RoleAdmin)

		require.NoError(t, h.ListDispatches(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
