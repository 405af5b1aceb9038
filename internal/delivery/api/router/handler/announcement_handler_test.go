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

func TestAnnouncementHandler_QueueAnnouncement(t *testing.T) {
	e := newTestEcho()
	coachID := uuid.New()
	clientID := uuid.New()

	newHandler := func(t *testing.T) (*AnnouncementHandler, *mockUC.MockAnnouncementUsecase) {
		uc := mockUC.NewMockAnnouncementUsecase(t)

		return NewAnnouncementHandler(AnnouncementHandlerParams{AnnouncementUC: uc, Logger: newDiscardLogger()}), uc
	}

	t.Run("accepted", func(t *testing.T) {
		h, uc := newHandler(t)
		uc.EXPECT().
			QueueAnnouncement(mock.Anything, coachID, mock.MatchedBy(func(in *usecase.AnnouncementInput) bool {
				return in.Title == "Gym closed" && len(in.TargetClientIDs) == 1 && in.TargetClientIDs[0] == clientID
			})).
			Return("event-1", nil)

		body := `{"title":"Gym closed","body":"See you Monday","target_client_ids":["` + clientID.String() + `"]}`
		c, rec := newJSONContext(e, http.MethodPost, "/api/v1/announcements", body, &coachID, entity.RoleCoach)

		require.NoError(t, h.QueueAnnouncement(c))
		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Contains(t, rec.Body.String(), `"event_id":"event-1"`)
	})

	t.Run("title is required", func(t *testing.T) {
		h, _ := newHandler(t)
		c, rec := newJSONContext(e, http.MethodPost, "/api/v1/announcements", `{"body":"b"}`, &coachID, entity.RoleCoach)

		require.NoError(t, h.QueueAnnouncement(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("publish failure", func(t *testing.T) {
		h, uc := newHandler(t)
		uc.EXPECT().QueueAnnouncement(mock.Anything, coachID, mock.Anything).Return("", domainerrors.ErrEventPublishFailed)

		c, rec := newJSONContext(e, http.MethodPost, "/api/v1/announcements", `{"title":"t","body":"b"}`, &coachID, entity.RoleCoach)

		require.NoError(t, h.QueueAnnouncement(c))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
