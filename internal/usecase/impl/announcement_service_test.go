package impl

import (
	"context"
	"testing"

	deliverycontext "nudge/internal/delivery/context"
	"nudge/internal/domain/entity"
	domainerrors "nudge/internal/domain/errors"
	"nudge/internal/domain/service"
	mockSvc "nudge/internal/mocks/service"
	"nudge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAnnouncementService_QueueAnnouncement(t *testing.T) {
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	svc := NewAnnouncementService(AnnouncementServiceParams{Publisher: mockPublisher, Logger: newDiscardLogger()})

	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	ownerID, target := uuid.New(), uuid.New()

	var published *service.DispatchEvent
	mockPublisher.EXPECT().
		PublishDispatchEvent(ctx, mock.AnythingOfType("*service.DispatchEvent")).
		Run(func(_ context.Context, event *service.DispatchEvent) { published = event }).
		Return(nil)

	eventID, err := svc.QueueAnnouncement(ctx, ownerID, &usecase.AnnouncementInput{
		Title:           "New plan",
		Body:            "Check the board",
		TargetClientIDs: []uuid.UUID{target},
	})
	require.NoError(t, err)
	require.NotNil(t, published)
	assert.Equal(t, eventID, published.EventID)
	assert.Equal(t, "req-42", published.RequestID)
	assert.Equal(t, string(entity.DispatchTypeAnnouncement), published.Type)
	assert.Equal(t, ownerID.String(), published.OwnerID)
	assert.Equal(t, []string{target.String()}, published.TargetClientIDs)
}

func TestAnnouncementService_QueueAnnouncement_Validation(t *testing.T) {
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	svc := NewAnnouncementService(AnnouncementServiceParams{Publisher: mockPublisher, Logger: newDiscardLogger()})

	_, err := svc.QueueAnnouncement(context.Background(), uuid.New(), &usecase.AnnouncementInput{Title: "only title"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAnnouncementService_QueueAnnouncement_PublishFailure(t *testing.T) {
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	svc := NewAnnouncementService(AnnouncementServiceParams{Publisher: mockPublisher, Logger: newDiscardLogger()})

	mockPublisher.EXPECT().PublishDispatchEvent(mock.Anything, mock.Anything).Return(errors.New("topic not found"))

	_, err := svc.QueueAnnouncement(context.Background(), uuid.New(), &usecase.AnnouncementInput{Title: "t", Body: "b"})
	assert.ErrorIs(t, err, domainerrors.ErrEventPublishFailed)
}
