package postgres

import (
	"context"
	"time"

	"nudge/internal/domain/entity"
	domainerrors "nudge/internal/domain/errors"
	"nudge/internal/domain/repository"
	"nudge/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// pushSubscriptionRepository implements the repository.PushSubscriptionRepository interface.
type pushSubscriptionRepository struct {
	db *gorm.DB
}

// NewPushSubscriptionRepository is the constructor for pushSubscriptionRepository.
func NewPushSubscriptionRepository(db *gorm.DB) repository.PushSubscriptionRepository {
	return &pushSubscriptionRepository{
		db: db,
	}
}

// UpsertSubscription inserts the endpoint or refreshes the existing (user_id, endpoint) row.
func (repo *pushSubscriptionRepository) UpsertSubscription(ctx context.Context, sub *entity.PushSubscription) error {
	subM := fromPushSubscriptionDomain(sub)
	if subM.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate subscription id")
		}
		subM.ID = id
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "endpoint"}},
			DoUpdates: clause.AssignmentColumns([]string{"kind", "p256dh", "auth", "device_name", "updated_at"}),
		}).
		Create(subM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required subscription information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert push subscription")
	}

	// The conflict branch keeps the original id and created_at; read the stored row back.
	var stored model.PushSubscriptionModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND endpoint = ?", sub.UserID, sub.Endpoint).
		First(&stored).Error; err != nil {
		return errors.Wrap(err, "failed to reload push subscription")
	}

	*sub = *toPushSubscriptionDomain(&stored)

	return nil
}

// FindSubscriptionsByUser retrieves every endpoint of one user.
func (repo *pushSubscriptionRepository) FindSubscriptionsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PushSubscription, error) {
	var subsM []*model.PushSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&subsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find subscriptions by user")
	}

	return toPushSubscriptionDomains(subsM), nil
}

// FindSubscriptionsByUserIDs retrieves the endpoints of a recipient set in one query.
func (repo *pushSubscriptionRepository) FindSubscriptionsByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]*entity.PushSubscription, error) {
	if len(userIDs) == 0 {
		return []*entity.PushSubscription{}, nil
	}

	var subsM []*model.PushSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&subsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find subscriptions by user ids")
	}

	return toPushSubscriptionDomains(subsM), nil
}

// FindAllSubscriptions retrieves every endpoint in the store.
func (repo *pushSubscriptionRepository) FindAllSubscriptions(ctx context.Context) ([]*entity.PushSubscription, error) {
	var subsM []*model.PushSubscriptionModel

	if err := repo.db.WithContext(ctx).Find(&subsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all subscriptions")
	}

	return toPushSubscriptionDomains(subsM), nil
}

// DeleteSubscription removes a row by id; a missing row is a no-op.
func (repo *pushSubscriptionRepository) DeleteSubscription(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PushSubscriptionModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete subscription")
	}

	return nil
}

// DeleteSubscriptionByEndpoint removes one endpoint of a user.
func (repo *pushSubscriptionRepository) DeleteSubscriptionByEndpoint(ctx context.Context, userID uuid.UUID, endpoint string) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND endpoint = ?", userID, endpoint).
		Delete(&model.PushSubscriptionModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete subscription by endpoint")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

func toPushSubscriptionDomain(data *model.PushSubscriptionModel) *entity.PushSubscription {
	if data == nil {
		return nil
	}

	return &entity.PushSubscription{
		ID:         data.ID,
		UserID:     data.UserID,
		Kind:       entity.SubscriptionKind(data.Kind),
		Endpoint:   data.Endpoint,
		P256dh:     data.P256dh,
		Auth:       data.Auth,
		DeviceName: data.DeviceName,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func toPushSubscriptionDomains(data []*model.PushSubscriptionModel) []*entity.PushSubscription {
	subs := make([]*entity.PushSubscription, 0, len(data))
	for _, subM := range data {
		subs = append(subs, toPushSubscriptionDomain(subM))
	}

	return subs
}

func fromPushSubscriptionDomain(data *entity.PushSubscription) *model.PushSubscriptionModel {
	if data == nil {
		return nil
	}

	kind := data.Kind
	if kind == "" {
		kind = entity.SubscriptionKindWebPush
	}

	now := time.Now()

	return &model.PushSubscriptionModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Kind:       string(kind),
		Endpoint:   data.Endpoint,
		P256dh:     data.P256dh,
		Auth:       data.Auth,
		DeviceName: data.DeviceName,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
