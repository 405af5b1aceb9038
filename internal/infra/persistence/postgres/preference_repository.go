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

// preferenceRepository implements the repository.PreferenceRepository interface.
type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository is the constructor for preferenceRepository.
func NewPreferenceRepository(db *gorm.DB) repository.PreferenceRepository {
	return &preferenceRepository{
		db: db,
	}
}

// FindPreference retrieves a user's preference.
func (repo *preferenceRepository) FindPreference(ctx context.Context, userID uuid.UUID) (*entity.AlertPreference, error) {
	var prefM model.AlertPreferenceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&prefM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPreferenceNotFound
		}

		return nil, errors.Wrap(err, "failed to find alert preference")
	}

	return toPreferenceDomain(&prefM), nil
}

// FindEnabledUserIDs narrows userIDs to those with an enabled preference row.
func (repo *preferenceRepository) FindEnabledUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(userIDs) == 0 {
		return []uuid.UUID{}, nil
	}

	var enabled []uuid.UUID
	if err := repo.db.WithContext(ctx).
		Model(&model.AlertPreferenceModel{}).
		Where("user_id IN ? AND is_enabled = ?", userIDs, true).
		Pluck("user_id", &enabled).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find enabled preferences")
	}

	return enabled, nil
}

// UpsertPreference creates or overwrites a user's preference.
func (repo *preferenceRepository) UpsertPreference(ctx context.Context, pref *entity.AlertPreference) error {
	now := time.Now()
	prefM := &model.AlertPreferenceModel{
		UserID:    pref.UserID,
		IsEnabled: pref.IsEnabled,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_enabled", "updated_at"}),
		}).
		Create(prefM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert alert preference")
	}

	// An existing row keeps its created_at; read the stored row back.
	var stored model.AlertPreferenceModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", pref.UserID).
		First(&stored).Error; err != nil {
		return errors.Wrap(err, "failed to reload alert preference")
	}

	*pref = *toPreferenceDomain(&stored)

	return nil
}

// EnsurePreference creates an enabled row for a user seen for the first time.
func (repo *preferenceRepository) EnsurePreference(ctx context.Context, userID uuid.UUID) error {
	now := time.Now()

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.AlertPreferenceModel{
			UserID:    userID,
			IsEnabled: true,
			CreatedAt: now,
			UpdatedAt: now,
		}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to ensure alert preference")
	}

	return nil
}

func toPreferenceDomain(data *model.AlertPreferenceModel) *entity.AlertPreference {
	return &entity.AlertPreference{
		UserID:    data.UserID,
		IsEnabled: data.IsEnabled,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
