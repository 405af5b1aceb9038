package repository

import (
	"context"
	"errors"

	"nudge/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrPreferenceNotFound is returned when a user has no preference row yet.
	ErrPreferenceNotFound = errors.New("alert preference not found")
)

// PreferenceRepository stores per-user opt-in state.
type PreferenceRepository interface {
	// FindPreference retrieves a user's preference.
	FindPreference(ctx context.Context, userID uuid.UUID) (*entity.AlertPreference, error)

	// FindEnabledUserIDs returns the members of userIDs whose preference is enabled.
	// Users without a row are not returned.
	FindEnabledUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]uuid.UUID, error)

	// UpsertPreference creates or overwrites a user's preference.
	UpsertPreference(ctx context.Context, pref *entity.AlertPreference) error

	// EnsurePreference creates an enabled row when the user has none; an existing row is left untouched.
	EnsurePreference(ctx context.Context, userID uuid.UUID) error
}
