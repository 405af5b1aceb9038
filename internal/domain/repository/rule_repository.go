package repository

import (
	"context"
	"errors"

	"nudge/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrRuleNotFound is returned when a rule is not found.
	ErrRuleNotFound = errors.New("notification rule not found")
)

// RuleRepository is the Rule Store.
type RuleRepository interface {
	// CreateRule persists a new rule.
	CreateRule(ctx context.Context, rule *entity.NotificationRule) error

	// FindRuleByID retrieves a rule by its unique ID.
	FindRuleByID(ctx context.Context, id uuid.UUID) (*entity.NotificationRule, error)

	// FindRulesByOwner retrieves every rule authored by a coach.
	FindRulesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.NotificationRule, error)

	// FindRulesByTimeOfDay retrieves the rules whose time of day equals hhmm exactly.
	FindRulesByTimeOfDay(ctx context.Context, hhmm string) ([]*entity.NotificationRule, error)

	// UpdateRule overwrites the editable fields of a rule.
	UpdateRule(ctx context.Context, rule *entity.NotificationRule) error

	// DeleteRule removes a rule by its ID.
	DeleteRule(ctx context.Context, id uuid.UUID) error
}
