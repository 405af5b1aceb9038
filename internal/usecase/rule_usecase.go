package usecase

import (
	"context"

	"nudge/internal/domain/entity"

	"github.com/google/uuid"
)

// RuleInput holds the editable fields of a notification rule.
type RuleInput struct {
	TargetID  *uuid.UUID
	TimeOfDay string
	Title     string
	Message   string
	URL       string
}

// RuleUsecase defines coach-side management of scheduled reminders.
type RuleUsecase interface {
	// CreateRule saves a rule. A personal rule must target one of the owner's clients.
	CreateRule(ctx context.Context, ownerID uuid.UUID, input *RuleInput) (*entity.NotificationRule, error)

	// ListRules returns every rule authored by the owner.
	ListRules(ctx context.Context, ownerID uuid.UUID) ([]*entity.NotificationRule, error)

	// UpdateRule overwrites a rule the owner authored.
	UpdateRule(ctx context.Context, ownerID, ruleID uuid.UUID, input *RuleInput) (*entity.NotificationRule, error)

	// DeleteRule removes a rule the owner authored.
	DeleteRule(ctx context.Context, ownerID, ruleID uuid.UUID) error
}
