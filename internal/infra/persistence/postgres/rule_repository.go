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
)

// ruleRepository implements the repository.RuleRepository interface.
type ruleRepository struct {
	db *gorm.DB
}

// NewRuleRepository is the constructor for ruleRepository.
func NewRuleRepository(db *gorm.DB) repository.RuleRepository {
	return &ruleRepository{
		db: db,
	}
}

// CreateRule persists a new rule.
func (repo *ruleRepository) CreateRule(ctx context.Context, rule *entity.NotificationRule) error {
	ruleM := fromRuleDomain(rule)
	if ruleM.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate rule id")
		}
		ruleM.ID = id
	}

	if err := repo.db.WithContext(ctx).Create(ruleM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid owner or target reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required rule information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create rule")
	}

	rule.ID = ruleM.ID
	rule.CreatedAt = ruleM.CreatedAt
	rule.UpdatedAt = ruleM.UpdatedAt

	return nil
}

// FindRuleByID retrieves a rule by its unique ID.
func (repo *ruleRepository) FindRuleByID(ctx context.Context, id uuid.UUID) (*entity.NotificationRule, error) {
	var ruleM model.NotificationRuleModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ruleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRuleNotFound
		}

		return nil, errors.Wrap(err, "failed to find rule by ID")
	}

	return toRuleDomain(&ruleM), nil
}

// FindRulesByOwner retrieves every rule authored by a coach, ordered by time of day.
func (repo *ruleRepository) FindRulesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.NotificationRule, error) {
	var rulesM []*model.NotificationRuleModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("time_of_day ASC, created_at ASC").
		Find(&rulesM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find rules by owner")
	}

	return toRuleDomains(rulesM), nil
}

// FindRulesByTimeOfDay matches time_of_day by exact string equality.
func (repo *ruleRepository) FindRulesByTimeOfDay(ctx context.Context, hhmm string) ([]*entity.NotificationRule, error) {
	var rulesM []*model.NotificationRuleModel

	if err := repo.db.WithContext(ctx).
		Where("time_of_day = ?", hhmm).
		Order("created_at ASC").
		Find(&rulesM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find rules by time of day")
	}

	return toRuleDomains(rulesM), nil
}

// UpdateRule overwrites the editable fields of a rule.
func (repo *ruleRepository) UpdateRule(ctx context.Context, rule *entity.NotificationRule) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationRuleModel{}).
		Where("id = ?", rule.ID).
		Updates(map[string]any{
			"target_id":   rule.TargetID,
			"time_of_day": rule.TimeOfDay,
			"title":       rule.Title,
			"message":     rule.Message,
			"url":         rule.URL,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update rule")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRuleNotFound
	}

	return nil
}

// DeleteRule removes a rule by its ID.
func (repo *ruleRepository) DeleteRule(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.NotificationRuleModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete rule")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRuleNotFound
	}

	return nil
}

func toRuleDomain(data *model.NotificationRuleModel) *entity.NotificationRule {
	if data == nil {
		return nil
	}

	return &entity.NotificationRule{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		TargetID:  data.TargetID,
		TimeOfDay: data.TimeOfDay,
		Title:     data.Title,
		Message:   data.Message,
		URL:       data.URL,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toRuleDomains(data []*model.NotificationRuleModel) []*entity.NotificationRule {
	rules := make([]*entity.NotificationRule, 0, len(data))
	for _, ruleM := range data {
		rules = append(rules, toRuleDomain(ruleM))
	}

	return rules
}

func fromRuleDomain(data *entity.NotificationRule) *model.NotificationRuleModel {
	if data == nil {
		return nil
	}

	return &model.NotificationRuleModel{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		TargetID:  data.TargetID,
		TimeOfDay: data.TimeOfDay,
		Title:     data.Title,
		Message:   data.Message,
		URL:       data.URL,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
