package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "nudge/internal/delivery/context"
	"nudge/internal/domain/entity"
	domainerrors "nudge/internal/domain/errors"
	"nudge/internal/domain/repository"
	"nudge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ruleService implements RuleUsecase.
type ruleService struct {
	ruleRepo repository.RuleRepository
	resolver *recipientResolver
	logger   *slog.Logger
}

// RuleServiceParams holds dependencies for RuleService, injected by Fx.
type RuleServiceParams struct {
	fx.In

	RuleRepo     repository.RuleRepository
	RelationRepo repository.RelationshipRepository
	Logger       *slog.Logger
}

// NewRuleService is the constructor for ruleService.
func NewRuleService(params RuleServiceParams) usecase.RuleUsecase {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &ruleService{
		ruleRepo: params.RuleRepo,
		resolver: newRecipientResolver(params.RelationRepo, nil),
		logger:   logger,
	}
}

func (s *ruleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateRule saves a new rule for ownerID.
func (s *ruleService) CreateRule(ctx context.Context, ownerID uuid.UUID, input *usecase.RuleInput) (*entity.NotificationRule, error) {
	if err := validateRuleInput(input); err != nil {
		return nil, err
	}

	if err := s.checkTarget(ctx, ownerID, input.TargetID); err != nil {
		return nil, err
	}

	rule := &entity.NotificationRule{OwnerID: ownerID}
	applyRuleInput(rule, input)

	if err := s.ruleRepo.CreateRule(ctx, rule); err != nil {
		return nil, errors.Wrap(err, "failed to create rule")
	}

	s.log(ctx).Info("Notification rule created",
		slog.String("ruleID", rule.ID.String()),
		slog.String("ownerID", ownerID.String()),
		slog.String("timeOfDay", rule.TimeOfDay),
		slog.Bool("global", rule.IsGlobal()),
	)

	return rule, nil
}

// ListRules returns the owner's rules.
func (s *ruleService) ListRules(ctx context.Context, ownerID uuid.UUID) ([]*entity.NotificationRule, error) {
	rules, err := s.ruleRepo.FindRulesByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rules")
	}

	return rules, nil
}

// UpdateRule overwrites a rule after checking ownership.
func (s *ruleService) UpdateRule(ctx context.Context, ownerID, ruleID uuid.UUID, input *usecase.RuleInput) (*entity.NotificationRule, error) {
	if err := validateRuleInput(input); err != nil {
		return nil, err
	}

	rule, err := s.findOwnedRule(ctx, ownerID, ruleID)
	if err != nil {
		return nil, err
	}

	if err := s.checkTarget(ctx, ownerID, input.TargetID); err != nil {
		return nil, err
	}

	applyRuleInput(rule, input)

	if err := s.ruleRepo.UpdateRule(ctx, rule); err != nil {
		if errors.Is(err, repository.ErrRuleNotFound) {
			return nil, domainerrors.ErrRuleNotFound
		}

		return nil, errors.Wrap(err, "failed to update rule")
	}

	return rule, nil
}

// DeleteRule removes a rule after checking ownership.
func (s *ruleService) DeleteRule(ctx context.Context, ownerID, ruleID uuid.UUID) error {
	if _, err := s.findOwnedRule(ctx, ownerID, ruleID); err != nil {
		return err
	}

	if err := s.ruleRepo.DeleteRule(ctx, ruleID); err != nil {
		if errors.Is(err, repository.ErrRuleNotFound) {
			return domainerrors.ErrRuleNotFound
		}

		return errors.Wrap(err, "failed to delete rule")
	}

	s.log(ctx).Info("Notification rule deleted", slog.String("ruleID", ruleID.String()))

	return nil
}

func (s *ruleService) findOwnedRule(ctx context.Context, ownerID, ruleID uuid.UUID) (*entity.NotificationRule, error) {
	rule, err := s.ruleRepo.FindRuleByID(ctx, ruleID)
	if errors.Is(err, repository.ErrRuleNotFound) {
		return nil, domainerrors.ErrRuleNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find rule")
	}

	if rule.OwnerID != ownerID {
		s.log(ctx).Warn("Rule ownership violation",
			slog.String("ruleID", ruleID.String()),
			slog.String("ownerID", ownerID.String()),
		)

		return nil, domainerrors.ErrRuleOwnershipViolation
	}

	return rule, nil
}

// checkTarget rejects a personal rule whose target is not a client of the owner.
func (s *ruleService) checkTarget(ctx context.Context, ownerID uuid.UUID, targetID *uuid.UUID) error {
	if targetID == nil {
		return nil
	}

	clients, err := s.resolver.resolveClients(ctx, ownerID)
	if err != nil {
		return errors.Wrap(err, "failed to resolve owner clients")
	}

	if !clients.has(*targetID) {
		return domainerrors.ErrRuleTargetNotClient
	}

	return nil
}

func validateRuleInput(input *usecase.RuleInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("rule is required")
	}

	if !entity.IsValidTimeOfDay(input.TimeOfDay) {
		return domainerrors.ErrValidationFailed.WithDetails("time_of_day must be HH:MM")
	}

	if strings.TrimSpace(input.Message) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("message is required")
	}

	return nil
}

func applyRuleInput(rule *entity.NotificationRule, input *usecase.RuleInput) {
	rule.TargetID = input.TargetID
	rule.TimeOfDay = input.TimeOfDay
	rule.Title = input.Title
	rule.Message = input.Message
	rule.URL = input.URL

	if rule.Title == "" {
		rule.Title = entity.DefaultRuleTitle
	}
	if rule.URL == "" {
		rule.URL = entity.DefaultDeepLink
	}
}
