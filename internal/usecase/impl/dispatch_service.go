package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"nudge/config"
	deliverycontext "nudge/internal/delivery/context"
	"nudge/internal/domain/constants"
	"nudge/internal/domain/entity"
	domainerrors "nudge/internal/domain/errors"
	"nudge/internal/domain/repository"
	"nudge/internal/domain/service"
	"nudge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultInvocationTimeout = 2 * time.Minute

	defaultRecordLimit = 20
	maxRecordLimit     = 100
)

// Summary messages returned to callers.
const (
	msgNotificationSent = "Notification sent"
	msgBroadcastSent    = "Broadcast sent"
	msgAnnouncementSent = "Announcement sent"
	msgNoRecipients     = "No recipients found"
	msgNoSubscriptions  = "No subscriptions found"
)

// dispatchService implements DispatchUsecase and consumes queued dispatch events.
type dispatchService struct {
	ruleRepo          repository.RuleRepository
	recordRepo        repository.DispatchRecordRepository
	resolver          *recipientResolver
	engine            *DeliveryEngine
	observer          service.DeliveryObserver
	location          *time.Location
	invocationTimeout time.Duration
	now               func() time.Time
	logger            *slog.Logger
}

// DispatchServiceParams holds dependencies for DispatchService, injected by Fx.
type DispatchServiceParams struct {
	fx.In

	RuleRepo       repository.RuleRepository
	RecordRepo     repository.DispatchRecordRepository
	RelationRepo   repository.RelationshipRepository
	PreferenceRepo repository.PreferenceRepository
	Engine         *DeliveryEngine
	Observer       service.DeliveryObserver `optional:"true"`
	Config         *config.Config
	Logger         *slog.Logger
}

// DispatchServiceResult exposes the service under both of the interfaces it serves.
type DispatchServiceResult struct {
	fx.Out

	Usecase usecase.DispatchUsecase
	Handler service.DispatchEventHandler
}

// NewDispatchService is the constructor for dispatchService.
func NewDispatchService(params DispatchServiceParams) DispatchServiceResult {
	svc := newDispatchService(params)

	return DispatchServiceResult{
		Usecase: svc,
		Handler: svc,
	}
}

func newDispatchService(params DispatchServiceParams) *dispatchService {
	svc := &dispatchService{
		ruleRepo:          params.RuleRepo,
		recordRepo:        params.RecordRepo,
		resolver:          newRecipientResolver(params.RelationRepo, params.PreferenceRepo),
		engine:            params.Engine,
		observer:          params.Observer,
		location:          time.UTC,
		invocationTimeout: defaultInvocationTimeout,
		now:               time.Now,
		logger:            params.Logger,
	}

	if params.Config != nil {
		svc.location = params.Config.Dispatch.Location()
		if params.Config.Dispatch.InvocationTimeout > 0 {
			svc.invocationTimeout = params.Config.Dispatch.InvocationTimeout
		}
	}

	if svc.logger == nil {
		svc.logger = slog.Default()
	}

	return svc
}

func (s *dispatchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// dispatchPlan is a validated command with its identifiers parsed.
type dispatchPlan struct {
	dispatchType entity.DispatchType
	userID       uuid.UUID
	ownerID      uuid.UUID
	targetIDs    []uuid.UUID
	timeOfDay    string
	payload      entity.PushPayload
}

// dispatchOutcome is what one dispatch mode produced.
type dispatchOutcome struct {
	message   string
	result    entity.DeliveryResult
	ruleCount int
}

// Dispatch runs one invocation to completion. Caller cancellation is not propagated;
// the invocation is bounded by its own timeout instead.
func (s *dispatchService) Dispatch(ctx context.Context, cmd *usecase.DispatchCommand) (*entity.DispatchSummary, error) {
	plan, err := s.plan(cmd)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.invocationTimeout)
	defer cancel()

	var outcome *dispatchOutcome
	switch {
	case plan.dispatchType == entity.DispatchTypeDirect:
		outcome, err = s.dispatchDirect(ctx, plan)
	case plan.dispatchType == entity.DispatchTypeBroadcast:
		outcome, err = s.dispatchBroadcast(ctx, plan)
	case plan.dispatchType == entity.DispatchTypeAnnouncement:
		outcome, err = s.dispatchAnnouncement(ctx, plan)
	case plan.dispatchType.IsSweep():
		outcome, err = s.dispatchSweep(ctx, plan)
	}

	if err != nil {
		s.log(ctx).Error("[Dispatch] Dispatch aborted",
			slog.String("type", string(plan.dispatchType)),
			slog.Any("error", err),
		)

		return nil, domainerrors.NewDatabaseExecuteError(err, fmt.Sprintf("%s dispatch aborted", plan.dispatchType))
	}

	s.record(ctx, plan.dispatchType, outcome)

	return &entity.DispatchSummary{
		Message: outcome.message,
		Sent:    outcome.result.Sent,
		Failed:  outcome.result.Failed,
	}, nil
}

// plan validates cmd without touching any store.
func (s *dispatchService) plan(cmd *usecase.DispatchCommand) (*dispatchPlan, error) {
	if cmd == nil || cmd.Type == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("type is required")
	}

	plan := &dispatchPlan{
		dispatchType: cmd.Type,
		payload:      entity.NewPushPayload(cmd.Title, cmd.Body, cmd.URL),
	}

	var missing []string
	requireField := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}

	switch {
	case cmd.Type == entity.DispatchTypeDirect:
		requireField("user_id", cmd.UserID)
		requireField("title", cmd.Title)
		requireField("body", cmd.Body)
	case cmd.Type == entity.DispatchTypeBroadcast:
		requireField("title", cmd.Title)
		requireField("body", cmd.Body)
	case cmd.Type == entity.DispatchTypeAnnouncement:
		requireField("owner_id", cmd.OwnerID)
		requireField("title", cmd.Title)
		requireField("body", cmd.Body)
	case cmd.Type.IsSweep():
		if cmd.SimulatedTime != "" && !entity.IsValidTimeOfDay(cmd.SimulatedTime) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("simulated_time must be HH:MM")
		}
		plan.timeOfDay = cmd.SimulatedTime
	default:
		return nil, domainerrors.ErrUnknownDispatchType.WithDetails(fmt.Sprintf("unknown type %q", cmd.Type))
	}

	if len(missing) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("missing required fields: " + strings.Join(missing, ", "))
	}

	var err error
	if cmd.Type == entity.DispatchTypeDirect {
		if plan.userID, err = uuid.Parse(cmd.UserID); err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("user_id must be a UUID")
		}
	}

	if cmd.Type == entity.DispatchTypeAnnouncement {
		if plan.ownerID, err = uuid.Parse(cmd.OwnerID); err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("owner_id must be a UUID")
		}

		for _, raw := range cmd.TargetClientIDs {
			id, err := uuid.Parse(raw)
			if err != nil {
				return nil, domainerrors.ErrValidationFailed.WithDetails("target_client_ids must be UUIDs")
			}
			plan.targetIDs = append(plan.targetIDs, id)
		}
	}

	return plan, nil
}

// dispatchDirect sends to one user. The user asked for this send, so no preference check applies.
func (s *dispatchService) dispatchDirect(ctx context.Context, plan *dispatchPlan) (*dispatchOutcome, error) {
	result, err := s.engine.DeliverToUsers(ctx, []uuid.UUID{plan.userID}, plan.payload)
	if err != nil {
		return nil, err
	}

	return &dispatchOutcome{message: sentOrEmpty(result, msgNotificationSent), result: result}, nil
}

// dispatchBroadcast reaches every subscription in the store and bypasses alert preferences.
func (s *dispatchService) dispatchBroadcast(ctx context.Context, plan *dispatchPlan) (*dispatchOutcome, error) {
	result, err := s.engine.DeliverToAll(ctx, plan.payload)
	if err != nil {
		return nil, err
	}

	return &dispatchOutcome{message: sentOrEmpty(result, msgBroadcastSent), result: result}, nil
}

// dispatchAnnouncement reaches explicit targets verbatim, or every client of the owner.
// Alert preferences are not consulted.
func (s *dispatchService) dispatchAnnouncement(ctx context.Context, plan *dispatchPlan) (*dispatchOutcome, error) {
	recipients := plan.targetIDs
	if len(recipients) == 0 {
		clients, err := s.resolver.resolveClients(ctx, plan.ownerID)
		if err != nil {
			return nil, err
		}
		recipients = clients.slice()
	} else {
		recipients = newUserIDSet(recipients...).slice()
	}

	if len(recipients) == 0 {
		return &dispatchOutcome{message: msgNoRecipients}, nil
	}

	result, err := s.engine.DeliverToUsers(ctx, recipients, plan.payload)
	if err != nil {
		return nil, err
	}

	return &dispatchOutcome{message: sentOrEmpty(result, msgAnnouncementSent), result: result}, nil
}

// dispatchSweep fires every rule scheduled at the sweep's time of day.
// Rules are processed in turn; a store failure on any rule aborts the sweep.
func (s *dispatchService) dispatchSweep(ctx context.Context, plan *dispatchPlan) (*dispatchOutcome, error) {
	timeOfDay := plan.timeOfDay
	if timeOfDay == "" {
		timeOfDay = s.now().In(s.location).Format(constants.TimeOfDayLayout)
	}

	rules, err := s.ruleRepo.FindRulesByTimeOfDay(ctx, timeOfDay)
	if err != nil {
		return nil, errors.Wrap(err, "failed to match rules")
	}

	if len(rules) == 0 {
		return &dispatchOutcome{message: fmt.Sprintf("No rules scheduled at %s", timeOfDay)}, nil
	}

	outcome := &dispatchOutcome{ruleCount: len(rules)}
	for _, rule := range rules {
		recipients, err := s.ruleRecipients(ctx, rule)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve recipients of rule %s", rule.ID)
		}

		result, err := s.engine.DeliverToUsers(ctx, recipients, rule.Payload())
		if err != nil {
			return nil, errors.Wrapf(err, "failed to deliver rule %s", rule.ID)
		}

		outcome.result.Add(result)
	}

	outcome.message = fmt.Sprintf("Processed %d rules at %s", len(rules), timeOfDay)

	s.log(ctx).Info("[Dispatch] Sweep completed",
		slog.String("timeOfDay", timeOfDay),
		slog.Int("rules", len(rules)),
		slog.Int("sent", outcome.result.Sent),
		slog.Int("failed", outcome.result.Failed),
		slog.Int("pruned", outcome.result.Pruned),
	)

	return outcome, nil
}

// ruleRecipients returns exactly the target of a personal rule, or the eligible clients of a global rule's owner.
func (s *dispatchService) ruleRecipients(ctx context.Context, rule *entity.NotificationRule) ([]uuid.UUID, error) {
	if !rule.IsGlobal() {
		return []uuid.UUID{*rule.TargetID}, nil
	}

	return s.resolver.resolveEligibleClients(ctx, rule.OwnerID)
}

// record stores the invocation history. A failed write is logged; the dispatch itself already happened.
func (s *dispatchService) record(ctx context.Context, dispatchType entity.DispatchType, outcome *dispatchOutcome) {
	if s.observer != nil {
		s.observer.ObserveDispatch(dispatchType, outcome.result)
	}

	if s.recordRepo == nil {
		return
	}

	record := &entity.DispatchRecord{
		Type:      dispatchType,
		RuleCount: outcome.ruleCount,
		Sent:      outcome.result.Sent,
		Failed:    outcome.result.Failed,
		Pruned:    outcome.result.Pruned,
	}

	if err := s.recordRepo.CreateRecord(ctx, record); err != nil {
		s.log(ctx).Warn("[Dispatch] Failed to save dispatch record",
			slog.String("type", string(dispatchType)),
			slog.Any("error", err),
		)
	}
}

// ListDispatchRecords returns recent invocation records, newest first.
func (s *dispatchService) ListDispatchRecords(ctx context.Context, limit, offset int) ([]*entity.DispatchRecord, error) {
	if limit <= 0 {
		limit = defaultRecordLimit
	}
	if limit > maxRecordLimit {
		limit = maxRecordLimit
	}
	if offset < 0 {
		offset = 0
	}

	records, err := s.recordRepo.FindRecentRecords(ctx, limit, offset)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list dispatch records")
	}

	return records, nil
}

// HandleDispatchEvent runs a queued dispatch. Events that can never succeed are
// dropped; only failures worth redelivering are returned.
func (s *dispatchService) HandleDispatchEvent(ctx context.Context, event *service.DispatchEvent) error {
	if event.RequestID != "" {
		ctx = deliverycontext.WithRequestID(ctx, event.RequestID)
	}

	summary, err := s.Dispatch(ctx, &usecase.DispatchCommand{
		Type:            entity.DispatchType(event.Type),
		UserID:          event.UserID,
		OwnerID:         event.OwnerID,
		Title:           event.Title,
		Body:            event.Body,
		URL:             event.URL,
		TargetClientIDs: event.TargetClientIDs,
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) && appErr.HTTPCode() < 500 {
			s.log(ctx).Warn("[Dispatch] Dropping invalid dispatch event",
				slog.String("eventID", event.EventID),
				slog.String("type", event.Type),
				slog.Any("error", err),
			)

			return nil
		}

		return errors.Wrapf(err, "failed to handle dispatch event %s", event.EventID)
	}

	s.log(ctx).Info("[Dispatch] Dispatch event handled",
		slog.String("eventID", event.EventID),
		slog.String("type", event.Type),
		slog.Int("sent", summary.Sent),
		slog.Int("failed", summary.Failed),
	)

	return nil
}

func sentOrEmpty(result entity.DeliveryResult, sentMessage string) string {
	if result.Sent+result.Failed == 0 {
		return msgNoSubscriptions
	}

	return sentMessage
}
