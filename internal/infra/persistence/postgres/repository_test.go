package postgres

import (
	"context"
	"testing"
	"time"

	"nudge/internal/domain/entity"
	"nudge/internal/domain/repository"
	"nudge/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func TestPushSubscriptionRepository_UpsertIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewPushSubscriptionRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	first := &entity.PushSubscription{
		UserID:     userID,
		Kind:       entity.SubscriptionKindWebPush,
		Endpoint:   "https://push.example.com/ep-1",
		P256dh:     "key-1",
		Auth:       "auth-1",
		DeviceName: "laptop",
	}
	require.NoError(t, repo.UpsertSubscription(ctx, first))

	second := &entity.PushSubscription{
		UserID:     userID,
		Kind:       entity.SubscriptionKindWebPush,
		Endpoint:   "https://push.example.com/ep-1",
		P256dh:     "key-2",
		Auth:       "auth-2",
		DeviceName: "laptop (renamed)",
	}
	require.NoError(t, repo.UpsertSubscription(ctx, second))

	subs, err := repo.FindSubscriptionsByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, first.ID, subs[0].ID)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "key-2", subs[0].P256dh)
	assert.Equal(t, "laptop (renamed)", subs[0].DeviceName)
}

func TestPushSubscriptionRepository_SameEndpointDifferentUsers(t *testing.T) {
	db := newTestDB(t)
	repo := NewPushSubscriptionRepository(db)
	ctx := context.Background()

	for range 2 {
		require.NoError(t, repo.UpsertSubscription(ctx, &entity.PushSubscription{
			UserID:   uuid.New(),
			Endpoint: "https://push.example.com/shared",
		}))
	}

	all, err := repo.FindAllSubscriptions(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestPushSubscriptionRepository_FindByUserIDsAndDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewPushSubscriptionRepository(db)
	ctx := context.Background()
	alice, bob, carol := uuid.New(), uuid.New(), uuid.New()

	for i, userID := range []uuid.UUID{alice, alice, bob, carol} {
		require.NoError(t, repo.UpsertSubscription(ctx, &entity.PushSubscription{
			UserID:   userID,
			Endpoint: "https://push.example.com/" + string(rune('a'+i)),
		}))
	}

	subs, err := repo.FindSubscriptionsByUserIDs(ctx, []uuid.UUID{alice, bob})
	require.NoError(t, err)
	assert.Len(t, subs, 3)

	empty, err := repo.FindSubscriptionsByUserIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	require.NoError(t, repo.DeleteSubscription(ctx, subs[0].ID))
	// Deleting again is a no-op.
	require.NoError(t, repo.DeleteSubscription(ctx, subs[0].ID))

	all, err := repo.FindAllSubscriptions(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	require.NoError(t, repo.DeleteSubscriptionByEndpoint(ctx, carol, "https://push.example.com/d"))
	err = repo.DeleteSubscriptionByEndpoint(ctx, carol, "https://push.example.com/d")
	assert.ErrorIs(t, err, repository.ErrSubscriptionNotFound)
}

func TestPreferenceRepository_EnsureDoesNotOverrideOptOut(t *testing.T) {
	db := newTestDB(t)
	repo := NewPreferenceRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, repo.UpsertPreference(ctx, &entity.AlertPreference{UserID: userID, IsEnabled: false}))
	require.NoError(t, repo.EnsurePreference(ctx, userID))

	pref, err := repo.FindPreference(ctx, userID)
	require.NoError(t, err)
	assert.False(t, pref.IsEnabled)

	require.NoError(t, repo.UpsertPreference(ctx, &entity.AlertPreference{UserID: userID, IsEnabled: true}))
	pref, err = repo.FindPreference(ctx, userID)
	require.NoError(t, err)
	assert.True(t, pref.IsEnabled)
}

func TestPreferenceRepository_UpsertKeepsCreatedAt(t *testing.T) {
	db := newTestDB(t)
	repo := NewPreferenceRepository(db)
	ctx := context.Background()
	userID := uuid.New()
	createdAt := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, db.Create(&model.AlertPreferenceModel{
		UserID:    userID,
		IsEnabled: true,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}).Error)

	pref := &entity.AlertPreference{UserID: userID, IsEnabled: false}
	require.NoError(t, repo.UpsertPreference(ctx, pref))

	assert.False(t, pref.IsEnabled)
	assert.WithinDuration(t, createdAt, pref.CreatedAt, time.Second)
	assert.True(t, pref.UpdatedAt.After(createdAt))
}

func TestPreferenceRepository_FindEnabledUserIDs(t *testing.T) {
	db := newTestDB(t)
	repo := NewPreferenceRepository(db)
	ctx := context.Background()
	enabled, disabled, missing := uuid.New(), uuid.New(), uuid.New()

	require.NoError(t, repo.EnsurePreference(ctx, enabled))
	require.NoError(t, repo.UpsertPreference(ctx, &entity.AlertPreference{UserID: disabled, IsEnabled: false}))

	ids, err := repo.FindEnabledUserIDs(ctx, []uuid.UUID{enabled, disabled, missing})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{enabled}, ids)

	_, err = repo.FindPreference(ctx, missing)
	assert.ErrorIs(t, err, repository.ErrPreferenceNotFound)
}

func TestRelationshipRepository_BothSources(t *testing.T) {
	db := newTestDB(t)
	repo := NewRelationshipRepository(db)
	ctx := context.Background()
	coach, otherCoach := uuid.New(), uuid.New()
	clientA, clientB, clientC := uuid.New(), uuid.New(), uuid.New()

	require.NoError(t, db.Create(&[]model.ClientModel{
		{ID: clientA, CoachID: &coach},
		{ID: clientB},
		{ID: clientC, CoachID: &otherCoach},
	}).Error)
	require.NoError(t, db.Create(&[]model.CoachClientModel{
		{CoachID: coach, ClientID: clientA},
		{CoachID: coach, ClientID: clientB},
	}).Error)

	primary, err := repo.FindPrimaryClientIDs(ctx, coach)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{clientA}, primary)

	linked, err := repo.FindLinkedClientIDs(ctx, coach)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{clientA, clientB}, linked)

	none, err := repo.FindLinkedClientIDs(ctx, otherCoach)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRuleRepository_CRUDAndExactTimeMatch(t *testing.T) {
	db := newTestDB(t)
	repo := NewRuleRepository(db)
	ctx := context.Background()
	coach, client := uuid.New(), uuid.New()

	global := &entity.NotificationRule{OwnerID: coach, TimeOfDay: "09:00", Title: "Reminder", Message: "Log your breakfast", URL: "/"}
	personal := &entity.NotificationRule{OwnerID: coach, TargetID: &client, TimeOfDay: "09:00", Title: "Reminder", Message: "Stretch", URL: "/"}
	other := &entity.NotificationRule{OwnerID: coach, TimeOfDay: "09:01", Title: "Reminder", Message: "Later", URL: "/"}
	for _, rule := range []*entity.NotificationRule{global, personal, other} {
		require.NoError(t, repo.CreateRule(ctx, rule))
		assert.NotEqual(t, uuid.Nil, rule.ID)
	}

	matched, err := repo.FindRulesByTimeOfDay(ctx, "09:00")
	require.NoError(t, err)
	require.Len(t, matched, 2)

	none, err := repo.FindRulesByTimeOfDay(ctx, "9:00")
	require.NoError(t, err)
	assert.Empty(t, none)

	owned, err := repo.FindRulesByOwner(ctx, coach)
	require.NoError(t, err)
	assert.Len(t, owned, 3)

	personal.TargetID = nil
	personal.Message = "Stretch everyone"
	require.NoError(t, repo.UpdateRule(ctx, personal))

	reloaded, err := repo.FindRuleByID(ctx, personal.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.IsGlobal())
	assert.Equal(t, "Stretch everyone", reloaded.Message)

	require.NoError(t, repo.DeleteRule(ctx, other.ID))
	_, err = repo.FindRuleByID(ctx, other.ID)
	assert.ErrorIs(t, err, repository.ErrRuleNotFound)
	assert.ErrorIs(t, repo.DeleteRule(ctx, other.ID), repository.ErrRuleNotFound)
	assert.ErrorIs(t, repo.UpdateRule(ctx, other), repository.ErrRuleNotFound)
}

func TestDispatchRecordRepository_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewDispatchRecordRepository(db)
	ctx := context.Background()

	older := &entity.DispatchRecord{Type: entity.DispatchTypeSweep, RuleCount: 2, Sent: 3, Failed: 1, Pruned: 1}
	require.NoError(t, repo.CreateRecord(ctx, older))
	require.NoError(t, db.Model(&model.DispatchRecordModel{}).
		Where("id = ?", older.ID).
		Update("created_at", time.Now().Add(-time.Hour)).Error)

	newer := &entity.DispatchRecord{Type: entity.DispatchTypeBroadcast, Sent: 5}
	require.NoError(t, repo.CreateRecord(ctx, newer))

	records, err := repo.FindRecentRecords(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, newer.ID, records[0].ID)
	assert.Equal(t, entity.DispatchTypeSweep, records[1].Type)
	assert.Equal(t, 1, records[1].Pruned)

	page, err := repo.FindRecentRecords(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, older.ID, page[0].ID)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()
	userID := uuid.New()

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewPreferenceRepository().EnsurePreference(ctx, userID); err != nil {
			return err
		}

		return repository.ErrSubscriptionNotFound
	})
	require.ErrorIs(t, err, repository.ErrSubscriptionNotFound)

	_, err = NewPreferenceRepository(db).FindPreference(ctx, userID)
	assert.ErrorIs(t, err, repository.ErrPreferenceNotFound)
}
