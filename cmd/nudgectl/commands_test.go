package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"nudge/config"
	"nudge/internal/infra/auth"
	"nudge/internal/infra/persistence/model"
	"nudge/internal/infra/persistence/postgres"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunVapid(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runVapid(&out))

	assert.Contains(t, out.String(), "vapidPublicKey: ")
	assert.Contains(t, out.String(), "vapidPrivateKey: ")
}

func TestRunToken(t *testing.T) {
	userID := uuid.New()

	var out bytes.Buffer
	require.NoError(t, runToken(&out, "secret", userID.String(), []string{"coach", " admin"}, time.Minute))

	cfg := &config.Config{}
	cfg.SecretKey.Access = "secret"
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	claims, err := tokenSvc.ValidateToken(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.ElementsMatch(t, []string{"coach", "admin"}, claims.Roles)

	assert.Error(t, runToken(&out, "secret", userID.String(), []string{"root"}, time.Minute))
	assert.Error(t, runToken(&out, "secret", "not-a-uuid", []string{"client"}, time.Minute))
}

func TestLinkClient(t *testing.T) {
	db, err := postgres.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))

	coachA, coachB, client := uuid.New(), uuid.New(), uuid.New()

	require.NoError(t, linkClient(db, coachA, client, true))
	require.NoError(t, linkClient(db, coachA, client, true))
	require.NoError(t, linkClient(db, coachB, client, false))

	var links int64
	require.NoError(t, db.Model(&model.CoachClientModel{}).Where("client_id = ?", client).Count(&links).Error)
	assert.EqualValues(t, 2, links)

	var row model.ClientModel
	require.NoError(t, db.First(&row, "id = ?", client).Error)
	require.NotNil(t, row.CoachID)
	assert.Equal(t, coachA, *row.CoachID)
}
