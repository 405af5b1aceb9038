package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"nudge/config"
	"nudge/internal/domain/entity"
	"nudge/internal/infra/auth"
	"nudge/internal/infra/persistence/model"
	"nudge/internal/infra/persistence/postgres"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func runVapid(w io.Writer) error {
	privateKey, publicKey, err := webpush.GenerateVAPIDKeys()
	if err != nil {
		return errors.Wrap(err, "failed to generate VAPID keys")
	}

	fmt.Fprintf(w, "webPush:\n  vapidPublicKey: %s\n  vapidPrivateKey: %s\n", publicKey, privateKey)

	return nil
}

func runToken(w io.Writer, secret, user string, roleNames []string, ttl time.Duration) error {
	userID, err := uuid.Parse(user)
	if err != nil {
		return errors.Wrap(err, "invalid -user")
	}

	roles := make([]string, 0, len(roleNames))
	for _, name := range roleNames {
		role := entity.Role(strings.TrimSpace(name))
		if !role.IsValid() {
			return errors.Errorf("unknown role %q", name)
		}
		roles = append(roles, role.String())
	}

	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	tokenSvc, err := auth.NewJWTService(cfg)
	if err != nil {
		return err
	}

	token, err := tokenSvc.GenerateAccessToken(userID, roles, ttl)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, token)

	return nil
}

func runLink(dsn, coach, client string, primary bool) error {
	coachID, err := uuid.Parse(coach)
	if err != nil {
		return errors.Wrap(err, "invalid -coach")
	}

	clientID, err := uuid.Parse(client)
	if err != nil {
		return errors.Wrap(err, "invalid -client")
	}

	db, err := postgres.OpenSQLite(dsn)
	if err != nil {
		return err
	}

	if err := postgres.Migrate(db); err != nil {
		return err
	}

	return linkClient(db, coachID, clientID, primary)
}

// linkClient records the relationship in the link table and, when primary is
// set, as the client's coach. Both writes are idempotent.
func linkClient(db *gorm.DB, coachID, clientID uuid.UUID, primary bool) error {
	return db.Transaction(func(tx *gorm.DB) error {
		link := &model.CoachClientModel{CoachID: coachID, ClientID: clientID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(link).Error; err != nil {
			return errors.Wrap(err, "failed to insert coach_clients row")
		}

		if !primary {
			return nil
		}

		row := &model.ClientModel{ID: clientID, CoachID: &coachID}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"coach_id"}),
		}).Create(row).Error; err != nil {
			return errors.Wrap(err, "failed to upsert clients row")
		}

		return nil
	})
}
