package postgres

import (
	"context"

	"nudge/internal/domain/repository"
	"nudge/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// relationshipRepository reads coach ownership from 'clients' and 'coach_clients'.
type relationshipRepository struct {
	db *gorm.DB
}

// NewRelationshipRepository is the constructor for relationshipRepository.
func NewRelationshipRepository(db *gorm.DB) repository.RelationshipRepository {
	return &relationshipRepository{
		db: db,
	}
}

func (repo *relationshipRepository) FindPrimaryClientIDs(ctx context.Context, coachID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.ClientModel{}).
		Where("coach_id = ?", coachID).
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find primary clients")
	}

	return ids, nil
}

func (repo *relationshipRepository) FindLinkedClientIDs(ctx context.Context, coachID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.CoachClientModel{}).
		Where("coach_id = ?", coachID).
		Pluck("client_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find linked clients")
	}

	return ids, nil
}
