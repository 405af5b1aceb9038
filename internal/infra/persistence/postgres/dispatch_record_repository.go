package postgres

import (
	"context"

	"nudge/internal/domain/entity"
	domainerrors "nudge/internal/domain/errors"
	"nudge/internal/domain/repository"
	"nudge/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// dispatchRecordRepository implements the repository.DispatchRecordRepository interface.
type dispatchRecordRepository struct {
	db *gorm.DB
}

// NewDispatchRecordRepository is the constructor for dispatchRecordRepository.
func NewDispatchRecordRepository(db *gorm.DB) repository.DispatchRecordRepository {
	return &dispatchRecordRepository{
		db: db,
	}
}

// CreateRecord persists the outcome of one invocation.
func (repo *dispatchRecordRepository) CreateRecord(ctx context.Context, record *entity.DispatchRecord) error {
	id, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "failed to generate dispatch record id")
	}

	recordM := &model.DispatchRecordModel{
		ID:        id,
		Type:      string(record.Type),
		RuleCount: record.RuleCount,
		Sent:      record.Sent,
		Failed:    record.Failed,
		Pruned:    record.Pruned,
	}

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create dispatch record")
	}

	record.ID = recordM.ID
	record.CreatedAt = recordM.CreatedAt

	return nil
}

// FindRecentRecords lists records, newest first.
func (repo *dispatchRecordRepository) FindRecentRecords(ctx context.Context, limit, offset int) ([]*entity.DispatchRecord, error) {
	var recordsM []*model.DispatchRecordModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&recordsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find dispatch records")
	}

	records := make([]*entity.DispatchRecord, 0, len(recordsM))
	for _, recordM := range recordsM {
		records = append(records, &entity.DispatchRecord{
			ID:        recordM.ID,
			Type:      entity.DispatchType(recordM.Type),
			RuleCount: recordM.RuleCount,
			Sent:      recordM.Sent,
			Failed:    recordM.Failed,
			Pruned:    recordM.Pruned,
			CreatedAt: recordM.CreatedAt,
		})
	}

	return records, nil
}
