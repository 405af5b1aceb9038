package repository

import (
	"context"

	"nudge/internal/domain/entity"
)

// DispatchRecordRepository keeps the aggregate history of dispatch invocations.
type DispatchRecordRepository interface {
	// CreateRecord persists the outcome of one invocation.
	CreateRecord(ctx context.Context, record *entity.DispatchRecord) error

	// FindRecentRecords lists records, newest first.
	FindRecentRecords(ctx context.Context, limit, offset int) ([]*entity.DispatchRecord, error)
}
