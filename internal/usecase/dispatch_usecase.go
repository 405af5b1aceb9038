package usecase

import (
	"context"

	"nudge/internal/domain/entity"
)

// DispatchCommand is a single dispatch invocation as received from a caller.
// Identifiers are kept as raw strings; they are validated by Dispatch before any store access.
type DispatchCommand struct {
	Type            entity.DispatchType
	UserID          string
	OwnerID         string
	Title           string
	Body            string
	URL             string
	TargetClientIDs []string
	// SimulatedTime overrides the wall clock of a sweep; "HH:MM".
	SimulatedTime string
}

// DispatchUsecase defines the push dispatch entry point.
type DispatchUsecase interface {
	// Dispatch validates the command, resolves recipients and fans the payload out.
	// The summary carries counts only, never recipient identities.
	Dispatch(ctx context.Context, cmd *DispatchCommand) (*entity.DispatchSummary, error)

	// ListDispatchRecords returns the most recent invocation records.
	ListDispatchRecords(ctx context.Context, limit, offset int) ([]*entity.DispatchRecord, error)
}
