package repository

import (
	"context"

	"github.com/google/uuid"
)

// RelationshipRepository reads the two coach to client ownership sources.
// They are owned by different parts of the product and are queried independently.
type RelationshipRepository interface {
	// FindPrimaryClientIDs returns clients whose primary coach is coachID.
	FindPrimaryClientIDs(ctx context.Context, coachID uuid.UUID) ([]uuid.UUID, error)

	// FindLinkedClientIDs returns clients linked to coachID through the collaboration table.
	FindLinkedClientIDs(ctx context.Context, coachID uuid.UUID) ([]uuid.UUID, error)
}
