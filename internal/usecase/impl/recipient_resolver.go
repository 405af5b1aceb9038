package impl

import (
	"context"

	"nudge/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userIDSet is an unordered set of users; adding a member twice keeps one copy.
type userIDSet map[uuid.UUID]struct{}

func newUserIDSet(ids ...uuid.UUID) userIDSet {
	set := make(userIDSet, len(ids))
	set.add(ids...)

	return set
}

func (s userIDSet) add(ids ...uuid.UUID) {
	for _, id := range ids {
		s[id] = struct{}{}
	}
}

func (s userIDSet) has(id uuid.UUID) bool {
	_, ok := s[id]

	return ok
}

func (s userIDSet) slice() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}

	return ids
}

// recipientResolver turns a coach into the set of users a dispatch may reach.
type recipientResolver struct {
	relationRepo   repository.RelationshipRepository
	preferenceRepo repository.PreferenceRepository
}

func newRecipientResolver(relationRepo repository.RelationshipRepository, preferenceRepo repository.PreferenceRepository) *recipientResolver {
	return &recipientResolver{
		relationRepo:   relationRepo,
		preferenceRepo: preferenceRepo,
	}
}

// resolveClients unions the primary-coach and collaboration sources.
// A client present in both appears once.
func (r *recipientResolver) resolveClients(ctx context.Context, coachID uuid.UUID) (userIDSet, error) {
	primary, err := r.relationRepo.FindPrimaryClientIDs(ctx, coachID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find primary clients")
	}

	linked, err := r.relationRepo.FindLinkedClientIDs(ctx, coachID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find linked clients")
	}

	set := newUserIDSet(primary...)
	set.add(linked...)

	return set, nil
}

// filterEligible keeps the users whose alert preference is enabled.
// Users without a preference row are dropped.
func (r *recipientResolver) filterEligible(ctx context.Context, set userIDSet) ([]uuid.UUID, error) {
	if len(set) == 0 {
		return nil, nil
	}

	enabled, err := r.preferenceRepo.FindEnabledUserIDs(ctx, set.slice())
	if err != nil {
		return nil, errors.Wrap(err, "failed to filter eligible recipients")
	}

	return enabled, nil
}

// resolveEligibleClients is resolveClients followed by filterEligible.
func (r *recipientResolver) resolveEligibleClients(ctx context.Context, coachID uuid.UUID) ([]uuid.UUID, error) {
	clients, err := r.resolveClients(ctx, coachID)
	if err != nil {
		return nil, err
	}

	return r.filterEligible(ctx, clients)
}
