package accounting

import (
	"fmt"
	"sort"

	"github.com/SscSPs/event_split_app/internal/apperrors"
)

// Share is one participant's portion of a transaction, in minor units.
type Share struct {
	ParticipantID string
	Amount        int64
}

// NormalizeParticipants returns the ids sorted ascending with duplicates and empty ids removed.
func NormalizeParticipants(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// SplitEqually divides amount across the participant set. Each share gets amount/n and
// the remaining amount%n minor units go one each to the first sharers in ascending id
// order, so the shares always sum to amount.
func SplitEqually(amount int64, participantIDs []string) ([]Share, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive, got %d", apperrors.ErrValidation, amount)
	}
	ids := NormalizeParticipants(participantIDs)
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: at least one participant is required", apperrors.ErrValidation)
	}

	n := int64(len(ids))
	base := amount / n
	remainder := amount % n

	shares := make([]Share, len(ids))
	for i, id := range ids {
		share := base
		if int64(i) < remainder {
			share++
		}
		shares[i] = Share{ParticipantID: id, Amount: share}
	}
	return shares, nil
}
