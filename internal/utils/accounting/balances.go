package accounting

import (
	"fmt"

	"github.com/SscSPs/event_split_app/internal/apperrors"
	"github.com/SscSPs/event_split_app/internal/core/domain"
)

// ComputeBalances derives each participant's net position from the event's transactions.
// The payer is credited the full amount and every sharer is debited its equal share.
// Every participant id passed in appears in the result, zero if untouched, and the
// values always sum to zero. A transaction referencing an id outside participantIDs
// is an integrity violation.
func ComputeBalances(participantIDs []string, txns []domain.Transaction) (map[string]int64, error) {
	balances := make(map[string]int64, len(participantIDs))
	for _, id := range participantIDs {
		balances[id] = 0
	}

	for _, txn := range txns {
		if _, ok := balances[txn.PayerID]; !ok {
			return nil, fmt.Errorf("%w: transaction %s references unknown payer %s",
				apperrors.ErrIntegrity, txn.TransactionID, txn.PayerID)
		}
		shares, err := SplitEqually(txn.Amount, txn.Participants)
		if err != nil {
			return nil, fmt.Errorf("%w: transaction %s cannot be split: %v",
				apperrors.ErrIntegrity, txn.TransactionID, err)
		}
		for _, s := range shares {
			if _, ok := balances[s.ParticipantID]; !ok {
				return nil, fmt.Errorf("%w: transaction %s references unknown participant %s",
					apperrors.ErrIntegrity, txn.TransactionID, s.ParticipantID)
			}
		}

		if balances[txn.PayerID], err = addChecked(balances[txn.PayerID], txn.Amount); err != nil {
			return nil, fmt.Errorf("%w: balance of %s: %v", apperrors.ErrIntegrity, txn.PayerID, err)
		}
		for _, s := range shares {
			if balances[s.ParticipantID], err = addChecked(balances[s.ParticipantID], -s.Amount); err != nil {
				return nil, fmt.Errorf("%w: balance of %s: %v", apperrors.ErrIntegrity, s.ParticipantID, err)
			}
		}
	}

	return balances, nil
}

// Summarize computes paid and owed totals per participant alongside the net balance.
// names may be nil. The result is ordered as participantIDs.
func Summarize(participantIDs []string, names map[string]string, txns []domain.Transaction) ([]domain.ParticipantSummary, int64, error) {
	balances, err := ComputeBalances(participantIDs, txns)
	if err != nil {
		return nil, 0, err
	}

	paid := make(map[string]int64, len(participantIDs))
	owed := make(map[string]int64, len(participantIDs))
	var total int64
	for _, txn := range txns {
		if total, err = addChecked(total, txn.Amount); err != nil {
			return nil, 0, fmt.Errorf("%w: event total: %v", apperrors.ErrIntegrity, err)
		}
		if paid[txn.PayerID], err = addChecked(paid[txn.PayerID], txn.Amount); err != nil {
			return nil, 0, fmt.Errorf("%w: paid by %s: %v", apperrors.ErrIntegrity, txn.PayerID, err)
		}
		// ComputeBalances already proved every transaction splits cleanly.
		shares, _ := SplitEqually(txn.Amount, txn.Participants)
		for _, s := range shares {
			if owed[s.ParticipantID], err = addChecked(owed[s.ParticipantID], s.Amount); err != nil {
				return nil, 0, fmt.Errorf("%w: owed by %s: %v", apperrors.ErrIntegrity, s.ParticipantID, err)
			}
		}
	}

	out := make([]domain.ParticipantSummary, len(participantIDs))
	for i, id := range participantIDs {
		out[i] = domain.ParticipantSummary{
			ParticipantID: id,
			Name:          names[id],
			Paid:          paid[id],
			Owed:          owed[id],
			Net:           balances[id],
		}
	}
	return out, total, nil
}

// addChecked returns a+b, or an error if the sum does not fit in an int64.
func addChecked(a, b int64) (int64, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return a, fmt.Errorf("adding %d to %d overflows", b, a)
	}
	return sum, nil
}
