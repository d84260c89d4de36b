package accounting

import (
	"fmt"
	"math"
	"sort"

	"github.com/SscSPs/event_split_app/internal/apperrors"
	"github.com/SscSPs/event_split_app/internal/core/domain"
)

type position struct {
	id     string
	amount int64 // absolute value
}

// ComputeSettlements turns net balances into a list of transfers that zeroes every balance.
// It repeatedly matches the largest debtor with the largest creditor and moves the smaller
// of the two amounts; ties are broken by ascending participant id. Zero balances are
// skipped and no zero-amount transfer is ever produced.
func ComputeSettlements(balances map[string]int64) ([]domain.Settlement, error) {
	var debtors, creditors []position
	var sum int64
	for id, amount := range balances {
		var err error
		if sum, err = addChecked(sum, amount); err != nil || amount == math.MinInt64 {
			return nil, fmt.Errorf("%w: balance of %s out of range", apperrors.ErrIntegrity, id)
		}
		switch {
		case amount < 0:
			debtors = append(debtors, position{id: id, amount: -amount})
		case amount > 0:
			creditors = append(creditors, position{id: id, amount: amount})
		}
	}
	if sum != 0 {
		return nil, fmt.Errorf("%w: balances sum to %d, expected 0", apperrors.ErrIntegrity, sum)
	}

	settlements := make([]domain.Settlement, 0, len(debtors)+len(creditors))
	for len(debtors) > 0 && len(creditors) > 0 {
		sortPositions(debtors)
		sortPositions(creditors)

		d, c := &debtors[0], &creditors[0]
		amount := min(d.amount, c.amount)
		settlements = append(settlements, domain.Settlement{FromID: d.id, ToID: c.id, Amount: amount})

		d.amount -= amount
		c.amount -= amount
		if d.amount == 0 {
			debtors = debtors[1:]
		}
		if c.amount == 0 {
			creditors = creditors[1:]
		}
	}
	return settlements, nil
}

// sortPositions orders by amount descending, then id ascending.
func sortPositions(ps []position) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].amount != ps[j].amount {
			return ps[i].amount > ps[j].amount
		}
		return ps[i].id < ps[j].id
	})
}
