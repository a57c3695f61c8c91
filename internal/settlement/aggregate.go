package settlement

import (
	"math"

	"github.com/splitteam/expense-backend/internal/domain/models"
)

// RezeroEpsilon is the threshold for the re-zero heuristic: once every
// running balance and their sum sit within this much of zero after an
// expense, the fold treats the team as fully settled and snaps all balances
// to exactly 0, absorbing accumulated rounding drift.
const RezeroEpsilon = 0.01

// Aggregate folds a team's expenses into net per-member balances. Expenses
// must arrive in ascending creation-date order; the re-zero reset fires
// between expenses, so the order decides where resets land.
//
// Positive means the group owes that member, negative means they owe the
// group. The fold works on raw share amounts and deliberately ignores
// approval status; the approval-gated view lives in OutstandingForUser.
//
// The returned slice lists member ids in first-appearance order, which
// callers use for stable tie-breaking. Amounts are not rounded here; rounding
// happens at the output boundary.
func Aggregate(expenses []models.Expense) ([]string, map[string]float64) {
	var order []string
	balances := make(map[string]float64)

	touch := func(id string) {
		if _, seen := balances[id]; !seen {
			order = append(order, id)
			balances[id] = 0
		}
	}

	for _, expense := range expenses {
		for _, share := range expense.Shares {
			memberId := share.UserId.Hex()
			touch(memberId)
			balances[memberId] -= share.Amount
		}

		payerId := expense.PaidByUserId.Hex()
		touch(payerId)
		balances[payerId] += expense.Amount

		if isSettled(balances) {
			for id := range balances {
				balances[id] = 0
			}
		}
	}

	return order, balances
}

// isSettled checks the re-zero condition: the sum of absolute balances and
// the absolute signed sum both below RezeroEpsilon.
func isSettled(balances map[string]float64) bool {
	var sum, absSum float64
	for _, v := range balances {
		sum += v
		absSum += math.Abs(v)
	}
	return absSum < RezeroEpsilon && math.Abs(sum) < RezeroEpsilon
}
