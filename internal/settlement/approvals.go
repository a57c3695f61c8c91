package settlement

import (
	"github.com/splitteam/expense-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PendingApproval is one expense with the shares its payer still has to
// approve or reject. Only pending shares are carried, never the full list.
type PendingApproval struct {
	ExpenseId   primitive.ObjectID    `json:"id"`
	Description string                `json:"description"`
	Amount      float64               `json:"amount"`
	Shares      []models.ExpenseShare `json:"shares"`
}

// PendingApprovals filters a team's expenses down to the approval queue of
// one payer: expenses they paid that hold at least one pending share.
// Expenses without pending shares are omitted entirely.
func PendingApprovals(expenses []models.Expense, payerId primitive.ObjectID) []PendingApproval {
	result := []PendingApproval{}

	for _, expense := range expenses {
		if expense.PaidByUserId != payerId {
			continue
		}

		var pending []models.ExpenseShare
		for _, share := range expense.Shares {
			if share.Status.IsPending() {
				pending = append(pending, share)
			}
		}
		if len(pending) == 0 {
			continue
		}

		result = append(result, PendingApproval{
			ExpenseId:   expense.Id,
			Description: expense.Description,
			Amount:      expense.Amount,
			Shares:      pending,
		})
	}

	return result
}

// OutstandingForUser totals what a user still owes (needToPay) and is still
// owed (needToGet) across a team's expenses. Unlike Aggregate, this view
// gates on approval: a share stops counting the moment it is APPROVED, so
// pending and rejected shares are still outstanding.
func OutstandingForUser(expenses []models.Expense, userId primitive.ObjectID) (needToPay, needToGet float64) {
	for _, expense := range expenses {
		payerId := expense.PaidByUserId

		for _, share := range expense.Shares {
			if share.Status.OrDefault() == models.StatusApproved {
				continue
			}

			if share.UserId == userId && share.UserId != payerId {
				needToPay += share.Amount
			}
			if payerId == userId && share.UserId != userId {
				needToGet += share.Amount
			}
		}
	}

	return Round2(needToPay), Round2(needToGet)
}
