package settlement

import (
	"math"

	"github.com/splitteam/expense-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Round2 rounds a monetary value to 2 decimal places. Every computed output
// leaving the engine goes through this at the boundary.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// SplitEvenly builds one share per team member for a new expense. Every
// member gets the same rounded amount; the residual cent left by rounding is
// accepted, not redistributed. The payer's own share is born APPROVED, all
// others UNPAID.
func SplitEvenly(amount float64, paidByUserId primitive.ObjectID, memberIds []primitive.ObjectID) ([]models.ExpenseShare, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if len(memberIds) == 0 {
		return nil, ErrNoMembers
	}

	splitAmount := Round2(amount / float64(len(memberIds)))

	shares := make([]models.ExpenseShare, 0, len(memberIds))
	for _, memberId := range memberIds {
		status := models.StatusUnpaid
		if memberId == paidByUserId {
			status = models.StatusApproved
		}
		shares = append(shares, models.ExpenseShare{
			UserId: memberId,
			Amount: splitAmount,
			Status: status,
		})
	}

	return shares, nil
}
