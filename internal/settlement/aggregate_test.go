package settlement

import (
	"math"
	"testing"
	"time"

	"github.com/splitteam/expense-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// expenseAt builds an expense with an even split at the given time offset.
func expenseAt(teamMembers []primitive.ObjectID, payer primitive.ObjectID, amount float64, minute int) models.Expense {
	shares, err := SplitEvenly(amount, payer, teamMembers)
	if err != nil {
		panic(err)
	}
	return models.Expense{
		Id:           primitive.NewObjectID(),
		PaidByUserId: payer,
		Amount:       amount,
		Date:         time.Date(2025, 6, 1, 12, minute, 0, 0, time.UTC),
		Shares:       shares,
	}
}

func TestAggregateSingleExpense(t *testing.T) {
	members := memberIds(3)
	payer := members[0]

	_, balances := Aggregate([]models.Expense{expenseAt(members, payer, 30.0, 0)})

	// Payer fronted 30 and owes their own 10 back.
	if got, want := balances[payer.Hex()], 20.0; math.Abs(got-want) > 0.01 {
		t.Errorf("payer balance = %v, want %v", got, want)
	}
	for _, m := range members[1:] {
		if got, want := balances[m.Hex()], -10.0; math.Abs(got-want) > 0.01 {
			t.Errorf("member balance = %v, want %v", got, want)
		}
	}
}

func TestAggregateRezeroOnPerfectBalance(t *testing.T) {
	members := memberIds(2)

	expenses := []models.Expense{
		expenseAt(members, members[0], 10.0, 0),
		expenseAt(members, members[1], 10.0, 1),
	}

	_, balances := Aggregate(expenses)

	for _, m := range members {
		if balances[m.Hex()] != 0.0 {
			t.Errorf("balance for %s = %v, want exactly 0", m.Hex(), balances[m.Hex()])
		}
	}
}

func TestAggregateRezeroRequiresEveryoneNearZero(t *testing.T) {
	members := memberIds(3)

	// A owes B, B owes A the same, C untouched beyond their own shares:
	// globally the sum is near zero well before everyone individually is.
	expenses := []models.Expense{
		expenseAt(members, members[0], 30.0, 0),
		expenseAt(members, members[1], 30.0, 1),
	}

	_, balances := Aggregate(expenses)

	// members[2] still owes 10+10; no reset may have fired.
	if got := balances[members[2].Hex()]; math.Abs(got+20.0) > 0.01 {
		t.Errorf("non-settled member balance = %v, want -20", got)
	}
	if got := balances[members[0].Hex()]; math.Abs(got-10.0) > 0.01 {
		t.Errorf("payer balance = %v, want 10", got)
	}
}

func TestAggregateFinalBalancesOrderInvariant(t *testing.T) {
	members := memberIds(3)

	expenses := []models.Expense{
		expenseAt(members, members[0], 30.0, 0),
		expenseAt(members, members[1], 12.0, 1),
		expenseAt(members, members[2], 45.0, 2),
	}

	_, forward := Aggregate(expenses)

	reversed := []models.Expense{expenses[2], expenses[1], expenses[0]}
	_, backward := Aggregate(reversed)

	for id, want := range forward {
		if got := backward[id]; math.Abs(got-want) > 0.005 {
			t.Errorf("balance for %s = %v under reordering, want %v", id, got, want)
		}
	}
}

func TestAggregateIgnoresApprovalStatus(t *testing.T) {
	members := memberIds(2)
	expense := expenseAt(members, members[0], 10.0, 0)
	for i := range expense.Shares {
		expense.Shares[i].Status = models.StatusApproved
	}

	_, balances := Aggregate([]models.Expense{expense})

	if got := balances[members[1].Hex()]; math.Abs(got+5.0) > 0.01 {
		t.Errorf("approved share still counts: balance = %v, want -5", got)
	}
}

func TestAggregateFirstAppearanceOrder(t *testing.T) {
	members := memberIds(2)

	order, _ := Aggregate([]models.Expense{expenseAt(members, members[1], 8.0, 0)})

	if len(order) != 2 {
		t.Fatalf("got %d ids, want 2", len(order))
	}
	// Shares are built in member order, so the first share's member leads.
	if order[0] != members[0].Hex() {
		t.Errorf("order[0] = %s, want %s", order[0], members[0].Hex())
	}
}
