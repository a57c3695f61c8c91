package settlement

import (
	"errors"
	"math"
	"testing"

	"github.com/splitteam/expense-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func memberIds(n int) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, n)
	for i := range ids {
		ids[i] = primitive.NewObjectID()
	}
	return ids
}

func TestSplitEvenly(t *testing.T) {
	tests := []struct {
		name      string
		amount    float64
		members   int
		wantShare float64
	}{
		{name: "clean two-way split", amount: 10.0, members: 2, wantShare: 5.0},
		{name: "indivisible three-way split", amount: 10.0, members: 3, wantShare: 3.33},
		{name: "single member", amount: 42.5, members: 1, wantShare: 42.5},
		{name: "seven-way split", amount: 100.0, members: 7, wantShare: 14.29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids := memberIds(tt.members)
			payer := ids[0]

			shares, err := SplitEvenly(tt.amount, payer, ids)
			if err != nil {
				t.Fatalf("SplitEvenly() error = %v", err)
			}
			if len(shares) != tt.members {
				t.Fatalf("got %d shares, want %d", len(shares), tt.members)
			}

			var sum float64
			for _, share := range shares {
				if share.Amount != tt.wantShare {
					t.Errorf("share amount = %v, want %v", share.Amount, tt.wantShare)
				}
				sum += share.Amount
			}

			// The rounding residual is bounded by one cent per member.
			if diff := math.Abs(sum - tt.amount); diff >= float64(tt.members)*0.01 {
				t.Errorf("share sum %v differs from %v by %v", sum, tt.amount, diff)
			}
		})
	}
}

func TestSplitEvenlyPayerShareApproved(t *testing.T) {
	ids := memberIds(4)
	payer := ids[2]

	shares, err := SplitEvenly(60.0, payer, ids)
	if err != nil {
		t.Fatalf("SplitEvenly() error = %v", err)
	}

	for _, share := range shares {
		if share.UserId == payer {
			if share.Status != models.StatusApproved {
				t.Errorf("payer share status = %q, want %q", share.Status, models.StatusApproved)
			}
			if share.PaymentMethod != models.MethodNone {
				t.Errorf("payer share method = %q, want unset", share.PaymentMethod)
			}
		} else if share.Status != models.StatusUnpaid {
			t.Errorf("member share status = %q, want %q", share.Status, models.StatusUnpaid)
		}
	}
}

func TestSplitEvenlyErrors(t *testing.T) {
	ids := memberIds(2)

	if _, err := SplitEvenly(0, ids[0], ids); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("zero amount: error = %v, want ErrInvalidAmount", err)
	}
	if _, err := SplitEvenly(-5, ids[0], ids); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("negative amount: error = %v, want ErrInvalidAmount", err)
	}
	if _, err := SplitEvenly(10, ids[0], nil); !errors.Is(err, ErrNoMembers) {
		t.Errorf("empty team: error = %v, want ErrNoMembers", err)
	}
}
