package settlement

import (
	"errors"
	"testing"

	"github.com/splitteam/expense-backend/internal/domain/models"
)

func TestToggleRoundTrip(t *testing.T) {
	share := &models.ExpenseShare{Status: models.StatusUnpaid}

	if err := Toggle(share); err != nil {
		t.Fatalf("first toggle error = %v", err)
	}
	if share.Status != models.StatusPendingCash {
		t.Fatalf("after first toggle status = %q, want %q", share.Status, models.StatusPendingCash)
	}
	if share.PaymentMethod != models.MethodCash {
		t.Errorf("after first toggle method = %q, want %q", share.PaymentMethod, models.MethodCash)
	}

	if err := Toggle(share); err != nil {
		t.Fatalf("second toggle error = %v", err)
	}
	if share.Status != models.StatusUnpaid {
		t.Errorf("after second toggle status = %q, want %q", share.Status, models.StatusUnpaid)
	}
	if share.PaymentMethod != models.MethodNone {
		t.Errorf("after second toggle method = %q, want cleared", share.PaymentMethod)
	}
}

func TestToggleTransitions(t *testing.T) {
	tests := []struct {
		name       string
		share      models.ExpenseShare
		wantStatus models.ShareStatus
		wantErr    error
	}{
		{
			name:       "rejected share restarts cash request",
			share:      models.ExpenseShare{Status: models.StatusRejected},
			wantStatus: models.StatusPendingCash,
		},
		{
			name:       "missing status defaults to unpaid",
			share:      models.ExpenseShare{},
			wantStatus: models.StatusPendingCash,
		},
		{
			name: "pending transfer cancels back to unpaid and drops proof",
			share: models.ExpenseShare{
				Status:        models.StatusPendingTransfer,
				PaymentMethod: models.MethodTransfer,
				ProofImage:    "proof-bytes",
			},
			wantStatus: models.StatusUnpaid,
		},
		{
			name:       "approved share cannot be toggled",
			share:      models.ExpenseShare{Status: models.StatusApproved},
			wantStatus: models.StatusApproved,
			wantErr:    ErrAlreadyApproved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			share := tt.share
			err := Toggle(&share)

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Toggle() error = %v, want %v", err, tt.wantErr)
			}
			if share.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", share.Status, tt.wantStatus)
			}
			if share.Status == models.StatusUnpaid && share.ProofImage != "" {
				t.Errorf("cancelled share kept proof %q", share.ProofImage)
			}
		})
	}
}

func TestSubmit(t *testing.T) {
	share := &models.ExpenseShare{Status: models.StatusRejected}

	if err := Submit(share, models.MethodTransfer, "screenshot"); err != nil {
		t.Fatalf("Submit(transfer) error = %v", err)
	}
	if share.Status != models.StatusPendingTransfer {
		t.Errorf("status = %q, want %q", share.Status, models.StatusPendingTransfer)
	}
	if share.ProofImage != "screenshot" {
		t.Errorf("proof = %q, want stored", share.ProofImage)
	}

	// Resubmitting as cash replaces the request and drops the stale proof.
	if err := Submit(share, models.MethodCash, ""); err != nil {
		t.Fatalf("Submit(cash) error = %v", err)
	}
	if share.Status != models.StatusPendingCash {
		t.Errorf("status = %q, want %q", share.Status, models.StatusPendingCash)
	}
	if share.ProofImage != "" {
		t.Errorf("cash submission kept proof %q", share.ProofImage)
	}

	if err := Submit(share, "CHECK", ""); !errors.Is(err, ErrInvalidMethod) {
		t.Errorf("Submit(unknown) error = %v, want ErrInvalidMethod", err)
	}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name       string
		share      models.ExpenseShare
		action     Action
		wantStatus models.ShareStatus
		wantErr    error
	}{
		{
			name:       "approve pending cash",
			share:      models.ExpenseShare{Status: models.StatusPendingCash, PaymentMethod: models.MethodCash},
			action:     ActionApprove,
			wantStatus: models.StatusApproved,
		},
		{
			name: "reject pending transfer clears method and proof",
			share: models.ExpenseShare{
				Status:        models.StatusPendingTransfer,
				PaymentMethod: models.MethodTransfer,
				ProofImage:    "proof",
			},
			action:     ActionReject,
			wantStatus: models.StatusRejected,
		},
		{
			name:       "approve on unpaid is rejected",
			share:      models.ExpenseShare{Status: models.StatusUnpaid},
			action:     ActionApprove,
			wantStatus: models.StatusUnpaid,
			wantErr:    ErrNotPending,
		},
		{
			name:       "reject on approved is rejected",
			share:      models.ExpenseShare{Status: models.StatusApproved},
			action:     ActionReject,
			wantStatus: models.StatusApproved,
			wantErr:    ErrNotPending,
		},
		{
			name:       "unknown action",
			share:      models.ExpenseShare{Status: models.StatusPendingCash},
			action:     "MAYBE",
			wantStatus: models.StatusPendingCash,
			wantErr:    ErrInvalidAction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			share := tt.share
			err := Decide(&share, tt.action)

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Decide() error = %v, want %v", err, tt.wantErr)
			}
			if share.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", share.Status, tt.wantStatus)
			}
			if share.Status == models.StatusRejected {
				if share.PaymentMethod != models.MethodNone || share.ProofImage != "" {
					t.Errorf("rejected share kept method=%q proof=%q", share.PaymentMethod, share.ProofImage)
				}
			}
		})
	}
}
