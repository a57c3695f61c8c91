package settlement

import "github.com/splitteam/expense-backend/internal/domain/models"

// Action is the payer's verdict on a pending share.
type Action string

const (
	ActionApprove Action = "APPROVE"
	ActionReject  Action = "REJECT"
)

// Toggle cycles the quick cash flow on a share: an unpaid or rejected share
// becomes a pending cash request, a pending request (cash or transfer) is
// cancelled back to unpaid. Toggling an approved share is an error and leaves
// the share untouched.
func Toggle(share *models.ExpenseShare) error {
	switch share.Status.OrDefault() {
	case models.StatusUnpaid, models.StatusRejected:
		share.PaymentMethod = models.MethodCash
		share.Status = models.StatusPendingCash
	case models.StatusPendingCash, models.StatusPendingTransfer:
		share.Status = models.StatusUnpaid
		share.PaymentMethod = models.MethodNone
		share.ProofImage = ""
	case models.StatusApproved:
		return ErrAlreadyApproved
	}
	return nil
}

// Submit records an explicit payment claim. Cash goes straight to pending
// cash approval; a transfer stores the proof artifact and goes to pending
// transfer approval. Submit is valid from any state, including resubmission
// over an existing pending request.
func Submit(share *models.ExpenseShare, method models.PaymentMethod, proofImage string) error {
	switch method {
	case models.MethodCash:
		share.PaymentMethod = models.MethodCash
		share.ProofImage = ""
		share.Status = models.StatusPendingCash
	case models.MethodTransfer:
		share.PaymentMethod = models.MethodTransfer
		share.ProofImage = proofImage
		share.Status = models.StatusPendingTransfer
	default:
		return ErrInvalidMethod
	}
	return nil
}

// Decide applies the payer's approve/reject verdict. Only pending shares can
// be decided. A rejection clears the method and proof so the member can
// resubmit.
func Decide(share *models.ExpenseShare, action Action) error {
	if !share.Status.IsPending() {
		return ErrNotPending
	}

	switch action {
	case ActionApprove:
		share.Status = models.StatusApproved
	case ActionReject:
		share.Status = models.StatusRejected
		share.PaymentMethod = models.MethodNone
		share.ProofImage = ""
	default:
		return ErrInvalidAction
	}
	return nil
}
