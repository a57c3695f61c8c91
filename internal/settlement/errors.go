package settlement

import "errors"

// Sentinel errors for the settlement workflow. Controllers match on these
// with errors.Is to pick the HTTP status and keep the messages stable.
var (
	ErrTeamNotFound    = errors.New("team not found")
	ErrNoMembers       = errors.New("no team members found")
	ErrInvalidAmount   = errors.New("amount must be greater than zero")
	ErrExpenseNotFound = errors.New("expense not found")
	ErrShareNotFound   = errors.New("share not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrAlreadyApproved = errors.New("payment already approved")
	ErrNotPending      = errors.New("share is not waiting for approval")
	ErrInvalidAction   = errors.New("invalid action")
	ErrInvalidMethod   = errors.New("invalid payment method")

	// ErrWriteConflict means an expense document changed between load and
	// save. The engine retries a few times before surfacing it.
	ErrWriteConflict = errors.New("expense was modified concurrently")
)
