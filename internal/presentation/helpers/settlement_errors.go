package helpers

import (
	"errors"
	"net/http"

	presentationProtocols "github.com/splitteam/expense-backend/internal/presentation/protocols"
	"github.com/splitteam/expense-backend/internal/settlement"
)

// SettlementErrorResponse translates settlement errors into HTTP responses
// so every controller reports the same status for the same failure.
func SettlementErrorResponse(err error) *presentationProtocols.HttpResponse {
	status := http.StatusInternalServerError
	message := "an unexpected error occurred"

	switch {
	case errors.Is(err, settlement.ErrTeamNotFound),
		errors.Is(err, settlement.ErrExpenseNotFound),
		errors.Is(err, settlement.ErrShareNotFound),
		errors.Is(err, settlement.ErrUserNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, settlement.ErrInvalidAmount),
		errors.Is(err, settlement.ErrNoMembers),
		errors.Is(err, settlement.ErrInvalidAction),
		errors.Is(err, settlement.ErrInvalidMethod):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, settlement.ErrAlreadyApproved),
		errors.Is(err, settlement.ErrNotPending),
		errors.Is(err, settlement.ErrWriteConflict):
		status = http.StatusConflict
		message = err.Error()
	}

	return CreateResponse(&presentationProtocols.ErrorResponse{
		Error: message,
	}, status)
}
