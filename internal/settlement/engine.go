package settlement

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/splitteam/expense-backend/internal/domain/models"
	"github.com/splitteam/expense-backend/internal/domain/usecase"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// writeRetries bounds how many times a share mutation re-runs its
// load-mutate-save cycle after losing a version check.
const writeRetries = 3

// Balance is one row of a team summary. Member is the user's email when the
// identity lookup resolves, the raw id otherwise.
type Balance struct {
	UserId string  `json:"userId"`
	Member string  `json:"member"`
	Amount float64 `json:"amount"`
}

// TeamSummary is the per-user view of one team: what the user still owes and
// is still owed, counting only shares that are not yet approved.
type TeamSummary struct {
	models.Team
	UserName  string  `json:"userName"`
	NeedToPay float64 `json:"needToPay"`
	NeedToGet float64 `json:"needToGet"`
}

// SummaryCache holds computed team summaries between mutations. Implementations
// are expected to swallow and log their own transport errors; a failed cache
// never fails a summary request.
type SummaryCache interface {
	Get(teamId string) ([]Balance, bool)
	Set(teamId string, balances []Balance)
	Invalidate(teamId string)
}

// Engine orchestrates the settlement workflow over the storage repositories.
// Every share mutation loads the owning expense, runs one state machine
// transition and writes the whole document back under a version check.
type Engine struct {
	FindTeamByIdRepository       usecase.FindTeamByIdRepository
	FindUserByIdRepository       usecase.FindUserByIdRepository
	CreateExpenseRepository      usecase.CreateExpenseRepository
	FindExpenseByIdRepository    usecase.FindExpenseByIdRepository
	FindExpensesByTeamRepository usecase.FindExpensesByTeamIdRepository
	UpdateExpenseRepository      usecase.UpdateExpenseRepository
	DeleteExpenseRepository      usecase.DeleteExpenseRepository
	SummaryCache                 SummaryCache
}

func NewEngine(
	findTeamById usecase.FindTeamByIdRepository,
	findUserById usecase.FindUserByIdRepository,
	createExpense usecase.CreateExpenseRepository,
	findExpenseById usecase.FindExpenseByIdRepository,
	findExpensesByTeam usecase.FindExpensesByTeamIdRepository,
	updateExpense usecase.UpdateExpenseRepository,
	deleteExpense usecase.DeleteExpenseRepository,
	summaryCache SummaryCache,
) *Engine {
	return &Engine{
		FindTeamByIdRepository:       findTeamById,
		FindUserByIdRepository:       findUserById,
		CreateExpenseRepository:      createExpense,
		FindExpenseByIdRepository:    findExpenseById,
		FindExpensesByTeamRepository: findExpensesByTeam,
		UpdateExpenseRepository:      updateExpense,
		DeleteExpenseRepository:      deleteExpense,
		SummaryCache:                 summaryCache,
	}
}

// CreateExpense splits a new expense evenly across the team's current
// members and persists it with its shares in one document.
func (e *Engine) CreateExpense(teamId, paidByUserId primitive.ObjectID, amount float64, description string) (*models.Expense, error) {
	team, err := e.FindTeamByIdRepository.Find(teamId)
	if err != nil {
		return nil, fmt.Errorf("finding team: %w", err)
	}
	if team == nil {
		return nil, ErrTeamNotFound
	}

	shares, err := SplitEvenly(amount, paidByUserId, team.MemberIds)
	if err != nil {
		return nil, err
	}

	expense, err := e.CreateExpenseRepository.Create(&models.Expense{
		TeamId:       teamId,
		Description:  description,
		Amount:       amount,
		PaidByUserId: paidByUserId,
		Shares:       shares,
	})
	if err != nil {
		return nil, fmt.Errorf("creating expense: %w", err)
	}

	e.invalidateSummary(teamId)
	return expense, nil
}

// TogglePay runs the quick cash toggle on the user's share.
func (e *Engine) TogglePay(expenseId, userId primitive.ObjectID) error {
	return e.mutateShare(expenseId, userId, Toggle)
}

// SubmitPayment records an explicit cash or transfer payment claim on the
// user's share.
func (e *Engine) SubmitPayment(expenseId, userId primitive.ObjectID, method models.PaymentMethod, proofImage string) error {
	return e.mutateShare(expenseId, userId, func(share *models.ExpenseShare) error {
		return Submit(share, method, proofImage)
	})
}

// DecideApproval applies the payer's approve/reject verdict to a member's
// pending share. Payer authorization is checked by the caller before the
// verdict reaches the engine.
func (e *Engine) DecideApproval(expenseId, memberId primitive.ObjectID, action Action) error {
	return e.mutateShare(expenseId, memberId, func(share *models.ExpenseShare) error {
		return Decide(share, action)
	})
}

// ListPendingApprovals returns the payer's approval queue for one team.
func (e *Engine) ListPendingApprovals(teamId, payerId primitive.ObjectID) ([]PendingApproval, error) {
	expenses, err := e.FindExpensesByTeamRepository.Find(teamId)
	if err != nil {
		return nil, fmt.Errorf("finding team expenses: %w", err)
	}
	return PendingApprovals(expenses, payerId), nil
}

// ComputeSummary replays the team's expense history in creation order and
// returns net balances, largest creditor first. Results are served from the
// summary cache when a fresh entry exists.
func (e *Engine) ComputeSummary(teamId primitive.ObjectID) ([]Balance, error) {
	if e.SummaryCache != nil {
		if cached, ok := e.SummaryCache.Get(teamId.Hex()); ok {
			return cached, nil
		}
	}

	expenses, err := e.FindExpensesByTeamRepository.Find(teamId)
	if err != nil {
		return nil, fmt.Errorf("finding team expenses: %w", err)
	}

	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Date.Before(expenses[j].Date)
	})

	order, balances := Aggregate(expenses)

	result := make([]Balance, 0, len(order))
	for _, userId := range order {
		result = append(result, Balance{
			UserId: userId,
			Member: e.resolveMember(userId),
			Amount: Round2(balances[userId]),
		})
	}

	// Largest creditors first; equal amounts keep first-appearance order.
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Amount > result[j].Amount
	})

	if e.SummaryCache != nil {
		e.SummaryCache.Set(teamId.Hex(), result)
	}
	return result, nil
}

// DeleteExpense removes an expense outright. The next summary query simply
// no longer sees its contribution.
func (e *Engine) DeleteExpense(expenseId primitive.ObjectID) error {
	expense, err := e.FindExpenseByIdRepository.Find(expenseId)
	if err != nil {
		return fmt.Errorf("finding expense: %w", err)
	}
	if expense == nil {
		return ErrExpenseNotFound
	}

	if err := e.DeleteExpenseRepository.Delete(expenseId); err != nil {
		return fmt.Errorf("deleting expense: %w", err)
	}

	e.invalidateSummary(expense.TeamId)
	return nil
}

// TeamSummariesForUser builds the approval-gated needToPay/needToGet view for
// every team the user belongs to.
func (e *Engine) TeamSummariesForUser(userId primitive.ObjectID) ([]TeamSummary, error) {
	user, err := e.FindUserByIdRepository.Find(userId)
	if err != nil {
		return nil, fmt.Errorf("finding user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	summaries := []TeamSummary{}
	for _, teamId := range user.TeamIds {
		team, err := e.FindTeamByIdRepository.Find(teamId)
		if err != nil {
			return nil, fmt.Errorf("finding team: %w", err)
		}
		if team == nil {
			continue
		}

		expenses, err := e.FindExpensesByTeamRepository.Find(teamId)
		if err != nil {
			return nil, fmt.Errorf("finding team expenses: %w", err)
		}

		needToPay, needToGet := OutstandingForUser(expenses, userId)
		summaries = append(summaries, TeamSummary{
			Team:      *team,
			UserName:  user.FullName,
			NeedToPay: needToPay,
			NeedToGet: needToGet,
		})
	}

	return summaries, nil
}

// mutateShare is the read-modify-write cycle shared by every share mutation.
// A lost version check restarts the whole cycle against the fresh document.
func (e *Engine) mutateShare(expenseId, userId primitive.ObjectID, mutate func(*models.ExpenseShare) error) error {
	for attempt := 1; attempt <= writeRetries; attempt++ {
		expense, err := e.FindExpenseByIdRepository.Find(expenseId)
		if err != nil {
			return fmt.Errorf("finding expense: %w", err)
		}
		if expense == nil {
			return ErrExpenseNotFound
		}

		share := expense.ShareOf(userId)
		if share == nil {
			return ErrShareNotFound
		}

		if err := mutate(share); err != nil {
			return err
		}

		err = e.UpdateExpenseRepository.Update(expense)
		if err == nil {
			e.invalidateSummary(expense.TeamId)
			return nil
		}
		if !errors.Is(err, ErrWriteConflict) {
			return fmt.Errorf("updating expense: %w", err)
		}

		slog.Debug("expense write conflict, retrying",
			"expense_id", expenseId.Hex(),
			"attempt", attempt,
		)
	}

	return ErrWriteConflict
}

func (e *Engine) invalidateSummary(teamId primitive.ObjectID) {
	if e.SummaryCache != nil {
		e.SummaryCache.Invalidate(teamId.Hex())
	}
}

func (e *Engine) resolveMember(userId string) string {
	objectId, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return userId
	}

	user, err := e.FindUserByIdRepository.Find(objectId)
	if err != nil {
		slog.Warn("identity lookup failed, using raw id", "user_id", userId, "error", err)
		return userId
	}
	if user == nil {
		return userId
	}
	return user.Email
}
