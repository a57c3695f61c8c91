package settlement

import (
	"errors"
	"testing"
	"time"

	"github.com/splitteam/expense-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeStore is an in-memory stand-in for the mongo repositories, enforcing
// the same version check the real update performs.
type fakeStore struct {
	teams    map[primitive.ObjectID]*models.Team
	users    map[primitive.ObjectID]*models.User
	expenses map[primitive.ObjectID]models.Expense

	clock          int
	failUpdates    int // updates to fail with ErrWriteConflict before succeeding
	updateAttempts int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		teams:    make(map[primitive.ObjectID]*models.Team),
		users:    make(map[primitive.ObjectID]*models.User),
		expenses: make(map[primitive.ObjectID]models.Expense),
	}
}

func (s *fakeStore) Find(id primitive.ObjectID) (*models.Team, error) {
	return s.teams[id], nil
}

type fakeUsers struct{ store *fakeStore }

func (f fakeUsers) Find(id primitive.ObjectID) (*models.User, error) {
	return f.store.users[id], nil
}

type fakeExpenses struct{ store *fakeStore }

func (f fakeExpenses) Create(expense *models.Expense) (*models.Expense, error) {
	expense.Id = primitive.NewObjectID()
	expense.Date = time.Date(2025, 6, 1, 12, f.store.clock, 0, 0, time.UTC)
	f.store.clock++
	f.store.expenses[expense.Id] = *expense
	return expense, nil
}

func (f fakeExpenses) Find(id primitive.ObjectID) (*models.Expense, error) {
	expense, ok := f.store.expenses[id]
	if !ok {
		return nil, nil
	}
	copied := expense
	copied.Shares = append([]models.ExpenseShare(nil), expense.Shares...)
	return &copied, nil
}

func (f fakeExpenses) Update(expense *models.Expense) error {
	f.store.updateAttempts++
	stored, ok := f.store.expenses[expense.Id]
	if !ok {
		return ErrExpenseNotFound
	}
	if f.store.failUpdates > 0 {
		f.store.failUpdates--
		return ErrWriteConflict
	}
	if stored.Version != expense.Version {
		return ErrWriteConflict
	}
	expense.Version++
	f.store.expenses[expense.Id] = *expense
	return nil
}

func (f fakeExpenses) Delete(id primitive.ObjectID) error {
	delete(f.store.expenses, id)
	return nil
}

type fakeTeamExpenses struct{ store *fakeStore }

func (f fakeTeamExpenses) Find(teamId primitive.ObjectID) ([]models.Expense, error) {
	var result []models.Expense
	for _, expense := range f.store.expenses {
		if expense.TeamId == teamId {
			result = append(result, expense)
		}
	}
	return result, nil
}

type fakeCache struct {
	entries     map[string][]Balance
	invalidated int
}

func (c *fakeCache) Get(teamId string) ([]Balance, bool) {
	b, ok := c.entries[teamId]
	return b, ok
}

func (c *fakeCache) Set(teamId string, balances []Balance) {
	c.entries[teamId] = balances
}

func (c *fakeCache) Invalidate(teamId string) {
	delete(c.entries, teamId)
	c.invalidated++
}

func newTestEngine(store *fakeStore, cache SummaryCache) *Engine {
	expenses := fakeExpenses{store: store}
	return NewEngine(
		store,
		fakeUsers{store: store},
		expenses,
		expenses,
		fakeTeamExpenses{store: store},
		expenses,
		expenses,
		cache,
	)
}

func seedTeam(store *fakeStore, memberCount int) (*models.Team, []primitive.ObjectID) {
	members := memberIds(memberCount)
	team := &models.Team{
		Id:        primitive.NewObjectID(),
		TeamName:  "trip",
		MemberIds: members,
	}
	store.teams[team.Id] = team
	for i, id := range members {
		store.users[id] = &models.User{
			Id:    id,
			Email: string(rune('a'+i)) + "@example.com",
		}
	}
	return team, members
}

func TestEngineCreateExpense(t *testing.T) {
	store := newFakeStore()
	team, members := seedTeam(store, 3)
	engine := newTestEngine(store, nil)

	expense, err := engine.CreateExpense(team.Id, members[0], 30.0, "groceries")
	if err != nil {
		t.Fatalf("CreateExpense() error = %v", err)
	}
	if len(expense.Shares) != 3 {
		t.Fatalf("got %d shares, want 3", len(expense.Shares))
	}

	persisted := store.expenses[expense.Id]
	if persisted.Description != "groceries" || persisted.Amount != 30.0 {
		t.Errorf("persisted expense = %+v", persisted)
	}
	if persisted.Shares[0].Status != models.StatusApproved {
		t.Errorf("payer share status = %q, want APPROVED", persisted.Shares[0].Status)
	}

	if _, err := engine.CreateExpense(primitive.NewObjectID(), members[0], 10.0, "x"); !errors.Is(err, ErrTeamNotFound) {
		t.Errorf("unknown team: error = %v, want ErrTeamNotFound", err)
	}
	if _, err := engine.CreateExpense(team.Id, members[0], -1.0, "x"); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("bad amount: error = %v, want ErrInvalidAmount", err)
	}
}

func TestEngineTogglePay(t *testing.T) {
	store := newFakeStore()
	team, members := seedTeam(store, 2)
	engine := newTestEngine(store, nil)

	expense, err := engine.CreateExpense(team.Id, members[0], 10.0, "lunch")
	if err != nil {
		t.Fatalf("CreateExpense() error = %v", err)
	}

	if err := engine.TogglePay(expense.Id, members[1]); err != nil {
		t.Fatalf("TogglePay() error = %v", err)
	}
	if got := store.expenses[expense.Id].Shares[1].Status; got != models.StatusPendingCash {
		t.Errorf("persisted status = %q, want %q", got, models.StatusPendingCash)
	}

	if err := engine.TogglePay(expense.Id, members[1]); err != nil {
		t.Fatalf("second TogglePay() error = %v", err)
	}
	if got := store.expenses[expense.Id].Shares[1].Status; got != models.StatusUnpaid {
		t.Errorf("persisted status = %q, want %q", got, models.StatusUnpaid)
	}

	// The payer's own share was born approved and cannot be toggled.
	if err := engine.TogglePay(expense.Id, members[0]); !errors.Is(err, ErrAlreadyApproved) {
		t.Errorf("toggle approved: error = %v, want ErrAlreadyApproved", err)
	}

	if err := engine.TogglePay(primitive.NewObjectID(), members[1]); !errors.Is(err, ErrExpenseNotFound) {
		t.Errorf("unknown expense: error = %v, want ErrExpenseNotFound", err)
	}
	if err := engine.TogglePay(expense.Id, primitive.NewObjectID()); !errors.Is(err, ErrShareNotFound) {
		t.Errorf("unknown user: error = %v, want ErrShareNotFound", err)
	}
}

func TestEngineSubmitAndDecide(t *testing.T) {
	store := newFakeStore()
	team, members := seedTeam(store, 2)
	engine := newTestEngine(store, nil)

	expense, _ := engine.CreateExpense(team.Id, members[0], 10.0, "cab")

	if err := engine.SubmitPayment(expense.Id, members[1], models.MethodTransfer, "proof"); err != nil {
		t.Fatalf("SubmitPayment() error = %v", err)
	}

	pending, err := engine.ListPendingApprovals(team.Id, members[0])
	if err != nil {
		t.Fatalf("ListPendingApprovals() error = %v", err)
	}
	if len(pending) != 1 || len(pending[0].Shares) != 1 {
		t.Fatalf("pending = %+v, want one expense with one share", pending)
	}

	if err := engine.DecideApproval(expense.Id, members[1], ActionApprove); err != nil {
		t.Fatalf("DecideApproval() error = %v", err)
	}
	if got := store.expenses[expense.Id].Shares[1].Status; got != models.StatusApproved {
		t.Errorf("persisted status = %q, want APPROVED", got)
	}

	// Nothing pending anymore.
	pending, _ = engine.ListPendingApprovals(team.Id, members[0])
	if len(pending) != 0 {
		t.Errorf("pending after approval = %+v, want empty", pending)
	}

	if err := engine.DecideApproval(expense.Id, members[1], ActionApprove); !errors.Is(err, ErrNotPending) {
		t.Errorf("re-approve: error = %v, want ErrNotPending", err)
	}
}

func TestEngineVersionConflictRetry(t *testing.T) {
	store := newFakeStore()
	team, members := seedTeam(store, 2)
	engine := newTestEngine(store, nil)

	expense, _ := engine.CreateExpense(team.Id, members[0], 10.0, "coffee")

	store.failUpdates = 2
	store.updateAttempts = 0
	if err := engine.TogglePay(expense.Id, members[1]); err != nil {
		t.Fatalf("TogglePay() with transient conflicts error = %v", err)
	}
	if store.updateAttempts != 3 {
		t.Errorf("update attempts = %d, want 3", store.updateAttempts)
	}

	store.failUpdates = 1000
	if err := engine.TogglePay(expense.Id, members[1]); !errors.Is(err, ErrWriteConflict) {
		t.Errorf("persistent conflict: error = %v, want ErrWriteConflict", err)
	}
}

func TestEngineComputeSummary(t *testing.T) {
	store := newFakeStore()
	team, members := seedTeam(store, 2)
	cache := &fakeCache{entries: make(map[string][]Balance)}
	engine := newTestEngine(store, cache)

	expense, _ := engine.CreateExpense(team.Id, members[0], 10.0, "brunch")

	summary, err := engine.ComputeSummary(team.Id)
	if err != nil {
		t.Fatalf("ComputeSummary() error = %v", err)
	}
	if len(summary) != 2 {
		t.Fatalf("got %d rows, want 2", len(summary))
	}
	if summary[0].Member != "a@example.com" || summary[0].Amount != 5.0 {
		t.Errorf("summary[0] = %+v, want a@example.com / 5", summary[0])
	}
	if summary[1].Member != "b@example.com" || summary[1].Amount != -5.0 {
		t.Errorf("summary[1] = %+v, want b@example.com / -5", summary[1])
	}

	if _, ok := cache.entries[team.Id.Hex()]; !ok {
		t.Errorf("summary was not cached")
	}

	// Deleting the only expense invalidates the cache and empties the summary.
	if err := engine.DeleteExpense(expense.Id); err != nil {
		t.Fatalf("DeleteExpense() error = %v", err)
	}
	summary, err = engine.ComputeSummary(team.Id)
	if err != nil {
		t.Fatalf("ComputeSummary() after delete error = %v", err)
	}
	if len(summary) != 0 {
		t.Errorf("summary after delete = %+v, want empty", summary)
	}
}

func TestEngineTeamSummariesForUser(t *testing.T) {
	store := newFakeStore()
	team, members := seedTeam(store, 2)
	for _, id := range members {
		store.users[id].TeamIds = []primitive.ObjectID{team.Id}
		store.users[id].FullName = "Member " + id.Hex()[:4]
	}
	engine := newTestEngine(store, nil)

	if _, err := engine.CreateExpense(team.Id, members[0], 10.0, "tickets"); err != nil {
		t.Fatalf("CreateExpense() error = %v", err)
	}

	summaries, err := engine.TeamSummariesForUser(members[1])
	if err != nil {
		t.Fatalf("TeamSummariesForUser() error = %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("got %d summaries, want 1", len(summaries))
	}
	if summaries[0].NeedToPay != 5.0 || summaries[0].NeedToGet != 0.0 {
		t.Errorf("summary = pay %v / get %v, want 5 / 0", summaries[0].NeedToPay, summaries[0].NeedToGet)
	}

	if _, err := engine.TeamSummariesForUser(primitive.NewObjectID()); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("unknown user: error = %v, want ErrUserNotFound", err)
	}
}
