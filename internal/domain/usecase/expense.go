package usecase

import (
	"github.com/splitteam/expense-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateExpenseRepository interface {
	Create(*models.Expense) (*models.Expense, error)
}

type FindExpenseByIdRepository interface {
	Find(primitive.ObjectID) (*models.Expense, error)
}

// FindExpensesByTeamIdRepository returns a team's expenses in ascending
// creation-date order. The order is load-bearing for balance aggregation.
type FindExpensesByTeamIdRepository interface {
	Find(primitive.ObjectID) ([]models.Expense, error)
}

// UpdateExpenseRepository replaces a whole expense document. Implementations
// must compare the stored version and report a conflict instead of
// overwriting a concurrent write.
type UpdateExpenseRepository interface {
	Update(*models.Expense) error
}

type DeleteExpenseRepository interface {
	Delete(primitive.ObjectID) error
}
