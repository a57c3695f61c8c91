package expense_repository

import (
	"context"

	"github.com/splitteam/expense-backend/internal/domain/models"
	"github.com/splitteam/expense-backend/internal/infra/db/mongodb/helpers"
	"github.com/splitteam/expense-backend/internal/settlement"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UpdateExpenseRepository struct {
	Db *mongo.Database
}

func NewUpdateExpenseRepository(db *mongo.Database) *UpdateExpenseRepository {
	return &UpdateExpenseRepository{
		Db: db,
	}
}

// Update replaces the whole expense document, but only if nobody else wrote
// it since it was loaded: the filter matches on the loaded version and the
// replacement carries version+1. A miss means a concurrent writer won and the
// caller must reload.
func (r *UpdateExpenseRepository) Update(expense *models.Expense) error {
	collection := r.Db.Collection("expenses")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	loadedVersion := expense.Version
	expense.Version = loadedVersion + 1

	result, err := collection.ReplaceOne(ctx, bson.M{
		"_id":     expense.Id,
		"version": loadedVersion,
	}, expense)
	if err != nil {
		expense.Version = loadedVersion
		return err
	}

	if result.MatchedCount == 0 {
		expense.Version = loadedVersion
		return settlement.ErrWriteConflict
	}

	return nil
}
