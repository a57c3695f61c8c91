package expense_repository

import (
	"context"

	"github.com/splitteam/expense-backend/internal/domain/models"
	"github.com/splitteam/expense-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindExpensesByTeamIdRepository struct {
	Db *mongo.Database
}

func NewFindExpensesByTeamIdRepository(db *mongo.Database) *FindExpensesByTeamIdRepository {
	return &FindExpensesByTeamIdRepository{
		Db: db,
	}
}

// Find returns a team's expenses sorted by creation date ascending. Balance
// aggregation replays them in this order.
func (r *FindExpensesByTeamIdRepository) Find(teamId primitive.ObjectID) ([]models.Expense, error) {
	collection := r.Db.Collection("expenses")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := collection.Find(ctx, bson.M{"team_id": teamId}, opts)
	if err != nil {
		return nil, err
	}

	var expenses []models.Expense
	if err = cursor.All(ctx, &expenses); err != nil {
		return nil, err
	}

	return expenses, nil
}
