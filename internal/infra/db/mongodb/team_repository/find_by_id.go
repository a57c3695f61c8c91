package team_repository

import (
	"context"

	"github.com/splitteam/expense-backend/internal/domain/models"
	"github.com/splitteam/expense-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindTeamByIdRepository struct {
	Db *mongo.Database
}

func NewFindTeamByIdRepository(db *mongo.Database) *FindTeamByIdRepository {
	return &FindTeamByIdRepository{
		Db: db,
	}
}

func (r *FindTeamByIdRepository) Find(teamId primitive.ObjectID) (*models.Team, error) {
	collection := r.Db.Collection("teams")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var team models.Team

	err := collection.FindOne(ctx, bson.M{"_id": teamId}).Decode(&team)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &team, nil
}
