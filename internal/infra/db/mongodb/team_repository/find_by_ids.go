package team_repository

import (
	"context"

	"github.com/splitteam/expense-backend/internal/domain/models"
	"github.com/splitteam/expense-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindTeamsByIdsRepository struct {
	Db *mongo.Database
}

func NewFindTeamsByIdsRepository(db *mongo.Database) *FindTeamsByIdsRepository {
	return &FindTeamsByIdsRepository{
		Db: db,
	}
}

func (r *FindTeamsByIdsRepository) Find(teamIds []primitive.ObjectID) ([]models.Team, error) {
	collection := r.Db.Collection("teams")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	cursor, err := collection.Find(ctx, bson.M{"_id": bson.M{"$in": teamIds}})
	if err != nil {
		return nil, err
	}

	var teams []models.Team
	if err = cursor.All(ctx, &teams); err != nil {
		return nil, err
	}

	return teams, nil
}
