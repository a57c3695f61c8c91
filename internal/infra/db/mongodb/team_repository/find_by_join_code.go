package team_repository

import (
	"context"

	"github.com/splitteam/expense-backend/internal/domain/models"
	"github.com/splitteam/expense-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindTeamByJoinCodeRepository struct {
	Db *mongo.Database
}

func NewFindTeamByJoinCodeRepository(db *mongo.Database) *FindTeamByJoinCodeRepository {
	return &FindTeamByJoinCodeRepository{
		Db: db,
	}
}

func (r *FindTeamByJoinCodeRepository) FindByJoinCode(joinCode string) (*models.Team, error) {
	collection := r.Db.Collection("teams")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var team models.Team

	err := collection.FindOne(ctx, bson.M{"join_code": joinCode}).Decode(&team)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &team, nil
}
