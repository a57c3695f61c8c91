package team_repository

import (
	"context"
	"time"

	"github.com/splitteam/expense-backend/internal/domain/models"
	"github.com/splitteam/expense-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateTeamRepository struct {
	Db *mongo.Database
}

func NewCreateTeamRepository(db *mongo.Database) *CreateTeamRepository {
	return &CreateTeamRepository{
		Db: db,
	}
}

func (r *CreateTeamRepository) Create(team *models.Team) (*models.Team, error) {
	collection := r.Db.Collection("teams")

	team.Id = primitive.NewObjectID()
	team.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()
	_, err := collection.InsertOne(ctx, team)
	if err != nil {
		return nil, err
	}

	return team, nil
}
