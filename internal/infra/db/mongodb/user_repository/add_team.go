package user_repository

import (
	"context"

	"github.com/splitteam/expense-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AddUserTeamRepository struct {
	Db *mongo.Database
}

func NewAddUserTeamRepository(db *mongo.Database) *AddUserTeamRepository {
	return &AddUserTeamRepository{
		Db: db,
	}
}

func (r *AddUserTeamRepository) AddTeam(userId primitive.ObjectID, teamId primitive.ObjectID) error {
	collection := r.Db.Collection("users")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.UpdateOne(ctx,
		bson.M{"_id": userId},
		bson.M{"$addToSet": bson.M{"team_ids": teamId}},
	)
	return err
}
