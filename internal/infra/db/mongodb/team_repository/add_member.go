package team_repository

import (
	"context"

	"github.com/splitteam/expense-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AddTeamMemberRepository struct {
	Db *mongo.Database
}

func NewAddTeamMemberRepository(db *mongo.Database) *AddTeamMemberRepository {
	return &AddTeamMemberRepository{
		Db: db,
	}
}

// AddMember appends the user to the team's member list. $addToSet keeps the
// join idempotent for users who scan the code twice.
func (r *AddTeamMemberRepository) AddMember(teamId primitive.ObjectID, userId primitive.ObjectID) error {
	collection := r.Db.Collection("teams")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.UpdateOne(ctx,
		bson.M{"_id": teamId},
		bson.M{"$addToSet": bson.M{"member_ids": userId}},
	)
	return err
}
