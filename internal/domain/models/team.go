package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Team groups members that split expenses together. Membership is
// append-only: members join through the join code and are never removed.
type Team struct {
	Id        primitive.ObjectID   `bson:"_id" json:"id"`
	TeamName  string               `bson:"team_name" json:"teamName"`
	OwnerId   primitive.ObjectID   `bson:"owner_id" json:"ownerId"`
	JoinCode  string               `bson:"join_code" json:"joinCode"`
	CreatedAt time.Time            `bson:"created_at" json:"createdAt"`
	MemberIds []primitive.ObjectID `bson:"member_ids" json:"memberIds"`
}

// HasMember reports whether userId already belongs to the team.
func (t *Team) HasMember(userId primitive.ObjectID) bool {
	for _, id := range t.MemberIds {
		if id == userId {
			return true
		}
	}
	return false
}
