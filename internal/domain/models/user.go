package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	Id           primitive.ObjectID   `bson:"_id" json:"id"`
	FullName     string               `bson:"full_name" json:"fullName"`
	Email        string               `bson:"email" json:"email"`
	PasswordHash string               `bson:"password_hash" json:"-"`
	TeamIds      []primitive.ObjectID `bson:"team_ids" json:"teamIds"`
	CreatedAt    time.Time            `bson:"created_at" json:"createdAt"`
}
