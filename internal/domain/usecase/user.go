package usecase

import (
	"github.com/splitteam/expense-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateUserRepository interface {
	Create(*models.User) (*models.User, error)
}

type FindUserByIdRepository interface {
	Find(primitive.ObjectID) (*models.User, error)
}

type FindUserByEmailRepository interface {
	FindByEmail(string) (*models.User, error)
}

type AddUserTeamRepository interface {
	AddTeam(userId primitive.ObjectID, teamId primitive.ObjectID) error
}
