package usecase

import (
	"github.com/splitteam/expense-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateTeamRepository interface {
	Create(*models.Team) (*models.Team, error)
}

type FindTeamByIdRepository interface {
	Find(primitive.ObjectID) (*models.Team, error)
}

type FindTeamByJoinCodeRepository interface {
	FindByJoinCode(string) (*models.Team, error)
}

type FindTeamsByIdsRepository interface {
	Find([]primitive.ObjectID) ([]models.Team, error)
}

type AddTeamMemberRepository interface {
	AddMember(teamId primitive.ObjectID, userId primitive.ObjectID) error
}
