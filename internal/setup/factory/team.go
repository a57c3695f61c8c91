package factory

import (
	"github.com/splitteam/expense-backend/internal/infra/db/mongodb/team_repository"
	"github.com/splitteam/expense-backend/internal/infra/db/mongodb/user_repository"
	controllers "github.com/splitteam/expense-backend/internal/presentation/controllers/team"
	"github.com/splitteam/expense-backend/internal/settlement"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeCreateTeamController(db *mongo.Database) *controllers.CreateTeamController {
	createTeam := team_repository.NewCreateTeamRepository(db)
	findByJoinCode := team_repository.NewFindTeamByJoinCodeRepository(db)
	addUserTeam := user_repository.NewAddUserTeamRepository(db)
	return controllers.NewCreateTeamController(createTeam, findByJoinCode, addUserTeam)
}

func MakeJoinTeamController(db *mongo.Database) *controllers.JoinTeamController {
	findByJoinCode := team_repository.NewFindTeamByJoinCodeRepository(db)
	addMember := team_repository.NewAddTeamMemberRepository(db)
	addUserTeam := user_repository.NewAddUserTeamRepository(db)
	return controllers.NewJoinTeamController(findByJoinCode, addMember, addUserTeam)
}

func MakeGetTeamByIdController(db *mongo.Database) *controllers.GetTeamByIdController {
	findTeamById := team_repository.NewFindTeamByIdRepository(db)
	return controllers.NewGetTeamByIdController(findTeamById)
}

func MakeGetMyTeamsController(db *mongo.Database) *controllers.GetMyTeamsController {
	findUserById := user_repository.NewFindUserByIdRepository(db)
	findTeamsByIds := team_repository.NewFindTeamsByIdsRepository(db)
	return controllers.NewGetMyTeamsController(findUserById, findTeamsByIds)
}

func MakeGetUserSummariesController(engine *settlement.Engine) *controllers.GetUserSummariesController {
	return controllers.NewGetUserSummariesController(engine)
}
