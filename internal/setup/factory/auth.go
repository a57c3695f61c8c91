package factory

import (
	"github.com/splitteam/expense-backend/internal/auth"
	"github.com/splitteam/expense-backend/internal/infra/db/mongodb/user_repository"
	controllers "github.com/splitteam/expense-backend/internal/presentation/controllers/auth"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakePasswordAuthenticator(db *mongo.Database) *auth.PasswordAuthenticator {
	createUser := user_repository.NewCreateUserRepository(db)
	findByEmail := user_repository.NewFindUserByEmailRepository(db)
	return auth.NewPasswordAuthenticator(createUser, findByEmail)
}

func MakeRegisterController(db *mongo.Database, jwtManager *auth.JWTManager) *controllers.RegisterController {
	return controllers.NewRegisterController(MakePasswordAuthenticator(db), jwtManager)
}

func MakeLoginController(db *mongo.Database, jwtManager *auth.JWTManager) *controllers.LoginController {
	return controllers.NewLoginController(MakePasswordAuthenticator(db), jwtManager)
}
