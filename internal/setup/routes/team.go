package routes

import (
	"net/http"

	"github.com/splitteam/expense-backend/internal/auth"
	"github.com/splitteam/expense-backend/internal/settlement"
	"github.com/splitteam/expense-backend/internal/setup/adapters"
	"github.com/splitteam/expense-backend/internal/setup/factory"
	"github.com/splitteam/expense-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func TeamRoutes(server *http.ServeMux, db *mongo.Database, engine *settlement.Engine, jwtManager *auth.JWTManager) {
	server.Handle("POST /team", middlewares.VerifyAccessToken(jwtManager,
		adapters.AdaptRoute(factory.MakeCreateTeamController(db)),
	))

	server.Handle("POST /team/join", middlewares.VerifyAccessToken(jwtManager,
		adapters.AdaptRoute(factory.MakeJoinTeamController(db)),
	))

	server.Handle("GET /team/{teamId}", middlewares.VerifyAccessToken(jwtManager,
		adapters.AdaptRoute(factory.MakeGetTeamByIdController(db)),
	))

	server.Handle("GET /team/my-teams/{userId}", middlewares.VerifyAccessToken(jwtManager,
		adapters.AdaptRoute(factory.MakeGetMyTeamsController(db)),
	))

	server.Handle("GET /team/user/{userId}/expenses", middlewares.VerifyAccessToken(jwtManager,
		adapters.AdaptRoute(factory.MakeGetUserSummariesController(engine)),
	))
}
