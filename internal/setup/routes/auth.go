package routes

import (
	"net/http"

	"github.com/splitteam/expense-backend/internal/auth"
	"github.com/splitteam/expense-backend/internal/setup/adapters"
	"github.com/splitteam/expense-backend/internal/setup/factory"
	"go.mongodb.org/mongo-driver/mongo"
)

func AuthRoutes(server *http.ServeMux, db *mongo.Database, jwtManager *auth.JWTManager) {
	server.Handle("POST /auth/register", adapters.AdaptRoute(factory.MakeRegisterController(db, jwtManager)))

	server.Handle("POST /auth/login", adapters.AdaptRoute(factory.MakeLoginController(db, jwtManager)))
}
