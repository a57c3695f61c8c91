package config

import (
	"net/http"

	"github.com/splitteam/expense-backend/internal/auth"
	"github.com/splitteam/expense-backend/internal/settlement"
	"github.com/splitteam/expense-backend/internal/setup/routes"
	"go.mongodb.org/mongo-driver/mongo"
)

func SetupRoutes(server *http.ServeMux, db *mongo.Database, engine *settlement.Engine, jwtManager *auth.JWTManager) {
	apiServer := http.NewServeMux()
	routes.AuthRoutes(apiServer, db, jwtManager)
	routes.TeamRoutes(apiServer, db, engine, jwtManager)
	routes.ExpenseRoutes(apiServer, db, engine, jwtManager)

	server.Handle("/api/", http.StripPrefix("/api", apiServer))
}
