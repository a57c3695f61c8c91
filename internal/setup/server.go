package setup

import (
	"net/http"

	"github.com/splitteam/expense-backend/internal/auth"
	"github.com/splitteam/expense-backend/internal/infra/cache"
	"github.com/splitteam/expense-backend/internal/infra/db/mongodb/helpers"
	"github.com/splitteam/expense-backend/internal/setup/config"
	"github.com/splitteam/expense-backend/internal/setup/factory"
)

func Server(cfg *config.Config) *http.ServeMux {
	mux := http.NewServeMux()

	db := helpers.MongoHelper(cfg.MongoURI, cfg.MongoDatabase)

	redisClient := helpers.RedisHelper(cfg.RedisURL)
	summaryCache := cache.NewRedisSummaryCache(redisClient, cfg.SummaryCacheTTL)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenDuration)
	engine := factory.MakeEngine(db, summaryCache)

	config.SetupRoutes(mux, db, engine, jwtManager)

	return mux
}
