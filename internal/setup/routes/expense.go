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

func ExpenseRoutes(server *http.ServeMux, db *mongo.Database, engine *settlement.Engine, jwtManager *auth.JWTManager) {
	server.Handle("POST /expense", middlewares.VerifyAccessToken(jwtManager,
		adapters.AdaptRoute(factory.MakeCreateExpenseController(engine)),
	))

	server.Handle("GET /expense/team/{teamId}", middlewares.VerifyAccessToken(jwtManager,
		adapters.AdaptRoute(factory.MakeGetExpensesByTeamController(db)),
	))

	server.Handle("GET /expense/team/{teamId}/user/{userId}", middlewares.VerifyAccessToken(jwtManager,
		adapters.AdaptRoute(factory.MakeGetExpensesByUserController(db)),
	))

	server.Handle("GET /expense/team/{teamId}/export", middlewares.VerifyAccessToken(jwtManager,
		adapters.AdaptRoute(factory.MakeExportExpensesController(db, engine)),
	))

	server.Handle("PUT /expense/{expenseId}/toggle-pay", middlewares.VerifyAccessToken(jwtManager,
		adapters.AdaptRoute(factory.MakeTogglePayController(engine)),
	))

	server.Handle("POST /expense/pay", middlewares.VerifyAccessToken(jwtManager,
		adapters.AdaptRoute(factory.MakePayExpenseController(engine)),
	))

	server.Handle("POST /expense/{expenseId}/approve/{memberId}", middlewares.VerifyAccessToken(jwtManager,
		adapters.AdaptRoute(factory.MakeApproveExpenseController(engine)),
	))

	server.Handle("GET /expense/pending-approvals/{teamId}/{payeeId}", middlewares.VerifyAccessToken(jwtManager,
		adapters.AdaptRoute(factory.MakeGetPendingApprovalsController(engine)),
	))

	server.Handle("GET /expense/summary/{teamId}", middlewares.VerifyAccessToken(jwtManager,
		adapters.AdaptRoute(factory.MakeGetSummaryController(engine)),
	))

	server.Handle("DELETE /expense/{expenseId}", middlewares.VerifyAccessToken(jwtManager,
		adapters.AdaptRoute(factory.MakeDeleteExpenseController(engine)),
	))
}
