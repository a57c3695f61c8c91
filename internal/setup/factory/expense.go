package factory

import (
	"github.com/splitteam/expense-backend/internal/infra/db/mongodb/expense_repository"
	"github.com/splitteam/expense-backend/internal/infra/db/mongodb/team_repository"
	"github.com/splitteam/expense-backend/internal/infra/db/mongodb/user_repository"
	controllers "github.com/splitteam/expense-backend/internal/presentation/controllers/expense"
	"github.com/splitteam/expense-backend/internal/settlement"
	"go.mongodb.org/mongo-driver/mongo"
)

// MakeEngine wires the settlement engine onto the Mongo repositories. The
// cache may be nil when Redis is not configured.
func MakeEngine(db *mongo.Database, summaryCache settlement.SummaryCache) *settlement.Engine {
	return settlement.NewEngine(
		team_repository.NewFindTeamByIdRepository(db),
		user_repository.NewFindUserByIdRepository(db),
		expense_repository.NewCreateExpenseRepository(db),
		expense_repository.NewFindExpenseByIdRepository(db),
		expense_repository.NewFindExpensesByTeamIdRepository(db),
		expense_repository.NewUpdateExpenseRepository(db),
		expense_repository.NewDeleteExpenseRepository(db),
		summaryCache,
	)
}

func MakeCreateExpenseController(engine *settlement.Engine) *controllers.CreateExpenseController {
	return controllers.NewCreateExpenseController(engine)
}

func MakeGetExpensesByTeamController(db *mongo.Database) *controllers.GetExpensesByTeamController {
	findByTeamId := expense_repository.NewFindExpensesByTeamIdRepository(db)
	return controllers.NewGetExpensesByTeamController(findByTeamId)
}

func MakeGetExpensesByUserController(db *mongo.Database) *controllers.GetExpensesByUserController {
	findByTeamId := expense_repository.NewFindExpensesByTeamIdRepository(db)
	return controllers.NewGetExpensesByUserController(findByTeamId)
}

func MakeTogglePayController(engine *settlement.Engine) *controllers.TogglePayController {
	return controllers.NewTogglePayController(engine)
}

func MakePayExpenseController(engine *settlement.Engine) *controllers.PayExpenseController {
	return controllers.NewPayExpenseController(engine)
}

func MakeApproveExpenseController(engine *settlement.Engine) *controllers.ApproveExpenseController {
	return controllers.NewApproveExpenseController(engine)
}

func MakeGetPendingApprovalsController(engine *settlement.Engine) *controllers.GetPendingApprovalsController {
	return controllers.NewGetPendingApprovalsController(engine)
}

func MakeGetSummaryController(engine *settlement.Engine) *controllers.GetSummaryController {
	return controllers.NewGetSummaryController(engine)
}

func MakeDeleteExpenseController(engine *settlement.Engine) *controllers.DeleteExpenseController {
	return controllers.NewDeleteExpenseController(engine)
}

func MakeExportExpensesController(db *mongo.Database, engine *settlement.Engine) *controllers.ExportExpensesController {
	findByTeamId := expense_repository.NewFindExpensesByTeamIdRepository(db)
	return controllers.NewExportExpensesController(engine, findByTeamId)
}
