package expense

import (
	"net/http"

	"github.com/splitteam/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/splitteam/expense-backend/internal/presentation/protocols"
	"github.com/splitteam/expense-backend/internal/settlement"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeleteExpenseController struct {
	Engine *settlement.Engine
}

func NewDeleteExpenseController(engine *settlement.Engine) *DeleteExpenseController {
	return &DeleteExpenseController{
		Engine: engine,
	}
}

func (c *DeleteExpenseController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	expenseId, err := primitive.ObjectIDFromHex(r.Req.PathValue("expenseId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid expenseId format",
		}, http.StatusBadRequest)
	}

	if err := c.Engine.DeleteExpense(expenseId); err != nil {
		return helpers.SettlementErrorResponse(err)
	}

	return helpers.CreateResponse(nil, http.StatusNoContent)
}
