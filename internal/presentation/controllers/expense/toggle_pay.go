package expense

import (
	"net/http"

	"github.com/splitteam/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/splitteam/expense-backend/internal/presentation/protocols"
	"github.com/splitteam/expense-backend/internal/settlement"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TogglePayController struct {
	Engine *settlement.Engine
}

func NewTogglePayController(engine *settlement.Engine) *TogglePayController {
	return &TogglePayController{
		Engine: engine,
	}
}

func (c *TogglePayController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	expenseId, err := primitive.ObjectIDFromHex(r.Req.PathValue("expenseId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid expenseId format",
		}, http.StatusBadRequest)
	}

	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid user id",
		}, http.StatusBadRequest)
	}

	if err := c.Engine.TogglePay(expenseId, userId); err != nil {
		return helpers.SettlementErrorResponse(err)
	}

	return helpers.CreateResponse(nil, http.StatusNoContent)
}
