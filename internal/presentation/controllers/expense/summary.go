package expense

import (
	"net/http"

	"github.com/splitteam/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/splitteam/expense-backend/internal/presentation/protocols"
	"github.com/splitteam/expense-backend/internal/settlement"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetSummaryController struct {
	Engine *settlement.Engine
}

func NewGetSummaryController(engine *settlement.Engine) *GetSummaryController {
	return &GetSummaryController{
		Engine: engine,
	}
}

func (c *GetSummaryController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	teamId, err := primitive.ObjectIDFromHex(r.Req.PathValue("teamId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid teamId format",
		}, http.StatusBadRequest)
	}

	balances, err := c.Engine.ComputeSummary(teamId)
	if err != nil {
		return helpers.SettlementErrorResponse(err)
	}

	return helpers.CreateResponse(balances, http.StatusOK)
}
