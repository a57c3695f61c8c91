package expense

import (
	"net/http"

	"github.com/splitteam/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/splitteam/expense-backend/internal/presentation/protocols"
	"github.com/splitteam/expense-backend/internal/settlement"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetPendingApprovalsController struct {
	Engine *settlement.Engine
}

func NewGetPendingApprovalsController(engine *settlement.Engine) *GetPendingApprovalsController {
	return &GetPendingApprovalsController{
		Engine: engine,
	}
}

func (c *GetPendingApprovalsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	teamId, err := primitive.ObjectIDFromHex(r.Req.PathValue("teamId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid teamId format",
		}, http.StatusBadRequest)
	}

	payeeId, err := primitive.ObjectIDFromHex(r.Req.PathValue("payeeId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid payeeId format",
		}, http.StatusBadRequest)
	}

	approvals, err := c.Engine.ListPendingApprovals(teamId, payeeId)
	if err != nil {
		return helpers.SettlementErrorResponse(err)
	}

	return helpers.CreateResponse(approvals, http.StatusOK)
}
