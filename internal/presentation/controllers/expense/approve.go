package expense

import (
	"net/http"

	"github.com/splitteam/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/splitteam/expense-backend/internal/presentation/protocols"
	"github.com/splitteam/expense-backend/internal/settlement"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ApproveExpenseController struct {
	Engine *settlement.Engine
}

func NewApproveExpenseController(engine *settlement.Engine) *ApproveExpenseController {
	return &ApproveExpenseController{
		Engine: engine,
	}
}

func (c *ApproveExpenseController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	expenseId, err := primitive.ObjectIDFromHex(r.Req.PathValue("expenseId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid expenseId format",
		}, http.StatusBadRequest)
	}

	memberId, err := primitive.ObjectIDFromHex(r.Req.PathValue("memberId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid memberId format",
		}, http.StatusBadRequest)
	}

	action := settlement.Action(r.UrlParams.Get("action"))
	if action != settlement.ActionApprove && action != settlement.ActionReject {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "action must be APPROVE or REJECT",
		}, http.StatusBadRequest)
	}

	if err := c.Engine.DecideApproval(expenseId, memberId, action); err != nil {
		return helpers.SettlementErrorResponse(err)
	}

	return helpers.CreateResponse(nil, http.StatusNoContent)
}
