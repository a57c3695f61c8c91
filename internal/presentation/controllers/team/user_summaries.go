package team

import (
	"net/http"

	"github.com/splitteam/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/splitteam/expense-backend/internal/presentation/protocols"
	"github.com/splitteam/expense-backend/internal/settlement"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetUserSummariesController returns, for each team the user belongs to,
// how much they still owe and how much they are owed.
type GetUserSummariesController struct {
	Engine *settlement.Engine
}

func NewGetUserSummariesController(engine *settlement.Engine) *GetUserSummariesController {
	return &GetUserSummariesController{
		Engine: engine,
	}
}

func (c *GetUserSummariesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, err := primitive.ObjectIDFromHex(r.Req.PathValue("userId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid userId format",
		}, http.StatusBadRequest)
	}

	summaries, err := c.Engine.TeamSummariesForUser(userId)
	if err != nil {
		return helpers.SettlementErrorResponse(err)
	}

	return helpers.CreateResponse(summaries, http.StatusOK)
}
