package expense

import (
	"net/http"

	"github.com/splitteam/expense-backend/internal/domain/usecase"
	"github.com/splitteam/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/splitteam/expense-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetExpensesByTeamController struct {
	FindExpensesByTeamIdRepository usecase.FindExpensesByTeamIdRepository
}

func NewGetExpensesByTeamController(findByTeamId usecase.FindExpensesByTeamIdRepository) *GetExpensesByTeamController {
	return &GetExpensesByTeamController{
		FindExpensesByTeamIdRepository: findByTeamId,
	}
}

func (c *GetExpensesByTeamController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	teamId, err := primitive.ObjectIDFromHex(r.Req.PathValue("teamId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid teamId format",
		}, http.StatusBadRequest)
	}

	expenses, err := c.FindExpensesByTeamIdRepository.Find(teamId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding expenses",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(expenses, http.StatusOK)
}
