package team

import (
	"net/http"

	"github.com/splitteam/expense-backend/internal/domain/usecase"
	"github.com/splitteam/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/splitteam/expense-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetTeamByIdController struct {
	FindTeamByIdRepository usecase.FindTeamByIdRepository
}

func NewGetTeamByIdController(findTeamById usecase.FindTeamByIdRepository) *GetTeamByIdController {
	return &GetTeamByIdController{
		FindTeamByIdRepository: findTeamById,
	}
}

func (c *GetTeamByIdController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	teamId, err := primitive.ObjectIDFromHex(r.Req.PathValue("teamId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid teamId format",
		}, http.StatusBadRequest)
	}

	team, err := c.FindTeamByIdRepository.Find(teamId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding team",
		}, http.StatusInternalServerError)
	}
	if team == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "team not found",
		}, http.StatusNotFound)
	}

	return helpers.CreateResponse(team, http.StatusOK)
}
