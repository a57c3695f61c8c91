package team

import (
	"net/http"

	"github.com/splitteam/expense-backend/internal/domain/models"
	"github.com/splitteam/expense-backend/internal/domain/usecase"
	"github.com/splitteam/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/splitteam/expense-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetMyTeamsController struct {
	FindUserByIdRepository   usecase.FindUserByIdRepository
	FindTeamsByIdsRepository usecase.FindTeamsByIdsRepository
}

func NewGetMyTeamsController(
	findUserById usecase.FindUserByIdRepository,
	findTeamsByIds usecase.FindTeamsByIdsRepository,
) *GetMyTeamsController {
	return &GetMyTeamsController{
		FindUserByIdRepository:   findUserById,
		FindTeamsByIdsRepository: findTeamsByIds,
	}
}

func (c *GetMyTeamsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, err := primitive.ObjectIDFromHex(r.Req.PathValue("userId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid userId format",
		}, http.StatusBadRequest)
	}

	user, err := c.FindUserByIdRepository.Find(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding user",
		}, http.StatusInternalServerError)
	}
	if user == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "user not found",
		}, http.StatusNotFound)
	}

	if len(user.TeamIds) == 0 {
		return helpers.CreateResponse([]models.Team{}, http.StatusOK)
	}

	teams, err := c.FindTeamsByIdsRepository.Find(user.TeamIds)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding teams",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(teams, http.StatusOK)
}
