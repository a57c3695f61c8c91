package team

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/splitteam/expense-backend/internal/domain/usecase"
	"github.com/splitteam/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/splitteam/expense-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type JoinTeamController struct {
	FindTeamByJoinCodeRepository usecase.FindTeamByJoinCodeRepository
	AddTeamMemberRepository      usecase.AddTeamMemberRepository
	AddUserTeamRepository        usecase.AddUserTeamRepository
	Validate                     *validator.Validate
}

func NewJoinTeamController(
	findByJoinCode usecase.FindTeamByJoinCodeRepository,
	addMember usecase.AddTeamMemberRepository,
	addUserTeam usecase.AddUserTeamRepository,
) *JoinTeamController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &JoinTeamController{
		FindTeamByJoinCodeRepository: findByJoinCode,
		AddTeamMemberRepository:      addMember,
		AddUserTeamRepository:        addUserTeam,
		Validate:                     validate,
	}
}

type JoinTeamBody struct {
	JoinCode string `json:"joinCode" validate:"required,len=8"`
}

func (c *JoinTeamController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body JoinTeamBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: helpers.GetErrorMessages(c.Validate, err),
		}, http.StatusUnprocessableEntity)
	}

	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid user id",
		}, http.StatusBadRequest)
	}

	team, err := c.FindTeamByJoinCodeRepository.FindByJoinCode(strings.ToUpper(body.JoinCode))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding team",
		}, http.StatusInternalServerError)
	}
	if team == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "team not found for this join code",
		}, http.StatusNotFound)
	}

	if team.HasMember(userId) {
		return helpers.CreateResponse(team, http.StatusOK)
	}

	if err := c.AddTeamMemberRepository.AddMember(team.Id, userId); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error adding member to team",
		}, http.StatusInternalServerError)
	}

	if err := c.AddUserTeamRepository.AddTeam(userId, team.Id); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error linking team to user",
		}, http.StatusInternalServerError)
	}

	team.MemberIds = append(team.MemberIds, userId)

	return helpers.CreateResponse(team, http.StatusOK)
}
