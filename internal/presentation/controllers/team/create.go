package team

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/splitteam/expense-backend/internal/domain/models"
	"github.com/splitteam/expense-backend/internal/domain/usecase"
	"github.com/splitteam/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/splitteam/expense-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrJoinCodeExhausted = errors.New("could not generate a unique join code")

type CreateTeamController struct {
	CreateTeamRepository         usecase.CreateTeamRepository
	FindTeamByJoinCodeRepository usecase.FindTeamByJoinCodeRepository
	AddUserTeamRepository        usecase.AddUserTeamRepository
	Validate                     *validator.Validate
}

func NewCreateTeamController(
	createTeam usecase.CreateTeamRepository,
	findByJoinCode usecase.FindTeamByJoinCodeRepository,
	addUserTeam usecase.AddUserTeamRepository,
) *CreateTeamController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &CreateTeamController{
		CreateTeamRepository:         createTeam,
		FindTeamByJoinCodeRepository: findByJoinCode,
		AddUserTeamRepository:        addUserTeam,
		Validate:                     validate,
	}
}

type CreateTeamBody struct {
	TeamName string `json:"teamName" validate:"required,min=2,max=255"`
}

func (c *CreateTeamController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateTeamBody
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

	joinCode, err := c.generateJoinCode()
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error generating join code",
		}, http.StatusInternalServerError)
	}

	team, err := c.CreateTeamRepository.Create(&models.Team{
		TeamName:  body.TeamName,
		OwnerId:   userId,
		JoinCode:  joinCode,
		MemberIds: []primitive.ObjectID{userId},
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error creating team",
		}, http.StatusInternalServerError)
	}

	if err := c.AddUserTeamRepository.AddTeam(userId, team.Id); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error linking team to user",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(team, http.StatusCreated)
}

// generateJoinCode derives a short shareable code and retries on the
// unlikely collision with an existing team.
func (c *CreateTeamController) generateJoinCode() (string, error) {
	for i := 0; i < 5; i++ {
		code := strings.ToUpper(primitive.NewObjectID().Hex()[:8])

		existing, err := c.FindTeamByJoinCodeRepository.FindByJoinCode(code)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return code, nil
		}
	}
	return "", ErrJoinCodeExhausted
}
