package expense

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/splitteam/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/splitteam/expense-backend/internal/presentation/protocols"
	"github.com/splitteam/expense-backend/internal/settlement"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateExpenseController struct {
	Engine   *settlement.Engine
	Validate *validator.Validate
}

func NewCreateExpenseController(engine *settlement.Engine) *CreateExpenseController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &CreateExpenseController{
		Engine:   engine,
		Validate: validate,
	}
}

type CreateExpenseBody struct {
	TeamId       string  `json:"teamId" validate:"required,len=24"`
	Description  string  `json:"description" validate:"required,min=1,max=255"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
	PaidByUserId string  `json:"paidByUserId" validate:"required,len=24"`
}

func (c *CreateExpenseController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateExpenseBody
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

	teamId, err := primitive.ObjectIDFromHex(body.TeamId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid teamId format",
		}, http.StatusBadRequest)
	}

	paidByUserId, err := primitive.ObjectIDFromHex(body.PaidByUserId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid paidByUserId format",
		}, http.StatusBadRequest)
	}

	expense, err := c.Engine.CreateExpense(teamId, paidByUserId, body.Amount, body.Description)
	if err != nil {
		return helpers.SettlementErrorResponse(err)
	}

	return helpers.CreateResponse(expense, http.StatusCreated)
}
