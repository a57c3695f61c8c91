package expense

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/splitteam/expense-backend/internal/domain/models"
	"github.com/splitteam/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/splitteam/expense-backend/internal/presentation/protocols"
	"github.com/splitteam/expense-backend/internal/settlement"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PayExpenseController struct {
	Engine   *settlement.Engine
	Validate *validator.Validate
}

func NewPayExpenseController(engine *settlement.Engine) *PayExpenseController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &PayExpenseController{
		Engine:   engine,
		Validate: validate,
	}
}

type PayExpenseBody struct {
	ExpenseId     string `json:"expenseId" validate:"required,len=24"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=CASH TRANSFER"`
	ProofImage    string `json:"proofImage" validate:"omitempty,max=1048576"`
}

func (c *PayExpenseController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body PayExpenseBody
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

	expenseId, err := primitive.ObjectIDFromHex(body.ExpenseId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid expenseId format",
		}, http.StatusBadRequest)
	}

	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid user id",
		}, http.StatusBadRequest)
	}

	method := models.PaymentMethod(body.PaymentMethod)
	if err := c.Engine.SubmitPayment(expenseId, userId, method, body.ProofImage); err != nil {
		return helpers.SettlementErrorResponse(err)
	}

	return helpers.CreateResponse(nil, http.StatusNoContent)
}
