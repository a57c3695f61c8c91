package expense

import (
	"net/http"

	"github.com/splitteam/expense-backend/internal/domain/models"
	"github.com/splitteam/expense-backend/internal/domain/usecase"
	"github.com/splitteam/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/splitteam/expense-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetExpensesByUserController lists the team expenses that a given member
// paid for.
type GetExpensesByUserController struct {
	FindExpensesByTeamIdRepository usecase.FindExpensesByTeamIdRepository
}

func NewGetExpensesByUserController(findByTeamId usecase.FindExpensesByTeamIdRepository) *GetExpensesByUserController {
	return &GetExpensesByUserController{
		FindExpensesByTeamIdRepository: findByTeamId,
	}
}

func (c *GetExpensesByUserController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	teamId, err := primitive.ObjectIDFromHex(r.Req.PathValue("teamId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid teamId format",
		}, http.StatusBadRequest)
	}

	userId, err := primitive.ObjectIDFromHex(r.Req.PathValue("userId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid userId format",
		}, http.StatusBadRequest)
	}

	expenses, err := c.FindExpensesByTeamIdRepository.Find(teamId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding expenses",
		}, http.StatusInternalServerError)
	}

	paidByUser := []models.Expense{}
	for _, expense := range expenses {
		if expense.PaidByUserId == userId {
			paidByUser = append(paidByUser, expense)
		}
	}

	return helpers.CreateResponse(paidByUser, http.StatusOK)
}
