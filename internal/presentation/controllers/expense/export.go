package expense

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/splitteam/expense-backend/internal/domain/models"
	"github.com/splitteam/expense-backend/internal/domain/usecase"
	"github.com/splitteam/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/splitteam/expense-backend/internal/presentation/protocols"
	"github.com/splitteam/expense-backend/internal/settlement"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExportExpensesController writes the team's expense history and current
// balances into an xlsx report.
type ExportExpensesController struct {
	Engine                         *settlement.Engine
	FindExpensesByTeamIdRepository usecase.FindExpensesByTeamIdRepository
}

func NewExportExpensesController(
	engine *settlement.Engine,
	findByTeamId usecase.FindExpensesByTeamIdRepository,
) *ExportExpensesController {
	return &ExportExpensesController{
		Engine:                         engine,
		FindExpensesByTeamIdRepository: findByTeamId,
	}
}

func (c *ExportExpensesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	balances, err := c.Engine.ComputeSummary(teamId)
	if err != nil {
		return helpers.SettlementErrorResponse(err)
	}

	f := excelize.NewFile()
	defer f.Close()

	expenseSheet := "Expenses"
	f.SetSheetName("Sheet1", expenseSheet)

	headers := []string{"Date", "Description", "Amount", "Paid By", "Approved Shares", "Pending Shares"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(expenseSheet, cell, header)
	}

	for i, expense := range expenses {
		approved, pending := 0, 0
		for _, share := range expense.Shares {
			switch {
			case share.Status.OrDefault() == models.StatusApproved:
				approved++
			case share.Status.IsPending():
				pending++
			}
		}

		row := i + 2
		f.SetCellValue(expenseSheet, fmt.Sprintf("A%d", row), expense.Date.Format("2006-01-02 15:04"))
		f.SetCellValue(expenseSheet, fmt.Sprintf("B%d", row), expense.Description)
		f.SetCellValue(expenseSheet, fmt.Sprintf("C%d", row), expense.Amount)
		f.SetCellValue(expenseSheet, fmt.Sprintf("D%d", row), expense.PaidByUserId.Hex())
		f.SetCellValue(expenseSheet, fmt.Sprintf("E%d", row), approved)
		f.SetCellValue(expenseSheet, fmt.Sprintf("F%d", row), pending)
	}

	summarySheet := "Summary"
	if _, err := f.NewSheet(summarySheet); err == nil {
		f.SetCellValue(summarySheet, "A1", "Member")
		f.SetCellValue(summarySheet, "B1", "Balance")
		for i, balance := range balances {
			row := i + 2
			f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), balance.Member)
			f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), balance.Amount)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error writing report",
		}, http.StatusInternalServerError)
	}

	fileName := fmt.Sprintf("expenses_%s_%s.xlsx", teamId.Hex(), time.Now().Format("20060102"))
	responseHeaders := http.Header{}
	responseHeaders.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	responseHeaders.Set("Content-Disposition", "attachment; filename="+fileName)

	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(&buf),
		StatusCode: http.StatusOK,
		Headers:    responseHeaders,
	}
}
