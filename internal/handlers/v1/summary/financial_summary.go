package summary

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/bankbuddy/internal/logging"
	"github.com/carson-networks/bankbuddy/internal/service"
)

// FinancialSummaryInput is the Huma input for the financial summary.
type FinancialSummaryInput struct {
	FromDate string `query:"fromDate" required:"true" doc:"Start of the date range, YYYY-MM-DD"`
	ToDate   string `query:"toDate" required:"true" doc:"End of the date range, YYYY-MM-DD, inclusive"`
}

// FinancialSummaryResponseBody is the response body for the financial summary.
type FinancialSummaryResponseBody struct {
	TotalIncome       string `json:"totalIncome" doc:"Inflows on checking and savings accounts"`
	TotalExpense      string `json:"totalExpense" doc:"Outflows on checking and savings accounts"`
	Refunds           string `json:"refunds" doc:"Card credits that are not payments"`
	CreditCardExpense string `json:"creditCardExpense" doc:"Charges on card accounts"`
	NetPosition       string `json:"netPosition" doc:"Income minus expense"`
}

// FinancialSummaryOutput is the Huma output for the financial summary.
type FinancialSummaryOutput struct {
	Body FinancialSummaryResponseBody
}

// summarizer is the interface for computing the financial summary.
type summarizer interface {
	FinancialSummary(ctx context.Context, from, to time.Time) (*service.Summary, error)
}

// FinancialSummaryHandler handles GET /v1/summary.
type FinancialSummaryHandler struct {
	SummaryService summarizer
}

// NewFinancialSummaryHandler creates a new FinancialSummaryHandler.
func NewFinancialSummaryHandler(svc summarizer) *FinancialSummaryHandler {
	return &FinancialSummaryHandler{SummaryService: svc}
}

// Register registers the financial summary endpoint with the Huma API.
func (h *FinancialSummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "financial-summary",
		Method:      http.MethodGet,
		Path:        "/v1/summary",
		Summary:     "Financial summary",
		Description: "Aggregates the date range into income, expense, refund and card figures.",
		Tags:        []string{"Summary"},
	}, h.handle)
}

func (h *FinancialSummaryHandler) handle(ctx context.Context, input *FinancialSummaryInput) (*FinancialSummaryOutput, error) {
	logData := logging.GetLogData(ctx)

	from, to, err := parseDateRange(input.FromDate, input.ToDate)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("financialSummaryMs")
	}
	result, err := h.SummaryService.FinancialSummary(ctx, from, to)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute summary", err)
	}

	return &FinancialSummaryOutput{
		Body: FinancialSummaryResponseBody{
			TotalIncome:       result.TotalIncome.StringFixed(2),
			TotalExpense:      result.TotalExpense.StringFixed(2),
			Refunds:           result.Refunds.StringFixed(2),
			CreditCardExpense: result.CreditCardExpense.StringFixed(2),
			NetPosition:       result.NetPosition.StringFixed(2),
		},
	}, nil
}
