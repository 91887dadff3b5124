package summary

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/bankbuddy/internal/logging"
	"github.com/carson-networks/bankbuddy/internal/service"
)

// CategorySpendInput is the Huma input for the category spend report.
type CategorySpendInput struct {
	FromDate string `query:"fromDate" required:"true" doc:"Start of the date range, YYYY-MM-DD"`
	ToDate   string `query:"toDate" required:"true" doc:"End of the date range, YYYY-MM-DD, inclusive"`
}

// CategorySpendRow is one category's total in the response.
type CategorySpendRow struct {
	Category string `json:"category" doc:"Category name, empty means uncategorized"`
	Spent    string `json:"spent" doc:"Signed decimal total, outflows negative"`
}

// CategorySpendResponseBody is the response body for the category spend report.
type CategorySpendResponseBody struct {
	Categories []CategorySpendRow `json:"categories" doc:"Per-category totals, largest first"`
}

// CategorySpendOutput is the Huma output for the category spend report.
type CategorySpendOutput struct {
	Body CategorySpendResponseBody
}

// categorySpender is the interface for computing category totals.
type categorySpender interface {
	CategorySpend(ctx context.Context, from, to time.Time) ([]service.CategorySpend, error)
}

// CategorySpendHandler handles GET /v1/categories/spend.
type CategorySpendHandler struct {
	SummaryService categorySpender
}

// NewCategorySpendHandler creates a new CategorySpendHandler.
func NewCategorySpendHandler(svc categorySpender) *CategorySpendHandler {
	return &CategorySpendHandler{SummaryService: svc}
}

// Register registers the category spend endpoint with the Huma API.
func (h *CategorySpendHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "category-spend",
		Method:      http.MethodGet,
		Path:        "/v1/categories/spend",
		Summary:     "Spend by category",
		Description: "Totals the date range per category, with card charges counted as outflows.",
		Tags:        []string{"Summary"},
	}, h.handle)
}

func (h *CategorySpendHandler) handle(ctx context.Context, input *CategorySpendInput) (*CategorySpendOutput, error) {
	logData := logging.GetLogData(ctx)

	from, to, err := parseDateRange(input.FromDate, input.ToDate)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("categorySpendMs")
	}
	rows, err := h.SummaryService.CategorySpend(ctx, from, to)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute category spend", err)
	}

	if logData != nil {
		logData.AddData("categoryCount", len(rows))
	}

	resp := CategorySpendResponseBody{
		Categories: make([]CategorySpendRow, len(rows)),
	}
	for i, row := range rows {
		resp.Categories[i] = CategorySpendRow{
			Category: row.Category,
			Spent:    row.Spent.StringFixed(2),
		}
	}

	return &CategorySpendOutput{Body: resp}, nil
}
