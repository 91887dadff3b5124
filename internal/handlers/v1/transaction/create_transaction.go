package transaction

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bankbuddy/internal/ledger"
	"github.com/carson-networks/bankbuddy/internal/operator/actions"
	"github.com/carson-networks/bankbuddy/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	AccountID       string `json:"accountID" required:"true" doc:"Owning account UUID"`
	TransactionDate string `json:"transactionDate" required:"true" doc:"Calendar date, YYYY-MM-DD"`
	Description     string `json:"description" required:"true" minLength:"1" doc:"Transaction description"`
	Category        string `json:"category" doc:"Category, optional"`
	Amount          string `json:"amount" required:"true" doc:"Signed decimal amount"`
	Comment         string `json:"comment" doc:"Free-form comment, optional"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionResponseBody is the response body for creating a transaction.
type CreateTransactionResponseBody struct {
	ID string `json:"id" doc:"Created transaction UUID"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   CreateTransactionResponseBody
}

// transactionAdder is the interface for creating a transaction.
type transactionAdder interface {
	Add(ctx context.Context, tx service.Transaction) (uuid.UUID, error)
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	TransactionService transactionAdder
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionAdder) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transaction",
		Summary:     "Create transaction",
		Description: "Creates a new transaction on an existing account.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseCreateTransactionInput(input *CreateTransactionInput) (service.Transaction, error) {
	accountID, err := uuid.FromString(input.Body.AccountID)
	if err != nil {
		return service.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
	}

	transactionDate, err := time.Parse(ledger.DateFormat, input.Body.TransactionDate)
	if err != nil {
		return service.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid transactionDate", err)
	}

	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return service.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	category, err := ledger.NormalizeEdit(ledger.FieldCategory, input.Body.Category)
	if err != nil {
		return service.Transaction{}, huma.NewError(http.StatusBadRequest, err.Error())
	}

	return service.Transaction{
		AccountID:       accountID,
		TransactionDate: transactionDate,
		Description:     input.Body.Description,
		Category:        category,
		Amount:          amount,
		Comment:         input.Body.Comment,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	tx, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	id, err := h.TransactionService.Add(ctx, tx)
	if err != nil {
		if errors.Is(err, actions.ErrAccountNotFound) {
			return nil, huma.NewError(http.StatusNotFound, "account not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create transaction", err)
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   CreateTransactionResponseBody{ID: id.String()},
	}, nil
}
