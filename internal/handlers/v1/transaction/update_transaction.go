package transaction

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/bankbuddy/internal/ledger"
	"github.com/carson-networks/bankbuddy/internal/logging"
	"github.com/carson-networks/bankbuddy/internal/operator/actions"
)

// UpdateTransactionBody is the request body for a single field edit.
type UpdateTransactionBody struct {
	ID    string `json:"id" required:"true" doc:"Transaction UUID"`
	Field string `json:"field" required:"true" doc:"Editable field name: transaction_date, description, amount, category or comment"`
	Value string `json:"value" doc:"New value in wire form"`
}

// UpdateTransactionInput is the Huma input for updating a field.
type UpdateTransactionInput struct {
	Body UpdateTransactionBody
}

// UpdateTransactionOutput is the Huma output for updating a field.
type UpdateTransactionOutput struct {
	Status int
}

// fieldUpdater is the interface for applying a field edit.
type fieldUpdater interface {
	UpdateField(ctx context.Context, id uuid.UUID, field, raw string) error
}

// UpdateTransactionHandler handles PUT /v1/transaction/field.
type UpdateTransactionHandler struct {
	TransactionService fieldUpdater
}

// NewUpdateTransactionHandler creates a new UpdateTransactionHandler.
func NewUpdateTransactionHandler(svc fieldUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

// Register registers the update transaction endpoint with the Huma API.
func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction-field",
		Method:      http.MethodPut,
		Path:        "/v1/transaction/field",
		Summary:     "Update one transaction field",
		Description: "Sets one editable field on one transaction. The edit is atomic; a rejected value changes nothing.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	id, err := uuid.FromString(input.Body.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}

	if logData != nil {
		logData.AddData("transactionID", id.String())
		logData.AddData("field", input.Body.Field)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("updateFieldMs")
	}
	err = h.TransactionService.UpdateField(ctx, id, input.Body.Field, input.Body.Value)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		var validationErr *ledger.ValidationError
		switch {
		case errors.As(err, &validationErr):
			return nil, huma.NewError(http.StatusBadRequest, validationErr.Error())
		case errors.Is(err, actions.ErrTransactionNotFound):
			return nil, huma.NewError(http.StatusNotFound, "transaction not found")
		default:
			return nil, huma.NewError(http.StatusInternalServerError, "failed to update transaction", err)
		}
	}

	return &UpdateTransactionOutput{Status: http.StatusNoContent}, nil
}
