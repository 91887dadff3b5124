package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/bankbuddy/internal/logging"
)

// DeleteTransactionsBody is the request body for a batch delete.
type DeleteTransactionsBody struct {
	IDs []string `json:"ids" required:"true" minItems:"1" doc:"Transaction UUIDs to delete"`
}

// DeleteTransactionsInput is the Huma input for a batch delete.
type DeleteTransactionsInput struct {
	Body DeleteTransactionsBody
}

// DeleteTransactionsResponseBody is the response body for a batch delete.
type DeleteTransactionsResponseBody struct {
	DeletedCount int `json:"deletedCount" doc:"Number of rows removed"`
}

// DeleteTransactionsOutput is the Huma output for a batch delete.
type DeleteTransactionsOutput struct {
	Body DeleteTransactionsResponseBody
}

// transactionDeleter is the interface for batch-deleting transactions.
type transactionDeleter interface {
	DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error)
}

// DeleteTransactionsHandler handles POST /v1/transactions/delete.
type DeleteTransactionsHandler struct {
	TransactionService transactionDeleter
}

// NewDeleteTransactionsHandler creates a new DeleteTransactionsHandler.
func NewDeleteTransactionsHandler(svc transactionDeleter) *DeleteTransactionsHandler {
	return &DeleteTransactionsHandler{TransactionService: svc}
}

// Register registers the delete transactions endpoint with the Huma API.
func (h *DeleteTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transactions/delete",
		Summary:     "Delete transactions",
		Description: "Deletes a batch of transactions in one statement. Ids that match nothing are ignored; the whole batch succeeds or fails together.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *DeleteTransactionsHandler) handle(ctx context.Context, input *DeleteTransactionsInput) (*DeleteTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	ids := make([]uuid.UUID, len(input.Body.IDs))
	for i, raw := range input.Body.IDs {
		id, err := uuid.FromString(raw)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
		}
		ids[i] = id
	}

	if logData != nil {
		logData.AddData("requestedCount", len(ids))
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("deleteTransactionsMs")
	}
	deleted, err := h.TransactionService.DeleteMany(ctx, ids)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete transactions", err)
	}

	if logData != nil {
		logData.AddData("deletedCount", deleted)
	}

	return &DeleteTransactionsOutput{
		Body: DeleteTransactionsResponseBody{DeletedCount: int(deleted)},
	}, nil
}
