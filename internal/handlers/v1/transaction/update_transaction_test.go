package transaction

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/bankbuddy/internal/ledger"
	"github.com/carson-networks/bankbuddy/internal/operator/actions"
)

type mockFieldUpdater struct {
	mock.Mock
}

func (m *mockFieldUpdater) UpdateField(ctx context.Context, id uuid.UUID, field, raw string) error {
	args := m.Called(ctx, id, field, raw)
	return args.Error(0)
}

func newUpdateTestAPI(t *testing.T, svc fieldUpdater) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewUpdateTransactionHandler(svc).Register(api)
	return api
}

func TestHTTP_UpdateTransaction_Success(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	mockSvc := new(mockFieldUpdater)
	mockSvc.On("UpdateField", mock.Anything, id, "amount", "12.34").Return(nil)

	resp := newUpdateTestAPI(t, mockSvc).Put("/v1/transaction/field", UpdateTransactionBody{
		ID:    id.String(),
		Field: "amount",
		Value: "12.34",
	})

	assert.Equal(t, http.StatusNoContent, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateTransaction_InvalidID(t *testing.T) {
	mockSvc := new(mockFieldUpdater)

	resp := newUpdateTestAPI(t, mockSvc).Put("/v1/transaction/field", UpdateTransactionBody{
		ID:    "not-a-uuid",
		Field: "comment",
		Value: "hi",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "UpdateField")
}

func TestHTTP_UpdateTransaction_ValidationRejection(t *testing.T) {
	mockSvc := new(mockFieldUpdater)
	mockSvc.On("UpdateField", mock.Anything, mock.Anything, "amount", "abc").
		Return(&ledger.ValidationError{Field: ledger.FieldAmount, Reason: "not a decimal number"})

	resp := newUpdateTestAPI(t, mockSvc).Put("/v1/transaction/field", UpdateTransactionBody{
		ID:    uuid.Must(uuid.NewV4()).String(),
		Field: "amount",
		Value: "abc",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_UpdateTransaction_NotFound(t *testing.T) {
	mockSvc := new(mockFieldUpdater)
	mockSvc.On("UpdateField", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(actions.ErrTransactionNotFound)

	resp := newUpdateTestAPI(t, mockSvc).Put("/v1/transaction/field", UpdateTransactionBody{
		ID:    uuid.Must(uuid.NewV4()).String(),
		Field: "comment",
		Value: "hi",
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_UpdateTransaction_ServiceError(t *testing.T) {
	mockSvc := new(mockFieldUpdater)
	mockSvc.On("UpdateField", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("database unavailable"))

	resp := newUpdateTestAPI(t, mockSvc).Put("/v1/transaction/field", UpdateTransactionBody{
		ID:    uuid.Must(uuid.NewV4()).String(),
		Field: "comment",
		Value: "hi",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
