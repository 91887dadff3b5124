package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockTransactionDeleter struct {
	mock.Mock
}

func (m *mockTransactionDeleter) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func newDeleteTestAPI(t *testing.T, svc transactionDeleter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewDeleteTransactionsHandler(svc).Register(api)
	return api
}

func TestHTTP_DeleteTransactions_Success(t *testing.T) {
	first := uuid.Must(uuid.NewV4())
	second := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionDeleter)
	mockSvc.On("DeleteMany", mock.Anything, []uuid.UUID{first, second}).
		Return(int64(2), nil)

	resp := newDeleteTestAPI(t, mockSvc).Post("/v1/transactions/delete", DeleteTransactionsBody{
		IDs: []string{first.String(), second.String()},
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body DeleteTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2, body.DeletedCount)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DeleteTransactions_AbsentIDsNotAnError(t *testing.T) {
	mockSvc := new(mockTransactionDeleter)
	mockSvc.On("DeleteMany", mock.Anything, mock.Anything).
		Return(int64(1), nil)

	resp := newDeleteTestAPI(t, mockSvc).Post("/v1/transactions/delete", DeleteTransactionsBody{
		IDs: []string{uuid.Must(uuid.NewV4()).String(), uuid.Must(uuid.NewV4()).String()},
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body DeleteTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body.DeletedCount, "count reflects rows actually removed")
}

func TestHTTP_DeleteTransactions_InvalidID(t *testing.T) {
	mockSvc := new(mockTransactionDeleter)

	resp := newDeleteTestAPI(t, mockSvc).Post("/v1/transactions/delete", DeleteTransactionsBody{
		IDs: []string{"not-a-uuid"},
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "DeleteMany")
}

func TestHTTP_DeleteTransactions_EmptyBatchRejected(t *testing.T) {
	mockSvc := new(mockTransactionDeleter)

	resp := newDeleteTestAPI(t, mockSvc).Post("/v1/transactions/delete", DeleteTransactionsBody{
		IDs: []string{},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "DeleteMany")
}

func TestHTTP_DeleteTransactions_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionDeleter)
	mockSvc.On("DeleteMany", mock.Anything, mock.Anything).
		Return(int64(0), errors.New("database unavailable"))

	resp := newDeleteTestAPI(t, mockSvc).Post("/v1/transactions/delete", DeleteTransactionsBody{
		IDs: []string{uuid.Must(uuid.NewV4()).String()},
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
