package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/bankbuddy/internal/service"
)

type mockTransactionLister struct {
	mock.Mock
}

func (m *mockTransactionLister) ListRange(ctx context.Context, from, to time.Time) ([]service.Transaction, error) {
	args := m.Called(ctx, from, to)
	txs, _ := args.Get(0).([]service.Transaction)
	return txs, args.Error(1)
}

func newListTestAPI(t *testing.T, svc transactionLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListTransactionsHandler(svc).Register(api)
	return api
}

func TestHTTP_ListTransactions_Success(t *testing.T) {
	txID := uuid.Must(uuid.NewV4())
	accID := uuid.Must(uuid.NewV4())
	txDate := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListRange", mock.Anything,
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
	).Return([]service.Transaction{
		{
			ID:              txID,
			AccountID:       accID,
			TransactionDate: txDate,
			Description:     "Coffee",
			Category:        "restaurant",
			Amount:          decimal.RequireFromString("-4.5"),
			Comment:         "morning",
			AccountName:     "Everyday Checking",
			Institution:     "First National",
			LastFourDigits:  "1234",
			AccountType:     "checking/savings",
		},
	}, nil)

	resp := newListTestAPI(t, mockSvc).Get("/v1/transactions?fromDate=2025-03-01&toDate=2025-03-31")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Transactions, 1)
	assert.Equal(t, txID.String(), body.Transactions[0].ID)
	assert.Equal(t, "2025-03-05", body.Transactions[0].TransactionDate)
	assert.Equal(t, "-4.50", body.Transactions[0].Amount, "amounts serialize with two decimals")
	assert.Equal(t, "Everyday Checking", body.Transactions[0].AccountName)
	assert.Equal(t, "checking/savings", body.Transactions[0].AccountType)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_EmptyRange(t *testing.T) {
	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListRange", mock.Anything, mock.Anything, mock.Anything).
		Return([]service.Transaction{}, nil)

	resp := newListTestAPI(t, mockSvc).Get("/v1/transactions?fromDate=2025-03-01&toDate=2025-03-31")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Transactions)
}

func TestHTTP_ListTransactions_InvalidFromDate(t *testing.T) {
	mockSvc := new(mockTransactionLister)

	resp := newListTestAPI(t, mockSvc).Get("/v1/transactions?fromDate=not-a-date&toDate=2025-03-31")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "ListRange")
}

func TestHTTP_ListTransactions_FromAfterTo(t *testing.T) {
	mockSvc := new(mockTransactionLister)

	resp := newListTestAPI(t, mockSvc).Get("/v1/transactions?fromDate=2025-04-01&toDate=2025-03-01")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "ListRange")
}

func TestHTTP_ListTransactions_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListRange", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	resp := newListTestAPI(t, mockSvc).Get("/v1/transactions?fromDate=2025-03-01&toDate=2025-03-31")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
