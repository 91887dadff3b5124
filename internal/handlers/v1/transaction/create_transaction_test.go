package transaction

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/bankbuddy/internal/operator/actions"
	"github.com/carson-networks/bankbuddy/internal/service"
)

type mockTransactionAdder struct {
	mock.Mock
}

func (m *mockTransactionAdder) Add(ctx context.Context, tx service.Transaction) (uuid.UUID, error) {
	args := m.Called(ctx, tx)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func newCreateTestAPI(t *testing.T, svc transactionAdder) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateTransactionHandler(svc).Register(api)
	return api
}

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())
	newID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionAdder)
	mockSvc.On("Add", mock.Anything, mock.MatchedBy(func(tx service.Transaction) bool {
		return tx.AccountID == accountID &&
			tx.Description == "Groceries" &&
			tx.Category == "groceries" &&
			tx.Amount.Equal(decimal.RequireFromString("-42.50")) &&
			tx.TransactionDate.Equal(time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC))
	})).Return(newID, nil)

	resp := newCreateTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		AccountID:       accountID.String(),
		TransactionDate: "2025-05-10",
		Description:     "Groceries",
		Category:        "Groceries",
		Amount:          "-42.50",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateTransactionResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, newID.String(), body.ID)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_InvalidAccountID(t *testing.T) {
	mockSvc := new(mockTransactionAdder)

	resp := newCreateTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		AccountID:       "not-a-uuid",
		TransactionDate: "2025-05-10",
		Description:     "Groceries",
		Amount:          "-42.50",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Add")
}

func TestHTTP_CreateTransaction_UnknownCategory(t *testing.T) {
	mockSvc := new(mockTransactionAdder)

	resp := newCreateTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		AccountID:       uuid.Must(uuid.NewV4()).String(),
		TransactionDate: "2025-05-10",
		Description:     "Groceries",
		Category:        "not-a-category",
		Amount:          "-42.50",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Add")
}

func TestHTTP_CreateTransaction_AccountNotFound(t *testing.T) {
	mockSvc := new(mockTransactionAdder)
	mockSvc.On("Add", mock.Anything, mock.Anything).
		Return(uuid.Nil, actions.ErrAccountNotFound)

	resp := newCreateTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		AccountID:       uuid.Must(uuid.NewV4()).String(),
		TransactionDate: "2025-05-10",
		Description:     "Groceries",
		Amount:          "-42.50",
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
