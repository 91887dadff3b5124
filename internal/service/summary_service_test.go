package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/bankbuddy/internal/storage/account"
	"github.com/carson-networks/bankbuddy/internal/storage/transaction"
)

// fixtureLedger is a month of activity across a checking account, a credit
// card and an unclassified account, exercising every aggregation branch.
func fixtureLedger() ([]account.Account, []transaction.Transaction) {
	checkingID := uuid.Must(uuid.NewV4())
	cardID := uuid.Must(uuid.NewV4())
	otherID := uuid.Must(uuid.NewV4())

	accounts := []account.Account{
		{ID: checkingID, Name: "Everyday Checking", Type: "checking/savings"},
		{ID: cardID, Name: "Travel Card", Type: "credit/debit"},
		{ID: otherID, Name: "Brokerage", Type: "investment"},
	}

	day := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	row := func(accID uuid.UUID, amount, category string) transaction.Transaction {
		return transaction.Transaction{
			ID:              uuid.Must(uuid.NewV4()),
			AccountID:       accID,
			TransactionDate: day,
			Amount:          decimal.RequireFromString(amount),
			Category:        category,
		}
	}

	rows := []transaction.Transaction{
		row(checkingID, "2000.00", "paycheck"),
		row(checkingID, "-500.00", "rent"),
		row(checkingID, "-300.00", "credit card payment"),
		row(cardID, "120.00", "groceries"),
		row(cardID, "-20.00", "groceries"),
		row(cardID, "-300.00", "credit card payment"),
		row(otherID, "50.00", "transfer"),
	}
	return accounts, rows
}

func newSummaryTestService(t *testing.T) (*SummaryService, *mockTransactionReader, *mockAccountReader) {
	t.Helper()
	txReader := new(mockTransactionReader)
	accReader := new(mockAccountReader)
	svc := NewSummaryService(newTestStorage(txReader, accReader))
	return svc, txReader, accReader
}

func TestFinancialSummary(t *testing.T) {
	svc, txReader, accReader := newSummaryTestService(t)

	accounts, rows := fixtureLedger()
	txReader.On("ListRange", mock.Anything, mock.Anything, mock.Anything).Return(rows, nil)
	accReader.On("List", mock.Anything).Return(accounts, nil)

	summary, err := svc.FinancialSummary(context.Background(), time.Now(), time.Now())

	assert.NoError(t, err)
	assert.Equal(t, "2000.00", summary.TotalIncome.StringFixed(2))
	assert.Equal(t, "800.00", summary.TotalExpense.StringFixed(2), "rent plus card payment")
	assert.Equal(t, "120.00", summary.CreditCardExpense.StringFixed(2))
	assert.Equal(t, "20.00", summary.Refunds.StringFixed(2), "card payment is not a refund")
	assert.Equal(t, "1200.00", summary.NetPosition.StringFixed(2))
}

func TestFinancialSummary_EmptyRange(t *testing.T) {
	svc, txReader, accReader := newSummaryTestService(t)

	txReader.On("ListRange", mock.Anything, mock.Anything, mock.Anything).
		Return([]transaction.Transaction{}, nil)
	accReader.On("List", mock.Anything).Return([]account.Account{}, nil)

	summary, err := svc.FinancialSummary(context.Background(), time.Now(), time.Now())

	assert.NoError(t, err)
	assert.True(t, summary.TotalIncome.IsZero())
	assert.True(t, summary.TotalExpense.IsZero())
	assert.True(t, summary.NetPosition.IsZero())
}

func TestFinancialSummary_StorageError(t *testing.T) {
	svc, txReader, _ := newSummaryTestService(t)

	txReader.On("ListRange", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	summary, err := svc.FinancialSummary(context.Background(), time.Now(), time.Now())

	assert.Error(t, err)
	assert.Nil(t, summary)
}

func TestCategorySpend(t *testing.T) {
	svc, txReader, accReader := newSummaryTestService(t)

	accounts, rows := fixtureLedger()
	txReader.On("ListRange", mock.Anything, mock.Anything, mock.Anything).Return(rows, nil)
	accReader.On("List", mock.Anything).Return(accounts, nil)

	spend, err := svc.CategorySpend(context.Background(), time.Now(), time.Now())

	assert.NoError(t, err)

	totals := make(map[string]string, len(spend))
	for _, row := range spend {
		totals[row.Category] = row.Spent.StringFixed(2)
	}

	assert.Equal(t, "2000.00", totals["paycheck"])
	assert.Equal(t, "-500.00", totals["rent"])
	assert.Equal(t, "-100.00", totals["groceries"], "card charges negated, refund offsets")
	assert.Equal(t, "-300.00", totals["credit card payment"], "checking side only, card side skipped")
	assert.Equal(t, "50.00", totals["transfer"])
	assert.Len(t, spend, 5)

	// largest totals first
	for i := 1; i < len(spend); i++ {
		assert.True(t, spend[i-1].Spent.GreaterThanOrEqual(spend[i].Spent))
	}
}

func TestCategorySpend_StorageError(t *testing.T) {
	svc, txReader, _ := newSummaryTestService(t)

	txReader.On("ListRange", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	spend, err := svc.CategorySpend(context.Background(), time.Now(), time.Now())

	assert.Error(t, err)
	assert.Nil(t, spend)
}
