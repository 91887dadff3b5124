package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/bankbuddy/internal/operator/actions"
	"github.com/carson-networks/bankbuddy/internal/storage"
	"github.com/carson-networks/bankbuddy/internal/storage/account"
	"github.com/carson-networks/bankbuddy/internal/storage/transaction"
)

type mockTransactionReader struct {
	mock.Mock
}

func (m *mockTransactionReader) FindByID(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*transaction.Transaction)
	return row, args.Error(1)
}

func (m *mockTransactionReader) ListRange(ctx context.Context, from, to time.Time) ([]transaction.Transaction, error) {
	args := m.Called(ctx, from, to)
	rows, _ := args.Get(0).([]transaction.Transaction)
	return rows, args.Error(1)
}

type mockAccountReader struct {
	mock.Mock
}

func (m *mockAccountReader) FindByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*account.Account)
	return row, args.Error(1)
}

func (m *mockAccountReader) FindByUnique(ctx context.Context, name, lastFourDigits, accountType string) (*account.Account, error) {
	args := m.Called(ctx, name, lastFourDigits, accountType)
	row, _ := args.Get(0).(*account.Account)
	return row, args.Error(1)
}

func (m *mockAccountReader) List(ctx context.Context) ([]account.Account, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]account.Account)
	return rows, args.Error(1)
}

type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func newTestStorage(transactions *mockTransactionReader, accounts *mockAccountReader) *storage.Storage {
	return &storage.Storage{
		Reader: &storage.Reader{
			Accounts:     accounts,
			Transactions: transactions,
		},
	}
}
