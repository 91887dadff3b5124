package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/bankbuddy/internal/storage/account"
	"github.com/carson-networks/bankbuddy/internal/storage/transaction"
)

// Reader bundles read access to all tables. Fields are interfaces so
// services can be tested against fakes.
type Reader struct {
	Accounts     account.IReader
	Transactions transaction.IReader
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Accounts:     account.NewReader(exec),
		Transactions: transaction.NewReader(exec),
	}
}
