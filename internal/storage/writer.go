package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/bankbuddy/internal/storage/account"
	"github.com/carson-networks/bankbuddy/internal/storage/transaction"
)

// Writer bundles write access to all tables inside one SQL transaction.
// Reads issued through it see the transaction's own uncommitted writes.
type Writer struct {
	tx           bob.Tx
	Account      account.IWriter
	Transaction  transaction.IWriter
	Accounts     account.IReader
	Transactions transaction.IReader
}

func NewWriter(tx bob.Tx) Writer {
	return Writer{
		tx:           tx,
		Account:      account.NewWriter(tx),
		Transaction:  transaction.NewWriter(tx),
		Accounts:     account.NewReader(tx),
		Transactions: transaction.NewReader(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
