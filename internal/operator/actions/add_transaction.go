package actions

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bankbuddy/internal/storage"
	"github.com/carson-networks/bankbuddy/internal/storage/transaction"
)

type AddTransaction struct {
	AccountID       uuid.UUID
	TransactionDate time.Time
	Description     string
	Amount          decimal.Decimal
	Category        omit.Val[string]
	Comment         omit.Val[string]

	// TransactionID is populated on success.
	TransactionID uuid.UUID

	IAction
}

func (a *AddTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	owner, err := writer.Accounts.FindByID(ctx, a.AccountID)
	if err != nil {
		return err
	}
	if owner == nil {
		return ErrAccountNotFound
	}

	id, err := writer.Transaction.Insert(ctx, &transaction.TransactionCreate{
		AccountID:       a.AccountID,
		TransactionDate: a.TransactionDate,
		Description:     a.Description,
		Amount:          a.Amount,
		Category:        a.Category,
		Comment:         a.Comment,
	})
	if err != nil {
		return err
	}

	a.TransactionID = id
	return nil
}
