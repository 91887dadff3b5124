package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/bankbuddy/internal/storage"
)

// UpdateTransactionField sets one editable column on one transaction.
// Value must already be coerced to the column's Go type.
type UpdateTransactionField struct {
	TransactionID uuid.UUID
	Column        string
	Value         any

	IAction
}

func (u *UpdateTransactionField) Perform(ctx context.Context, writer *storage.Writer) error {
	matched, err := writer.Transaction.UpdateField(ctx, u.TransactionID, u.Column, u.Value)
	if err != nil {
		return err
	}
	if !matched {
		return ErrTransactionNotFound
	}

	return nil
}
