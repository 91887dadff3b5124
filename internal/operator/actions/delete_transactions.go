package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/bankbuddy/internal/storage"
)

// DeleteTransactions removes a batch of transactions in one statement.
// Ids that match no row are not an error; Deleted reports how many rows
// actually went away.
type DeleteTransactions struct {
	IDs []uuid.UUID

	// Deleted is populated on success.
	Deleted int64

	IAction
}

func (d *DeleteTransactions) Perform(ctx context.Context, writer *storage.Writer) error {
	deleted, err := writer.Transaction.DeleteMany(ctx, d.IDs)
	if err != nil {
		return err
	}

	d.Deleted = deleted
	return nil
}
