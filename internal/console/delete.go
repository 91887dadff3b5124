package console

import (
	"context"
	"fmt"
)

// DeleteSelected deletes every currently selected row in one batch
// request. A no-op when nothing is selected. On success the deleted ids
// are removed from the cache and the selection cleared; on failure both
// are left untouched, so the operation is safe to retry.
func (c *Controller) DeleteSelected(ctx context.Context) error {
	ids := c.selection.Current()
	if len(ids) == 0 {
		return nil
	}

	generation := c.cache.Generation()
	count, err := c.api.DeleteTransactions(ctx, ids)
	if err != nil {
		c.notifier.Notify(fmt.Sprintf("Delete failed: %v", err), SeverityError)
		return err
	}

	if c.cache.Generation() == generation {
		c.cache.RemoveMany(ids)
	}
	c.selection.Clear()
	c.notifier.Notify(fmt.Sprintf("Deleted %d transactions", count), SeveritySuccess)
	return nil
}
