package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/bankbuddy/internal/ledger"
)

// EditField performs one optimistic field edit.
//
// The mutation is applied to the cache before the update request is
// issued, so the grid reflects the new value immediately. The pre-edit
// value is captured first; if the request fails it is written back and
// the failure surfaced. A completion that arrives after the cache was
// replaced by a reload is discarded without touching current state.
func (c *Controller) EditField(ctx context.Context, id uuid.UUID, field ledger.Field, raw string) error {
	wire, err := ledger.NormalizeEdit(field, raw)
	if err != nil {
		c.notifier.Notify(err.Error(), SeverityWarning)
		return err
	}

	prev, ok := c.cache.FieldValue(id, field)
	if !ok {
		c.notifier.Notify("transaction is no longer in view", SeverityError)
		return ledger.ErrNotFound
	}

	generation := c.cache.Generation()
	if err := c.cache.UpdateField(id, field, wire); err != nil {
		c.notifier.Notify(err.Error(), SeverityError)
		return err
	}

	key := editKey{id: id, field: field}
	pe := c.pushPending(key, prev, generation)

	err = c.api.UpdateTransactionField(ctx, id, field, wire)
	if err == nil {
		c.completeEdit(key, pe, false)
		c.notifier.Notify(fmt.Sprintf("Updated %s", field), SeveritySuccess)
		return nil
	}

	rollbackTo, rollback := c.completeEdit(key, pe, true)
	if c.cache.Generation() != pe.generation {
		// The range was reloaded while the request was in flight. The row
		// this edit touched no longer exists in view, so there is nothing
		// to revert and nothing to tell the user.
		c.logger.WithField("transactionID", id.String()).
			WithField("field", string(field)).
			Debug("EditField.stale completion discarded")
		return nil
	}
	if rollback {
		if restoreErr := c.cache.UpdateField(id, field, rollbackTo); restoreErr != nil && !errors.Is(restoreErr, ledger.ErrNotFound) {
			c.logger.WithError(restoreErr).Error("EditField.rollback")
		}
	}
	c.notifier.Notify(fmt.Sprintf("Update failed: %v", err), SeverityError)
	return err
}
