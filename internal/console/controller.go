// Package console holds the controllers behind the editable transaction
// ledger view: optimistic field edits, batch deletion of selected rows,
// and date-ranged reloads. The ledger cache and selection tracker are
// owned exclusively by one Controller; nothing else mutates them.
package console

import (
	"context"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bankbuddy/internal/ledger"
)

// remoteLedger is the slice of the API client the controllers need.
type remoteLedger interface {
	TransactionsInRange(ctx context.Context, from, to time.Time) ([]ledger.TransactionRecord, error)
	UpdateTransactionField(ctx context.Context, id uuid.UUID, field ledger.Field, value string) error
	DeleteTransactions(ctx context.Context, ids []uuid.UUID) (int, error)
}

// editKey identifies one in-flight edit slot. Keyed per (id, field) so
// concurrent edits to different fields or rows never interfere.
type editKey struct {
	id    uuid.UUID
	field ledger.Field
}

// pendingEdit is the state retained for one issued-but-unconfirmed edit:
// the pre-edit value needed for rollback and the cache generation the
// optimistic apply happened under.
type pendingEdit struct {
	prev       string
	generation uint64
}

// Controller wires the ledger cache and selection tracker to the remote
// system of record.
type Controller struct {
	cache     *ledger.Cache
	selection *ledger.Selection
	api       remoteLedger
	notifier  Notifier
	logger    *logrus.Logger

	mu      sync.Mutex
	pending map[editKey][]*pendingEdit
}

// NewController creates a Controller with a fresh cache and selection.
func NewController(api remoteLedger, notifier Notifier, logger *logrus.Logger) *Controller {
	return &Controller{
		cache:     ledger.NewCache(),
		selection: ledger.NewSelection(),
		api:       api,
		notifier:  notifier,
		logger:    logger,
		pending:   make(map[editKey][]*pendingEdit),
	}
}

// Cache exposes the ledger cache for rendering. Callers must treat it as
// read-only; all mutations go through the controller.
func (c *Controller) Cache() *ledger.Cache { return c.cache }

// SetSelection replaces the selected row ids, mirroring the grid's
// selection-change events.
func (c *Controller) SetSelection(ids []uuid.UUID) { c.selection.SetSelection(ids) }

// Selection returns the currently selected row ids.
func (c *Controller) Selection() []uuid.UUID { return c.selection.Current() }

// pushPending registers an in-flight edit for key and returns its record.
func (c *Controller) pushPending(key editKey, prev string, generation uint64) *pendingEdit {
	c.mu.Lock()
	defer c.mu.Unlock()
	pe := &pendingEdit{prev: prev, generation: generation}
	c.pending[key] = append(c.pending[key], pe)
	return pe
}

// completeEdit removes a finished edit from its key's queue. For a failed
// edit it decides how to reconcile: when a later edit for the same key is
// still in flight, that edit inherits this one's pre-edit value instead of
// the cache being touched — the later edit's own captured value was the
// now-discarded optimistic one, and rolling back to it would resurrect a
// value the server never held. Only the newest failure with no pending
// successor rolls the cache back directly.
func (c *Controller) completeEdit(key editKey, pe *pendingEdit, failed bool) (rollbackTo string, rollback bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	queue := c.pending[key]
	for i, candidate := range queue {
		if candidate == pe {
			queue = append(queue[:i], queue[i+1:]...)
			break
		}
	}
	if len(queue) == 0 {
		delete(c.pending, key)
	} else {
		c.pending[key] = queue
	}

	if !failed {
		return "", false
	}
	if len(queue) > 0 {
		// Completions per key arrive in issue order, so anything still
		// queued was issued after pe.
		queue[0].prev = pe.prev
		return "", false
	}
	return pe.prev, true
}

// InFlightEdits returns the number of issued-but-unconfirmed edits.
func (c *Controller) InFlightEdits() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, queue := range c.pending {
		n += len(queue)
	}
	return n
}
