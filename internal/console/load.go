package console

import (
	"context"
	"fmt"
	"time"

	"github.com/carson-networks/bankbuddy/internal/ledger"
)

// RangeError is a rejected load request; no query was issued.
type RangeError struct {
	Reason string
}

func (e *RangeError) Error() string { return e.Reason }

// ParseRange validates a pair of calendar-date bounds.
func ParseRange(fromDate, toDate string) (from, to time.Time, err error) {
	if fromDate == "" || toDate == "" {
		return from, to, &RangeError{Reason: "both fromDate and toDate are required"}
	}
	from, err = time.Parse(ledger.DateFormat, fromDate)
	if err != nil {
		return from, to, &RangeError{Reason: fmt.Sprintf("invalid fromDate %q, want %s", fromDate, ledger.DateFormat)}
	}
	to, err = time.Parse(ledger.DateFormat, toDate)
	if err != nil {
		return from, to, &RangeError{Reason: fmt.Sprintf("invalid toDate %q, want %s", toDate, ledger.DateFormat)}
	}
	if from.After(to) {
		return from, to, &RangeError{Reason: "fromDate cannot be after toDate"}
	}
	return from, to, nil
}

// Load fetches the transactions for [fromDate, toDate] and replaces the
// cache wholesale. Bad bounds fail fast with no request. The replacement
// bumps the cache generation, which turns any still-in-flight edit
// rollbacks into no-ops against the new collection.
func (c *Controller) Load(ctx context.Context, fromDate, toDate string) error {
	from, to, err := ParseRange(fromDate, toDate)
	if err != nil {
		c.notifier.Notify(err.Error(), SeverityWarning)
		return err
	}

	records, err := c.api.TransactionsInRange(ctx, from, to)
	if err != nil {
		c.notifier.Notify(fmt.Sprintf("Load failed: %v", err), SeverityError)
		return err
	}

	c.cache.ReplaceAll(records)
	c.selection.Clear()
	c.notifier.Notify(fmt.Sprintf("Loaded %d transactions", len(records)), SeveritySuccess)
	return nil
}
