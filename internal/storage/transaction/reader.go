package transaction

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var transactionColumns = []any{
	"transaction_id", "account_id", "transaction_date",
	"description", "category", "amount", "comment", "created_at",
}

// IReader defines read access to the transactions table.
//
//go:generate mockery --name IReader
type IReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	ListRange(ctx context.Context, from, to time.Time) ([]Transaction, error)
}

// Reader reads transactions through a bob executor.
type Reader struct {
	exec bob.Executor
}

var _ IReader = (*Reader)(nil)

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// FindByID retrieves a transaction by primary key. Returns (nil, nil) when
// no row matches.
func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	q := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("transaction_id").EQ(psql.Arg(id))),
	)

	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[Transaction]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ListRange returns every transaction with a date in [from, to], oldest
// first, ties broken by creation time. This order is what the ledger view
// displays; the client does not re-sort.
func (r *Reader) ListRange(ctx context.Context, from, to time.Time) ([]Transaction, error) {
	q := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("transaction_date").GTE(psql.Arg(from))),
		sm.Where(psql.Quote("transaction_date").LTE(psql.Arg(to))),
		sm.OrderBy("transaction_date").Asc(),
		sm.OrderBy("created_at").Asc(),
	)

	return bob.All(ctx, r.exec, q, scan.StructMapper[Transaction]())
}
