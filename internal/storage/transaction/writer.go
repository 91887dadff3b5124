package transaction

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

// Editable columns the update path may touch. Anything else is rejected
// before SQL is built.
var editableColumns = map[string]struct{}{
	"transaction_date": {},
	"description":      {},
	"category":         {},
	"amount":           {},
	"comment":          {},
}

// EditableColumn reports whether the named column accepts field updates.
func EditableColumn(name string) bool {
	_, ok := editableColumns[name]
	return ok
}

// IWriter defines write access to the transactions table. All methods run
// inside the transaction the Writer was created with.
//
//go:generate mockery --name IWriter
type IWriter interface {
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	UpdateField(ctx context.Context, id uuid.UUID, column string, value any) (bool, error)
	DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error)
}

// Writer writes transactions through a bob executor.
type Writer struct {
	exec bob.Executor
}

var _ IWriter = (*Writer)(nil)

func NewWriter(exec bob.Executor) *Writer {
	return &Writer{exec: exec}
}

// Insert creates a transaction and returns its generated id.
func (w *Writer) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("transactions",
			"account_id", "transaction_date", "description",
			"category", "amount", "comment",
		),
		im.Values(psql.Arg(
			create.AccountID,
			create.TransactionDate,
			create.Description,
			create.Category.GetOrZero(),
			create.Amount,
			create.Comment.GetOrZero(),
		)),
		im.Returning("transaction_id"),
	)

	return bob.One(ctx, w.exec, q, scan.SingleColumnMapper[uuid.UUID])
}

// UpdateField sets one editable column on one transaction. Returns false
// when no row matched the id.
func (w *Writer) UpdateField(ctx context.Context, id uuid.UUID, column string, value any) (bool, error) {
	if !EditableColumn(column) {
		return false, &ColumnError{Column: column}
	}

	q := psql.Update(
		um.Table("transactions"),
		um.SetCol(column).ToArg(value),
		um.Where(psql.Quote("transaction_id").EQ(psql.Arg(id))),
	)

	res, err := bob.Exec(ctx, w.exec, q)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// DeleteMany removes every transaction whose id is in ids, in one
// statement, and returns the number of rows removed. Absent ids simply do
// not count; the statement is all-or-nothing within its transaction.
func (w *Writer) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	q := psql.Delete(
		dm.From("transactions"),
		dm.Where(psql.Quote("transaction_id").In(psql.Arg(args...))),
	)

	res, err := bob.Exec(ctx, w.exec, q)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ColumnError is an update aimed at a column that is not editable.
type ColumnError struct {
	Column string
}

func (e *ColumnError) Error() string {
	return "column " + e.Column + " is not editable"
}
