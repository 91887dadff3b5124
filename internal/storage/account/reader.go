package account

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var accountColumns = []any{
	"account_id", "name", "institution", "last_4_digits",
	"type", "last_statement_date", "created_at",
}

// IReader defines read access to the accounts table.
//
//go:generate mockery --name IReader
type IReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)
	FindByUnique(ctx context.Context, name, lastFourDigits, accountType string) (*Account, error)
	List(ctx context.Context) ([]Account, error)
}

// Reader reads accounts through a bob executor.
type Reader struct {
	exec bob.Executor
}

var _ IReader = (*Reader)(nil)

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// FindByID retrieves an account by primary key. Returns (nil, nil) when no
// row matches.
func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	q := psql.Select(
		sm.Columns(accountColumns...),
		sm.From("accounts"),
		sm.Where(psql.Quote("account_id").EQ(psql.Arg(id))),
	)
	return r.one(ctx, q)
}

// FindByUnique retrieves an account by its (name, last-4, type) unique
// key, used for duplicate detection on create. Returns (nil, nil) when no
// row matches.
func (r *Reader) FindByUnique(ctx context.Context, name, lastFourDigits, accountType string) (*Account, error) {
	q := psql.Select(
		sm.Columns(accountColumns...),
		sm.From("accounts"),
		sm.Where(psql.Quote("name").EQ(psql.Arg(name))),
		sm.Where(psql.Quote("last_4_digits").EQ(psql.Arg(lastFourDigits))),
		sm.Where(psql.Quote("type").EQ(psql.Arg(accountType))),
	)
	return r.one(ctx, q)
}

// List returns all accounts ordered by name.
func (r *Reader) List(ctx context.Context) ([]Account, error) {
	q := psql.Select(
		sm.Columns(accountColumns...),
		sm.From("accounts"),
		sm.OrderBy("name").Asc(),
		sm.OrderBy("account_id").Asc(),
	)
	return bob.All(ctx, r.exec, q, scan.StructMapper[Account]())
}

func (r *Reader) one(ctx context.Context, q bob.Query) (*Account, error) {
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[Account]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
