package account

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

// IWriter defines write access to the accounts table.
//
//go:generate mockery --name IWriter
type IWriter interface {
	Insert(ctx context.Context, create *AccountCreate) (uuid.UUID, error)
	UpdateLastStatementDate(ctx context.Context, id uuid.UUID, statementDate time.Time) error
}

// Writer writes accounts through a bob executor.
type Writer struct {
	exec bob.Executor
}

var _ IWriter = (*Writer)(nil)

func NewWriter(exec bob.Executor) *Writer {
	return &Writer{exec: exec}
}

// Insert creates an account and returns its generated id.
func (w *Writer) Insert(ctx context.Context, create *AccountCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("accounts", "name", "institution", "last_4_digits", "type"),
		im.Values(psql.Arg(
			create.Name,
			create.Institution.GetOrZero(),
			create.LastFourDigits,
			create.Type,
		)),
		im.Returning("account_id"),
	)

	return bob.One(ctx, w.exec, q, scan.SingleColumnMapper[uuid.UUID])
}

// UpdateLastStatementDate records the statement date of the most recently
// ingested statement for the account.
func (w *Writer) UpdateLastStatementDate(ctx context.Context, id uuid.UUID, statementDate time.Time) error {
	q := psql.Update(
		um.Table("accounts"),
		um.SetCol("last_statement_date").ToArg(statementDate),
		um.Where(psql.Quote("account_id").EQ(psql.Arg(id))),
	)

	_, err := bob.Exec(ctx, w.exec, q)
	return err
}
