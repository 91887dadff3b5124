package account

import (
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
)

// Account is one row of the accounts table. LastStatementDate is nil until
// a statement has been ingested for the account.
type Account struct {
	ID                uuid.UUID  `db:"account_id"`
	Name              string     `db:"name"`
	Institution       string     `db:"institution"`
	LastFourDigits    string     `db:"last_4_digits"`
	Type              string     `db:"type"`
	LastStatementDate *time.Time `db:"last_statement_date"`
	CreatedAt         time.Time  `db:"created_at"`
}

// AccountCreate is the input for inserting an account. Institution is
// optional; unset is stored as empty.
type AccountCreate struct {
	Name           string
	LastFourDigits string
	Type           string
	Institution    omit.Val[string]
}
