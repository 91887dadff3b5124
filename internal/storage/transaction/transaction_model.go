package transaction

import (
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction is one row of the transactions table.
type Transaction struct {
	ID              uuid.UUID       `db:"transaction_id"`
	AccountID       uuid.UUID       `db:"account_id"`
	TransactionDate time.Time       `db:"transaction_date"`
	Description     string          `db:"description"`
	Category        string          `db:"category"`
	Amount          decimal.Decimal `db:"amount"`
	Comment         string          `db:"comment"`
	CreatedAt       time.Time       `db:"created_at"`
}

// TransactionCreate is the input for inserting a transaction. Category and
// Comment are optional; unset values are stored as empty.
type TransactionCreate struct {
	AccountID       uuid.UUID
	TransactionDate time.Time
	Description     string
	Amount          decimal.Decimal
	Category        omit.Val[string]
	Comment         omit.Val[string]
}
