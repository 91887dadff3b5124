package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction is a ledger row in the service layer, denormalized with the
// display fields of its owning account.
type Transaction struct {
	ID              uuid.UUID
	AccountID       uuid.UUID
	TransactionDate time.Time
	Description     string
	Category        string
	Amount          decimal.Decimal
	Comment         string
	CreatedAt       time.Time

	AccountName    string
	Institution    string
	LastFourDigits string
	AccountType    string
}

// Account represents an account in the service layer.
type Account struct {
	ID                uuid.UUID
	Name              string
	Institution       string
	LastFourDigits    string
	Type              string
	LastStatementDate *time.Time
	CreatedAt         time.Time
}

// Summary is the aggregate view of a date range.
type Summary struct {
	TotalIncome       decimal.Decimal
	TotalExpense      decimal.Decimal
	Refunds           decimal.Decimal
	CreditCardExpense decimal.Decimal
	NetPosition       decimal.Decimal
}

// CategorySpend is one category's total over a date range.
type CategorySpend struct {
	Category string
	Spent    decimal.Decimal
}
