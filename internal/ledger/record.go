package ledger

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// AccountType classifies the account a transaction belongs to. The type
// decides how a signed amount reads on screen, nothing else.
type AccountType string

const (
	AccountTypeCheckingSavings AccountType = "checking/savings"
	AccountTypeCreditDebit     AccountType = "credit/debit"
	AccountTypeOther           AccountType = "other"
)

// ParseAccountType maps a wire value to an AccountType. Unknown values
// fall back to AccountTypeOther so a new server-side type never breaks
// rendering.
func ParseAccountType(s string) AccountType {
	switch AccountType(s) {
	case AccountTypeCheckingSavings, AccountTypeCreditDebit:
		return AccountType(s)
	default:
		return AccountTypeOther
	}
}

// AccountInfo carries the denormalized account display fields attached to
// every transaction row. Read-only from the ledger view.
type AccountInfo struct {
	ID             uuid.UUID
	Name           string
	Institution    string
	LastFourDigits string
	Type           AccountType
}

// TransactionRecord is one ledger row. Date, Description, Amount, Category
// and Comment are editable through the field descriptor table; everything
// else is fixed by the server.
type TransactionRecord struct {
	ID          uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Category    string
	Comment     string
	Account     AccountInfo
}

// Tone describes how an amount should read for its account type.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneFavorable
	ToneUnfavorable
)

// AmountTone applies the sign convention: checking/savings accounts favor
// inflows (positive), credit/debit accounts favor payments and credits
// (negative). The stored sign is never changed, this is display only.
func AmountTone(accountType AccountType, amount decimal.Decimal) Tone {
	switch accountType {
	case AccountTypeCheckingSavings:
		if amount.Sign() >= 0 {
			return ToneFavorable
		}
		return ToneUnfavorable
	case AccountTypeCreditDebit:
		if amount.Sign() <= 0 {
			return ToneFavorable
		}
		return ToneUnfavorable
	default:
		return ToneNeutral
	}
}

// Tone reports how the record's amount reads for its owning account.
func (r *TransactionRecord) Tone() Tone {
	return AmountTone(r.Account.Type, r.Amount)
}
