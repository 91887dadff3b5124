package account

import (
	"time"

	"github.com/carson-networks/bankbuddy/internal/ledger"
	"github.com/carson-networks/bankbuddy/internal/service"
)

// Account is the API response model for an account.
type Account struct {
	ID                string `json:"id" doc:"Account UUID"`
	Name              string `json:"name" doc:"Account name"`
	Institution       string `json:"institution" doc:"Institution name, may be empty"`
	LastFourDigits    string `json:"lastFourDigits" doc:"Last four digits of the account number"`
	Type              string `json:"type" doc:"Account type: checking/savings, credit/debit or other"`
	LastStatementDate string `json:"lastStatementDate,omitempty" doc:"Date of the newest ingested statement, YYYY-MM-DD, absent if none"`
	CreatedAt         string `json:"createdAt,omitempty" doc:"RFC3339 creation time"`
}

func fromService(acc service.Account) Account {
	out := Account{
		ID:             acc.ID.String(),
		Name:           acc.Name,
		Institution:    acc.Institution,
		LastFourDigits: acc.LastFourDigits,
		Type:           acc.Type,
	}
	if acc.LastStatementDate != nil {
		out.LastStatementDate = acc.LastStatementDate.Format(ledger.DateFormat)
	}
	if !acc.CreatedAt.IsZero() {
		out.CreatedAt = acc.CreatedAt.Format(time.RFC3339)
	}
	return out
}
