package transaction

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/bankbuddy/internal/ledger"
	"github.com/carson-networks/bankbuddy/internal/service"
)

// Transaction is the API response model for a ledger row. Account display
// fields ride along so the console never joins client-side.
type Transaction struct {
	ID              string `json:"id" doc:"Transaction UUID"`
	AccountID       string `json:"accountID" doc:"Account UUID"`
	TransactionDate string `json:"transactionDate" doc:"Calendar date, YYYY-MM-DD"`
	Description     string `json:"description" doc:"Transaction description"`
	Category        string `json:"category" doc:"Category, empty means uncategorized"`
	Amount          string `json:"amount" doc:"Signed decimal amount"`
	Comment         string `json:"comment" doc:"Free-form comment"`
	AccountName     string `json:"accountName" doc:"Owning account name"`
	Institution     string `json:"institution" doc:"Owning account institution"`
	LastFourDigits  string `json:"lastFourDigits" doc:"Owning account last four digits"`
	AccountType     string `json:"accountType" doc:"Owning account type"`
}

func fromService(tx service.Transaction) Transaction {
	return Transaction{
		ID:              tx.ID.String(),
		AccountID:       tx.AccountID.String(),
		TransactionDate: tx.TransactionDate.Format(ledger.DateFormat),
		Description:     tx.Description,
		Category:        tx.Category,
		Amount:          tx.Amount.StringFixed(2),
		Comment:         tx.Comment,
		AccountName:     tx.AccountName,
		Institution:     tx.Institution,
		LastFourDigits:  tx.LastFourDigits,
		AccountType:     tx.AccountType,
	}
}

// parseDateRange validates a fromDate/toDate query pair.
func parseDateRange(fromDate, toDate string) (from, to time.Time, err error) {
	from, parseErr := time.Parse(ledger.DateFormat, fromDate)
	if parseErr != nil {
		return time.Time{}, time.Time{}, huma.NewError(http.StatusBadRequest, "invalid fromDate", parseErr)
	}
	to, parseErr = time.Parse(ledger.DateFormat, toDate)
	if parseErr != nil {
		return time.Time{}, time.Time{}, huma.NewError(http.StatusBadRequest, "invalid toDate", parseErr)
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, huma.NewError(http.StatusBadRequest, "fromDate must not be after toDate")
	}
	return from, to, nil
}
