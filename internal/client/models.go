package client

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bankbuddy/internal/ledger"
)

// Wire shapes for the BankBuddy API. Amounts travel as decimal strings and
// dates as YYYY-MM-DD, matching the server's response models.

type wireTransaction struct {
	ID              string `json:"id"`
	AccountID       string `json:"accountID"`
	TransactionDate string `json:"transactionDate"`
	Description     string `json:"description"`
	Category        string `json:"category"`
	Amount          string `json:"amount"`
	Comment         string `json:"comment"`
	AccountName     string `json:"accountName"`
	Institution     string `json:"institution"`
	LastFourDigits  string `json:"lastFourDigits"`
	AccountType     string `json:"accountType"`
}

func (w wireTransaction) toRecord() (ledger.TransactionRecord, error) {
	id, err := uuid.FromString(w.ID)
	if err != nil {
		return ledger.TransactionRecord{}, err
	}
	accountID, err := uuid.FromString(w.AccountID)
	if err != nil {
		return ledger.TransactionRecord{}, err
	}
	date, err := time.Parse(ledger.DateFormat, w.TransactionDate)
	if err != nil {
		return ledger.TransactionRecord{}, err
	}
	amount, err := decimal.NewFromString(w.Amount)
	if err != nil {
		return ledger.TransactionRecord{}, err
	}

	return ledger.TransactionRecord{
		ID:          id,
		Date:        date,
		Description: w.Description,
		Amount:      amount,
		Category:    w.Category,
		Comment:     w.Comment,
		Account: ledger.AccountInfo{
			ID:             accountID,
			Name:           w.AccountName,
			Institution:    w.Institution,
			LastFourDigits: w.LastFourDigits,
			Type:           ledger.ParseAccountType(w.AccountType),
		},
	}, nil
}

type listTransactionsResponse struct {
	Transactions []wireTransaction `json:"transactions"`
}

type updateTransactionRequest struct {
	ID    string `json:"id"`
	Field string `json:"field"`
	Value string `json:"value"`
}

type deleteTransactionsRequest struct {
	IDs []string `json:"ids"`
}

type deleteTransactionsResponse struct {
	DeletedCount int `json:"deletedCount"`
}

type createTransactionRequest struct {
	AccountID       string `json:"accountID"`
	TransactionDate string `json:"transactionDate"`
	Description     string `json:"description"`
	Category        string `json:"category"`
	Amount          string `json:"amount"`
}

type createTransactionResponse struct {
	ID string `json:"id"`
}

type wireAccount struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Institution    string `json:"institution"`
	LastFourDigits string `json:"lastFourDigits"`
	Type           string `json:"type"`
}

func (w wireAccount) toInfo() (ledger.AccountInfo, error) {
	id, err := uuid.FromString(w.ID)
	if err != nil {
		return ledger.AccountInfo{}, err
	}
	return ledger.AccountInfo{
		ID:             id,
		Name:           w.Name,
		Institution:    w.Institution,
		LastFourDigits: w.LastFourDigits,
		Type:           ledger.ParseAccountType(w.Type),
	}, nil
}

type listAccountsResponse struct {
	Accounts []wireAccount `json:"accounts"`
}

// FinancialSummary is the aggregated view of a date range, rendered
// verbatim by the console.
type FinancialSummary struct {
	TotalIncome       decimal.Decimal
	TotalExpense      decimal.Decimal
	Refunds           decimal.Decimal
	CreditCardExpense decimal.Decimal
	NetPosition       decimal.Decimal
}

type financialSummaryResponse struct {
	TotalIncome       string `json:"totalIncome"`
	TotalExpense      string `json:"totalExpense"`
	Refunds           string `json:"refunds"`
	CreditCardExpense string `json:"creditCardExpense"`
	NetPosition       string `json:"netPosition"`
}

func (r financialSummaryResponse) toSummary() (*FinancialSummary, error) {
	out := &FinancialSummary{}
	for _, f := range []struct {
		raw  string
		dest *decimal.Decimal
	}{
		{r.TotalIncome, &out.TotalIncome},
		{r.TotalExpense, &out.TotalExpense},
		{r.Refunds, &out.Refunds},
		{r.CreditCardExpense, &out.CreditCardExpense},
		{r.NetPosition, &out.NetPosition},
	} {
		d, err := decimal.NewFromString(f.raw)
		if err != nil {
			return nil, err
		}
		*f.dest = d
	}
	return out, nil
}

// CategorySpend is one row of the per-category spend report.
type CategorySpend struct {
	Category string
	Spent    decimal.Decimal
}

type wireCategorySpend struct {
	Category string `json:"category"`
	Spent    string `json:"spent"`
}

type categorySpendResponse struct {
	Categories []wireCategorySpend `json:"categories"`
}

func (r categorySpendResponse) toSpend() ([]CategorySpend, error) {
	out := make([]CategorySpend, len(r.Categories))
	for i, row := range r.Categories {
		spent, err := decimal.NewFromString(row.Spent)
		if err != nil {
			return nil, err
		}
		out[i] = CategorySpend{Category: row.Category, Spent: spent}
	}
	return out, nil
}
