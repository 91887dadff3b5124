package service

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/bankbuddy/internal/ledger"
	"github.com/carson-networks/bankbuddy/internal/storage"
)

// SummaryService aggregates a date range into report figures. Read only.
type SummaryService struct {
	storage *storage.Storage
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(store *storage.Storage) *SummaryService {
	return &SummaryService{storage: store}
}

// FinancialSummary computes the income/expense totals for [from, to].
//
// Checking and savings amounts split by sign into income and expense.
// Credit and debit card charges (positive amounts) count as credit card
// expense; negative card amounts are refunds unless they are a credit
// card payment, which already shows up as a checking expense.
func (s *SummaryService) FinancialSummary(ctx context.Context, from, to time.Time) (*Summary, error) {
	rows, err := s.storage.Reader.Transactions.ListRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	accountsByID, err := accountLookup(ctx, s.storage)
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	for _, row := range rows {
		accType := ledger.AccountTypeOther
		if acc, ok := accountsByID[row.AccountID]; ok {
			accType = ledger.ParseAccountType(acc.Type)
		}

		switch accType {
		case ledger.AccountTypeCheckingSavings:
			if row.Amount.Sign() > 0 {
				summary.TotalIncome = summary.TotalIncome.Add(row.Amount)
			} else {
				summary.TotalExpense = summary.TotalExpense.Add(row.Amount.Abs())
			}
		case ledger.AccountTypeCreditDebit:
			if row.Amount.Sign() > 0 {
				summary.CreditCardExpense = summary.CreditCardExpense.Add(row.Amount)
			} else if row.Amount.Sign() < 0 && row.Category != "credit card payment" {
				summary.Refunds = summary.Refunds.Add(row.Amount.Abs())
			}
		}
	}

	summary.NetPosition = summary.TotalIncome.Sub(summary.TotalExpense)
	return summary, nil
}

// CategorySpend totals amounts per category for [from, to]. Card amounts
// are negated so charges read as outflows like checking spend does;
// credit card payments on card accounts are skipped to avoid counting the
// same money twice. Sorted largest total first, ties by category name.
func (s *SummaryService) CategorySpend(ctx context.Context, from, to time.Time) ([]CategorySpend, error) {
	rows, err := s.storage.Reader.Transactions.ListRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	accountsByID, err := accountLookup(ctx, s.storage)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]decimal.Decimal)
	for _, row := range rows {
		accType := ledger.AccountTypeOther
		if acc, ok := accountsByID[row.AccountID]; ok {
			accType = ledger.ParseAccountType(acc.Type)
		}

		if accType != ledger.AccountTypeCheckingSavings && row.Category == "credit card payment" {
			continue
		}

		amount := row.Amount
		if accType == ledger.AccountTypeCreditDebit {
			amount = amount.Neg()
		}

		totals[row.Category] = totals[row.Category].Add(amount)
	}

	result := make([]CategorySpend, 0, len(totals))
	for category, spent := range totals {
		result = append(result, CategorySpend{Category: category, Spent: spent})
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].Spent.Equal(result[j].Spent) {
			return result[i].Spent.GreaterThan(result[j].Spent)
		}
		return result[i].Category < result[j].Category
	})

	return result, nil
}
