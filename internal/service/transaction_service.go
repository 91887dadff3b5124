package service

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bankbuddy/internal/ledger"
	"github.com/carson-networks/bankbuddy/internal/operator/actions"
	"github.com/carson-networks/bankbuddy/internal/storage"
	"github.com/carson-networks/bankbuddy/internal/storage/account"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage   *storage.Storage
	processor actionProcessor
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, processor actionProcessor) *TransactionService {
	return &TransactionService{storage: store, processor: processor}
}

// ListRange returns every transaction dated in [from, to], oldest first,
// with account display fields attached.
func (s *TransactionService) ListRange(ctx context.Context, from, to time.Time) ([]Transaction, error) {
	rows, err := s.storage.Reader.Transactions.ListRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	accountsByID, err := accountLookup(ctx, s.storage)
	if err != nil {
		return nil, err
	}

	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = Transaction{
			ID:              row.ID,
			AccountID:       row.AccountID,
			TransactionDate: row.TransactionDate,
			Description:     row.Description,
			Category:        row.Category,
			Amount:          row.Amount,
			Comment:         row.Comment,
			CreatedAt:       row.CreatedAt,
		}

		if acc, ok := accountsByID[row.AccountID]; ok {
			converted[i].AccountName = acc.Name
			converted[i].Institution = acc.Institution
			converted[i].LastFourDigits = acc.LastFourDigits
			converted[i].AccountType = acc.Type
		}
	}

	return converted, nil
}

// UpdateField applies one field edit to one transaction. The raw value is
// validated and canonicalized before anything touches storage, so a bad
// value never reaches SQL.
func (s *TransactionService) UpdateField(ctx context.Context, id uuid.UUID, field, raw string) error {
	parsed, err := ledger.ParseField(field)
	if err != nil {
		return err
	}

	canonical, err := ledger.NormalizeEdit(parsed, raw)
	if err != nil {
		return err
	}

	value, err := coerceFieldValue(parsed, canonical)
	if err != nil {
		return err
	}

	action := &actions.UpdateTransactionField{
		TransactionID: id,
		Column:        string(parsed),
		Value:         value,
	}

	return s.processor.Process(ctx, action)
}

// DeleteMany removes the given transactions in one batch and returns the
// number of rows removed. Ids that match nothing are not an error.
func (s *TransactionService) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	action := &actions.DeleteTransactions{IDs: ids}

	if err := s.processor.Process(ctx, action); err != nil {
		return 0, err
	}
	return action.Deleted, nil
}

// Add creates a new transaction and returns its id.
func (s *TransactionService) Add(ctx context.Context, tx Transaction) (uuid.UUID, error) {
	action := &actions.AddTransaction{
		AccountID:       tx.AccountID,
		TransactionDate: tx.TransactionDate,
		Description:     tx.Description,
		Amount:          tx.Amount,
	}
	if tx.Category != "" {
		action.Category = omit.From(tx.Category)
	}
	if tx.Comment != "" {
		action.Comment = omit.From(tx.Comment)
	}

	if err := s.processor.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return action.TransactionID, nil
}

// coerceFieldValue turns a canonical wire value into the Go type the
// column stores.
func coerceFieldValue(field ledger.Field, canonical string) (any, error) {
	switch field {
	case ledger.FieldAmount:
		return decimal.NewFromString(canonical)
	case ledger.FieldDate:
		return time.Parse(ledger.DateFormat, canonical)
	default:
		return canonical, nil
	}
}

// accountLookup loads all accounts keyed by id. The account table is
// small; one read per request beats a join fanned out over every row.
func accountLookup(ctx context.Context, store *storage.Storage) (map[uuid.UUID]account.Account, error) {
	accounts, err := store.Reader.Accounts.List(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]account.Account, len(accounts))
	for _, acc := range accounts {
		byID[acc.ID] = acc
	}
	return byID, nil
}
