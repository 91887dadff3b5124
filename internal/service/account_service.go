package service

import (
	"context"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/bankbuddy/internal/operator/actions"
	"github.com/carson-networks/bankbuddy/internal/storage"
)

// AccountService handles account business logic.
type AccountService struct {
	storage   *storage.Storage
	processor actionProcessor
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage, processor actionProcessor) *AccountService {
	return &AccountService{storage: store, processor: processor}
}

// List returns all accounts ordered by name.
func (s *AccountService) List(ctx context.Context) ([]Account, error) {
	rows, err := s.storage.Reader.Accounts.List(ctx)
	if err != nil {
		return nil, err
	}

	converted := make([]Account, len(rows))
	for i, row := range rows {
		converted[i] = Account{
			ID:                row.ID,
			Name:              row.Name,
			Institution:       row.Institution,
			LastFourDigits:    row.LastFourDigits,
			Type:              row.Type,
			LastStatementDate: row.LastStatementDate,
			CreatedAt:         row.CreatedAt,
		}
	}

	return converted, nil
}

// Create creates a new account and returns its id. A second account with
// the same name, last-4 and type fails with actions.ErrDuplicateAccount.
func (s *AccountService) Create(ctx context.Context, acc Account) (uuid.UUID, error) {
	action := &actions.CreateAccount{
		Name:           acc.Name,
		LastFourDigits: acc.LastFourDigits,
		Type:           acc.Type,
	}
	if acc.Institution != "" {
		action.Institution = omit.From(acc.Institution)
	}

	if err := s.processor.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return action.AccountID, nil
}
