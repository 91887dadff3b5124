package service

import (
	"context"

	"github.com/carson-networks/bankbuddy/internal/operator/actions"
	"github.com/carson-networks/bankbuddy/internal/storage"
)

// actionProcessor runs one action inside a storage transaction. Satisfied
// by operator.OperatorDelegator.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Account     *AccountService
	Summary     *SummaryService
}

// NewService creates a new Service with the given storage. Writes go
// through the processor; reads hit storage directly.
func NewService(store *storage.Storage, processor actionProcessor) *Service {
	return &Service{
		Transaction: NewTransactionService(store, processor),
		Account:     NewAccountService(store, processor),
		Summary:     NewSummaryService(store),
	}
}
