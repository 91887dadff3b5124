package actions

import (
	"context"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/bankbuddy/internal/storage"
	"github.com/carson-networks/bankbuddy/internal/storage/account"
)

type CreateAccount struct {
	Name           string
	LastFourDigits string
	Type           string
	Institution    omit.Val[string]

	// AccountID is populated on success.
	AccountID uuid.UUID

	IAction
}

func (c *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Accounts.FindByUnique(ctx, c.Name, c.LastFourDigits, c.Type)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrDuplicateAccount
	}

	id, err := writer.Account.Insert(ctx, &account.AccountCreate{
		Name:           c.Name,
		LastFourDigits: c.LastFourDigits,
		Type:           c.Type,
		Institution:    c.Institution,
	})
	if err != nil {
		return err
	}

	c.AccountID = id
	return nil
}
