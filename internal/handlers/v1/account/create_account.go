package account

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/bankbuddy/internal/operator/actions"
	"github.com/carson-networks/bankbuddy/internal/service"
)

// CreateAccountBody is the request body for creating an account.
type CreateAccountBody struct {
	Name           string `json:"name" required:"true" minLength:"1" doc:"Account name"`
	Institution    string `json:"institution" doc:"Institution name, optional"`
	LastFourDigits string `json:"lastFourDigits" required:"true" minLength:"4" maxLength:"4" doc:"Last four digits of the account number"`
	Type           string `json:"type" required:"true" doc:"Account type: checking/savings, credit/debit or other"`
}

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	Body CreateAccountBody
}

// CreateAccountResponseBody is the response body for creating an account.
type CreateAccountResponseBody struct {
	ID string `json:"id" doc:"Created account UUID"`
}

// CreateAccountOutput is the Huma output for creating an account.
type CreateAccountOutput struct {
	Status int
	Body   CreateAccountResponseBody
}

// accountCreator is the interface for creating accounts.
type accountCreator interface {
	Create(ctx context.Context, acc service.Account) (uuid.UUID, error)
}

// CreateAccountHandler handles POST /v1/account.
type CreateAccountHandler struct {
	AccountService accountCreator
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(svc accountCreator) *CreateAccountHandler {
	return &CreateAccountHandler{AccountService: svc}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-account",
		Method:      http.MethodPost,
		Path:        "/v1/account",
		Summary:     "Create an account",
		Description: "Creates a new account. The name, last-4 and type combination must be unique.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	id, err := h.AccountService.Create(ctx, service.Account{
		Name:           input.Body.Name,
		Institution:    input.Body.Institution,
		LastFourDigits: input.Body.LastFourDigits,
		Type:           input.Body.Type,
	})
	if err != nil {
		if errors.Is(err, actions.ErrDuplicateAccount) {
			return nil, huma.NewError(http.StatusConflict, "account already exists")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create account", err)
	}

	return &CreateAccountOutput{
		Status: http.StatusCreated,
		Body:   CreateAccountResponseBody{ID: id.String()},
	}, nil
}
