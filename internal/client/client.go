// Package client is the HTTP client for the BankBuddy API. It is the only
// place the ledger console talks to the network; controllers depend on it
// through narrow interfaces.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/bankbuddy/internal/ledger"
)

const defaultTimeout = 30 * time.Second

// RemoteError is a completed request the server rejected. Reason carries
// the human-readable failure detail from the error payload.
type RemoteError struct {
	Status int
	Reason string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote rejection (%d): %s", e.Status, e.Reason)
}

// Client talks to one BankBuddy API server.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the given base URL, e.g. "http://127.0.0.1:9446".
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// TransactionsInRange fetches all transactions with dates in [from, to],
// denormalized with their account display fields, in server order.
func (c *Client) TransactionsInRange(ctx context.Context, from, to time.Time) ([]ledger.TransactionRecord, error) {
	query := url.Values{}
	query.Set("fromDate", from.Format(ledger.DateFormat))
	query.Set("toDate", to.Format(ledger.DateFormat))

	var body listTransactionsResponse
	if err := c.do(ctx, http.MethodGet, "/v1/transactions?"+query.Encode(), nil, &body); err != nil {
		return nil, err
	}

	records := make([]ledger.TransactionRecord, len(body.Transactions))
	for i, tx := range body.Transactions {
		rec, err := tx.toRecord()
		if err != nil {
			return nil, fmt.Errorf("decode transaction %d: %w", i, err)
		}
		records[i] = rec
	}
	return records, nil
}

// UpdateTransactionField sends one field edit. The value must already be
// in canonical wire form.
func (c *Client) UpdateTransactionField(ctx context.Context, id uuid.UUID, field ledger.Field, value string) error {
	req := updateTransactionRequest{ID: id.String(), Field: string(field), Value: value}
	return c.do(ctx, http.MethodPut, "/v1/transaction/field", req, nil)
}

// DeleteTransactions deletes the given ids in one batch request and
// returns the number of rows the server removed.
func (c *Client) DeleteTransactions(ctx context.Context, ids []uuid.UUID) (int, error) {
	req := deleteTransactionsRequest{IDs: make([]string, len(ids))}
	for i, id := range ids {
		req.IDs[i] = id.String()
	}

	var body deleteTransactionsResponse
	if err := c.do(ctx, http.MethodPost, "/v1/transactions/delete", req, &body); err != nil {
		return 0, err
	}
	return body.DeletedCount, nil
}

// FinancialSummary fetches the aggregated totals for a date range. The
// console renders these verbatim.
func (c *Client) FinancialSummary(ctx context.Context, from, to time.Time) (*FinancialSummary, error) {
	query := url.Values{}
	query.Set("fromDate", from.Format(ledger.DateFormat))
	query.Set("toDate", to.Format(ledger.DateFormat))

	var body financialSummaryResponse
	if err := c.do(ctx, http.MethodGet, "/v1/summary?"+query.Encode(), nil, &body); err != nil {
		return nil, err
	}
	return body.toSummary()
}

// CategorySpend fetches per-category spend totals for a date range.
func (c *Client) CategorySpend(ctx context.Context, from, to time.Time) ([]CategorySpend, error) {
	query := url.Values{}
	query.Set("fromDate", from.Format(ledger.DateFormat))
	query.Set("toDate", to.Format(ledger.DateFormat))

	var body categorySpendResponse
	if err := c.do(ctx, http.MethodGet, "/v1/categories/spend?"+query.Encode(), nil, &body); err != nil {
		return nil, err
	}
	return body.toSpend()
}

// ListAccounts fetches all accounts.
func (c *Client) ListAccounts(ctx context.Context) ([]ledger.AccountInfo, error) {
	var body listAccountsResponse
	if err := c.do(ctx, http.MethodGet, "/v1/accounts", nil, &body); err != nil {
		return nil, err
	}

	accounts := make([]ledger.AccountInfo, len(body.Accounts))
	for i, a := range body.Accounts {
		info, err := a.toInfo()
		if err != nil {
			return nil, fmt.Errorf("decode account %d: %w", i, err)
		}
		accounts[i] = info
	}
	return accounts, nil
}

// AddTransaction creates a transaction on the server and returns its id.
// The ledger view itself never inserts rows; this supports the separate
// add-transaction flow, which reloads the range afterwards.
func (c *Client) AddTransaction(ctx context.Context, accountID uuid.UUID, date time.Time, description, category, amount string) (uuid.UUID, error) {
	req := createTransactionRequest{
		AccountID:       accountID.String(),
		TransactionDate: date.Format(ledger.DateFormat),
		Description:     description,
		Category:        category,
		Amount:          amount,
	}

	var body createTransactionResponse
	if err := c.do(ctx, http.MethodPost, "/v1/transaction", req, &body); err != nil {
		return uuid.Nil, err
	}
	return uuid.FromString(body.ID)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var reqBody io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeRemoteError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

// errorModel matches the RFC 7807 problem body huma produces.
type errorModel struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

func decodeRemoteError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	var em errorModel
	reason := ""
	if err := json.Unmarshal(raw, &em); err == nil {
		reason = em.Detail
		if reason == "" {
			reason = em.Title
		}
	}
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return &RemoteError{Status: resp.StatusCode, Reason: reason}
}
