// Command console is the interactive terminal front end for the BankBuddy
// ledger: load a date range, edit fields in place, select and delete rows,
// and pull summary reports. All ledger state lives in the client-side
// cache; the API server stays the system of record.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bankbuddy/internal/client"
	"github.com/carson-networks/bankbuddy/internal/config"
	"github.com/carson-networks/bankbuddy/internal/console"
	"github.com/carson-networks/bankbuddy/internal/ledger"
	"github.com/carson-networks/bankbuddy/internal/logging"
)

func main() {
	logger := logging.SetupLogging()
	logger.Out = os.Stderr

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	api := client.New(envConfig.APIBaseURL)
	notifier := console.NotifierFunc(func(message string, severity console.Severity) {
		fmt.Printf("[%s] %s\n", severity, message)
	})

	a := &app{
		api:        api,
		controller: console.NewController(api, notifier, logger),
	}

	fmt.Println("bankbuddy console, type 'help' for commands")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		if !a.dispatch(context.Background(), strings.Fields(scanner.Text())) {
			return
		}
	}
}

type app struct {
	api        *client.Client
	controller *console.Controller

	// last loaded range, reused by the report commands
	fromDate string
	toDate   string
}

// dispatch runs one command line. Returns false to exit the loop.
func (a *app) dispatch(ctx context.Context, args []string) bool {
	if len(args) == 0 {
		return true
	}

	switch args[0] {
	case "quit", "exit":
		return false
	case "help":
		printHelp()
	case "load":
		a.load(ctx, args[1:])
	case "list":
		a.list()
	case "select":
		a.selectRows(args[1:])
	case "clear":
		a.controller.SetSelection(nil)
		fmt.Println("selection cleared")
	case "edit":
		a.edit(ctx, args[1:])
	case "delete":
		_ = a.controller.DeleteSelected(ctx)
	case "add":
		a.add(ctx, args[1:])
	case "summary":
		a.summary(ctx)
	case "categories":
		a.categories(ctx)
	case "accounts":
		a.accounts(ctx)
	default:
		fmt.Printf("unknown command %q, type 'help'\n", args[0])
	}
	return true
}

func printHelp() {
	fmt.Print(`commands:
  load <from> <to>        load transactions for a date range (YYYY-MM-DD)
  list                    show the loaded transactions
  select <row> [row...]   select rows by number
  clear                   clear the selection
  edit <row> <field> <value...>
                          edit one field: transaction_date, description,
                          amount, category or comment
  delete                  delete the selected rows
  add <last4> <date> <amount> <description...>
                          create a transaction on the account with that last-4
  summary                 financial summary for the loaded range
  categories              spend by category for the loaded range
  accounts                list accounts
  quit                    exit
`)
}

func (a *app) load(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Println("usage: load <from> <to>")
		return
	}
	if err := a.controller.Load(ctx, args[0], args[1]); err != nil {
		return
	}
	a.fromDate, a.toDate = args[0], args[1]
	a.list()
}

func (a *app) list() {
	records := a.controller.Cache().Records()
	if len(records) == 0 {
		fmt.Println("no transactions loaded")
		return
	}

	selected := make(map[uuid.UUID]bool)
	for _, id := range a.controller.Selection() {
		selected[id] = true
	}

	for i, rec := range records {
		marker := " "
		if selected[rec.ID] {
			marker = "*"
		}
		fmt.Printf("%s%3d  %s  %12s%s  %-30s  %-20s  %s (%s)  %s\n",
			marker, i+1,
			rec.Date.Format(ledger.DateFormat),
			rec.Amount.StringFixed(2), toneMarker(rec.Tone()),
			clip(rec.Description, 30),
			clip(rec.Category, 20),
			rec.Account.Name, rec.Account.LastFourDigits,
			rec.Comment,
		)
	}
}

// toneMarker renders the display tone of an amount: inflows on checking
// read up, charges on cards read down, everything else is flat.
func toneMarker(tone ledger.Tone) string {
	switch tone {
	case ledger.ToneFavorable:
		return "▲"
	case ledger.ToneUnfavorable:
		return "▼"
	default:
		return " "
	}
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

// resolveRow maps a 1-based row number from the last listing to a record.
func (a *app) resolveRow(arg string) (ledger.TransactionRecord, bool) {
	records := a.controller.Cache().Records()
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(records) {
		fmt.Printf("no such row %q\n", arg)
		return ledger.TransactionRecord{}, false
	}
	return records[n-1], true
}

func (a *app) selectRows(args []string) {
	if len(args) == 0 {
		fmt.Println("usage: select <row> [row...]")
		return
	}
	ids := make([]uuid.UUID, 0, len(args))
	for _, arg := range args {
		rec, ok := a.resolveRow(arg)
		if !ok {
			return
		}
		ids = append(ids, rec.ID)
	}
	a.controller.SetSelection(ids)
	fmt.Printf("%d selected\n", len(a.controller.Selection()))
}

func (a *app) edit(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Println("usage: edit <row> <field> <value...>")
		return
	}
	rec, ok := a.resolveRow(args[0])
	if !ok {
		return
	}
	field, err := ledger.ParseField(args[1])
	if err != nil {
		fmt.Println(err)
		return
	}
	value := strings.Join(args[2:], " ")
	_ = a.controller.EditField(ctx, rec.ID, field, value)
}

func (a *app) rangeLoaded() bool {
	if a.fromDate == "" {
		fmt.Println("load a date range first")
		return false
	}
	return true
}

func (a *app) summary(ctx context.Context) {
	if !a.rangeLoaded() {
		return
	}
	from, to, err := console.ParseRange(a.fromDate, a.toDate)
	if err != nil {
		fmt.Println(err)
		return
	}
	result, err := a.api.FinancialSummary(ctx, from, to)
	if err != nil {
		fmt.Printf("summary failed: %v\n", err)
		return
	}
	fmt.Printf("income             %12s\n", result.TotalIncome.StringFixed(2))
	fmt.Printf("expense            %12s\n", result.TotalExpense.StringFixed(2))
	fmt.Printf("refunds            %12s\n", result.Refunds.StringFixed(2))
	fmt.Printf("credit card spend  %12s\n", result.CreditCardExpense.StringFixed(2))
	fmt.Printf("net position       %12s\n", result.NetPosition.StringFixed(2))
}

func (a *app) categories(ctx context.Context) {
	if !a.rangeLoaded() {
		return
	}
	from, to, err := console.ParseRange(a.fromDate, a.toDate)
	if err != nil {
		fmt.Println(err)
		return
	}
	rows, err := a.api.CategorySpend(ctx, from, to)
	if err != nil {
		fmt.Printf("categories failed: %v\n", err)
		return
	}
	for _, row := range rows {
		name := row.Category
		if name == "" {
			name = "(uncategorized)"
		}
		fmt.Printf("%-22s %12s\n", name, row.Spent.StringFixed(2))
	}
}

func (a *app) add(ctx context.Context, args []string) {
	if len(args) < 4 {
		fmt.Println("usage: add <last4> <date> <amount> <description...>")
		return
	}
	accounts, err := a.api.ListAccounts(ctx)
	if err != nil {
		fmt.Printf("add failed: %v\n", err)
		return
	}
	var account *ledger.AccountInfo
	for i := range accounts {
		if accounts[i].LastFourDigits == args[0] {
			account = &accounts[i]
			break
		}
	}
	if account == nil {
		fmt.Printf("no account ending in %q\n", args[0])
		return
	}

	date, err := time.Parse(ledger.DateFormat, args[1])
	if err != nil {
		fmt.Printf("invalid date %q, want %s\n", args[1], ledger.DateFormat)
		return
	}

	id, err := a.api.AddTransaction(ctx, account.ID, date, strings.Join(args[3:], " "), "", args[2])
	if err != nil {
		fmt.Printf("add failed: %v\n", err)
		return
	}
	fmt.Printf("created %s, reload to see it\n", id)
}

func (a *app) accounts(ctx context.Context) {
	accounts, err := a.api.ListAccounts(ctx)
	if err != nil {
		fmt.Printf("accounts failed: %v\n", err)
		return
	}
	for _, acc := range accounts {
		fmt.Printf("%-25s (%s)  %-16s %s\n",
			acc.Name, acc.LastFourDigits, acc.Type, acc.Institution)
	}
}
