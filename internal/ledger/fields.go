package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the calendar-date wire format used everywhere in the API.
const DateFormat = "2006-01-02"

// Field names an editable transaction field. The values match the wire
// protocol of the update endpoint.
type Field string

const (
	FieldDate        Field = "transaction_date"
	FieldDescription Field = "description"
	FieldAmount      Field = "amount"
	FieldCategory    Field = "category"
	FieldComment     Field = "comment"
)

// ValidationError is a local, pre-network rejection of an edit. Nothing
// was mutated and no request was issued when one is returned.
type ValidationError struct {
	Field  Field
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// categories is the fixed taxonomy supplied by the statement parser. An
// empty category is allowed and means "uncategorized".
var categories = []string{
	"paycheck", "other income", "transfer", "credit card payment",
	"home", "utilities", "rent", "auto", "gas", "parking", "travel",
	"restaurant", "groceries", "medical", "amazon", "walmart",
	"shopping", "subscriptions", "donations", "insurance",
	"investments", "other expenses",
}

// Categories returns the allowed category taxonomy in display order.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// ValidCategory reports whether s is a member of the taxonomy.
func ValidCategory(s string) bool {
	for _, c := range categories {
		if c == s {
			return true
		}
	}
	return false
}

// fieldSpec is the per-field descriptor: how to validate and canonicalize
// raw input, how to write a canonical value onto a record, and how to read
// the current value back out in canonical form.
type fieldSpec struct {
	normalize func(raw string) (string, error)
	assign    func(r *TransactionRecord, canonical string) error
	read      func(r *TransactionRecord) string
}

var fieldSpecs = map[Field]fieldSpec{
	FieldDate: {
		normalize: func(raw string) (string, error) {
			t, err := time.Parse(DateFormat, strings.TrimSpace(raw))
			if err != nil {
				return "", &ValidationError{Field: FieldDate, Reason: "want a calendar date in " + DateFormat + " form"}
			}
			return t.Format(DateFormat), nil
		},
		assign: func(r *TransactionRecord, canonical string) error {
			t, err := time.Parse(DateFormat, canonical)
			if err != nil {
				return err
			}
			r.Date = t
			return nil
		},
		read: func(r *TransactionRecord) string { return r.Date.Format(DateFormat) },
	},
	FieldDescription: {
		normalize: func(raw string) (string, error) {
			if strings.TrimSpace(raw) == "" {
				return "", &ValidationError{Field: FieldDescription, Reason: "must not be empty"}
			}
			return raw, nil
		},
		assign: func(r *TransactionRecord, canonical string) error {
			r.Description = canonical
			return nil
		},
		read: func(r *TransactionRecord) string { return r.Description },
	},
	FieldAmount: {
		normalize: func(raw string) (string, error) {
			d, err := decimal.NewFromString(strings.TrimSpace(raw))
			if err != nil {
				return "", &ValidationError{Field: FieldAmount, Reason: "not a decimal number"}
			}
			return d.StringFixed(2), nil
		},
		assign: func(r *TransactionRecord, canonical string) error {
			d, err := decimal.NewFromString(canonical)
			if err != nil {
				return err
			}
			r.Amount = d
			return nil
		},
		read: func(r *TransactionRecord) string { return r.Amount.StringFixed(2) },
	},
	FieldCategory: {
		normalize: func(raw string) (string, error) {
			c := strings.TrimSpace(strings.ToLower(raw))
			if c != "" && !ValidCategory(c) {
				return "", &ValidationError{Field: FieldCategory, Reason: fmt.Sprintf("%q is not an allowed category", c)}
			}
			return c, nil
		},
		assign: func(r *TransactionRecord, canonical string) error {
			r.Category = canonical
			return nil
		},
		read: func(r *TransactionRecord) string { return r.Category },
	},
	FieldComment: {
		normalize: func(raw string) (string, error) { return raw, nil },
		assign: func(r *TransactionRecord, canonical string) error {
			r.Comment = canonical
			return nil
		},
		read: func(r *TransactionRecord) string { return r.Comment },
	},
}

// ParseField maps a wire field name to a Field.
func ParseField(s string) (Field, error) {
	f := Field(s)
	if _, ok := fieldSpecs[f]; !ok {
		return "", &ValidationError{Field: f, Reason: "not an editable field"}
	}
	return f, nil
}

// NormalizeEdit validates raw input for the named field and returns the
// canonical wire value. A *ValidationError means the edit must not be
// applied locally or sent to the server.
func NormalizeEdit(field Field, raw string) (string, error) {
	spec, ok := fieldSpecs[field]
	if !ok {
		return "", &ValidationError{Field: field, Reason: "not an editable field"}
	}
	return spec.normalize(raw)
}
