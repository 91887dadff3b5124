package ledger

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func makeRecord(desc string) TransactionRecord {
	return TransactionRecord{
		ID:          uuid.Must(uuid.NewV4()),
		Date:        time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC),
		Description: desc,
		Amount:      decimal.RequireFromString("-50.00"),
		Category:    "groceries",
		Account: AccountInfo{
			ID:             uuid.Must(uuid.NewV4()),
			Name:           "Everyday Checking",
			Institution:    "First National",
			LastFourDigits: "1234",
			Type:           AccountTypeCheckingSavings,
		},
	}
}

func TestReplaceAll_InstallsRecordsInOrder(t *testing.T) {
	cache := NewCache()
	records := []TransactionRecord{makeRecord("a"), makeRecord("b"), makeRecord("c")}

	gen := cache.ReplaceAll(records)

	assert.Equal(t, uint64(1), gen)
	got := cache.Records()
	assert.Len(t, got, 3)
	for i := range records {
		assert.Equal(t, records[i].ID, got[i].ID)
		assert.Equal(t, records[i].Description, got[i].Description)
	}
}

func TestReplaceAll_Idempotent(t *testing.T) {
	cache := NewCache()
	records := []TransactionRecord{makeRecord("a"), makeRecord("b")}

	cache.ReplaceAll(records)
	first := cache.Records()
	cache.ReplaceAll(records)
	second := cache.Records()

	assert.Equal(t, first, second)
}

func TestReplaceAll_BumpsGeneration(t *testing.T) {
	cache := NewCache()

	g1 := cache.ReplaceAll([]TransactionRecord{makeRecord("a")})
	g2 := cache.ReplaceAll([]TransactionRecord{makeRecord("b")})

	assert.Less(t, g1, g2)
	assert.Equal(t, g2, cache.Generation())
}

func TestReplaceAll_DropsDuplicateIDs(t *testing.T) {
	cache := NewCache()
	rec := makeRecord("original")
	dup := rec
	dup.Description = "duplicate"

	cache.ReplaceAll([]TransactionRecord{rec, dup})

	assert.Equal(t, 1, cache.Len())
	got, ok := cache.GetByID(rec.ID)
	assert.True(t, ok)
	assert.Equal(t, "original", got.Description)
}

func TestGetByID_NotFound(t *testing.T) {
	cache := NewCache()
	cache.ReplaceAll([]TransactionRecord{makeRecord("a")})

	_, ok := cache.GetByID(uuid.Must(uuid.NewV4()))
	assert.False(t, ok)
}

func TestUpdateField_MutatesInPlace(t *testing.T) {
	cache := NewCache()
	rec := makeRecord("a")
	cache.ReplaceAll([]TransactionRecord{rec})

	err := cache.UpdateField(rec.ID, FieldDescription, "updated")
	assert.NoError(t, err)

	got, ok := cache.GetByID(rec.ID)
	assert.True(t, ok)
	assert.Equal(t, "updated", got.Description)
}

func TestUpdateField_NotFound(t *testing.T) {
	cache := NewCache()
	cache.ReplaceAll([]TransactionRecord{makeRecord("a")})

	err := cache.UpdateField(uuid.Must(uuid.NewV4()), FieldDescription, "updated")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFieldValue_ReadsCanonicalForms(t *testing.T) {
	cache := NewCache()
	rec := makeRecord("a")
	cache.ReplaceAll([]TransactionRecord{rec})

	date, ok := cache.FieldValue(rec.ID, FieldDate)
	assert.True(t, ok)
	assert.Equal(t, "2024-01-09", date)

	amount, ok := cache.FieldValue(rec.ID, FieldAmount)
	assert.True(t, ok)
	assert.Equal(t, "-50.00", amount)

	_, ok = cache.FieldValue(uuid.Must(uuid.NewV4()), FieldAmount)
	assert.False(t, ok)
}

func TestRemoveMany_RemovesExactlyRequested(t *testing.T) {
	cache := NewCache()
	a, b, c := makeRecord("a"), makeRecord("b"), makeRecord("c")
	cache.ReplaceAll([]TransactionRecord{a, b, c})

	cache.RemoveMany([]uuid.UUID{a.ID, c.ID})

	assert.Equal(t, 1, cache.Len())
	_, ok := cache.GetByID(a.ID)
	assert.False(t, ok)
	_, ok = cache.GetByID(c.ID)
	assert.False(t, ok)
	got, ok := cache.GetByID(b.ID)
	assert.True(t, ok)
	assert.Equal(t, "b", got.Description)
}

func TestRemoveMany_IgnoresUnknownIDs(t *testing.T) {
	cache := NewCache()
	a := makeRecord("a")
	cache.ReplaceAll([]TransactionRecord{a})

	cache.RemoveMany([]uuid.UUID{uuid.Must(uuid.NewV4())})

	assert.Equal(t, 1, cache.Len())
}

func TestRecords_ReturnsCopies(t *testing.T) {
	cache := NewCache()
	a := makeRecord("a")
	cache.ReplaceAll([]TransactionRecord{a})

	snapshot := cache.Records()
	snapshot[0].Description = "mutated externally"

	got, _ := cache.GetByID(a.ID)
	assert.Equal(t, "a", got.Description)
}
