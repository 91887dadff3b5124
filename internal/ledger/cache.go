package ledger

import (
	"errors"
	"sync"

	"github.com/gofrs/uuid/v5"
)

// ErrNotFound is returned when an operation names an id that is not in the cache.
var ErrNotFound = errors.New("transaction not in ledger cache")

// Cache is the client-held collection of transaction records for the most
// recently loaded date range. Rows keep the order the server returned them
// in. Every full replacement bumps the generation counter so completions
// that raced a reload can be told apart from current ones.
type Cache struct {
	mu         sync.RWMutex
	records    []*TransactionRecord
	byID       map[uuid.UUID]*TransactionRecord
	generation uint64
}

func NewCache() *Cache {
	return &Cache{byID: make(map[uuid.UUID]*TransactionRecord)}
}

// ReplaceAll discards the current collection and installs records as the
// new state. Returns the new generation. Rows with a duplicate id keep the
// first occurrence.
func (c *Cache) ReplaceAll(records []TransactionRecord) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.records = make([]*TransactionRecord, 0, len(records))
	c.byID = make(map[uuid.UUID]*TransactionRecord, len(records))
	for i := range records {
		rec := records[i]
		if _, dup := c.byID[rec.ID]; dup {
			continue
		}
		c.records = append(c.records, &rec)
		c.byID[rec.ID] = &rec
	}
	c.generation++
	return c.generation
}

// Generation returns the counter value of the last ReplaceAll.
func (c *Cache) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation
}

// GetByID returns a copy of the record with the given id.
func (c *Cache) GetByID(id uuid.UUID) (TransactionRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rec, ok := c.byID[id]
	if !ok {
		return TransactionRecord{}, false
	}
	return *rec, true
}

// Records returns a snapshot of the collection in server order.
func (c *Cache) Records() []TransactionRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]TransactionRecord, len(c.records))
	for i, rec := range c.records {
		out[i] = *rec
	}
	return out
}

// Len returns the number of records held.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// FieldValue returns the canonical wire value of the named field on the
// record with the given id. This is what the optimistic edit controller
// captures before mutating, so a failed update can be rolled back.
func (c *Cache) FieldValue(id uuid.UUID, field Field) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	spec, ok := fieldSpecs[field]
	if !ok {
		return "", false
	}
	rec, ok := c.byID[id]
	if !ok {
		return "", false
	}
	return spec.read(rec), true
}

// UpdateField writes a canonical value onto the named field of the matching
// record, in place. Returns ErrNotFound if the id is absent. The value must
// already have passed NormalizeEdit; rollbacks reuse this path with the
// previously captured canonical value.
func (c *Cache) UpdateField(id uuid.UUID, field Field, canonical string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	spec, ok := fieldSpecs[field]
	if !ok {
		return &ValidationError{Field: field, Reason: "not an editable field"}
	}
	rec, ok := c.byID[id]
	if !ok {
		return ErrNotFound
	}
	return spec.assign(rec, canonical)
}

// RemoveMany removes every record whose id is in ids. Ids not present are
// ignored.
func (c *Cache) RemoveMany(ids []uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	drop := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	kept := c.records[:0]
	for _, rec := range c.records {
		if _, gone := drop[rec.ID]; gone {
			delete(c.byID, rec.ID)
			continue
		}
		kept = append(kept, rec)
	}
	c.records = kept
}
