package ledger

import (
	"sync"

	"github.com/gofrs/uuid/v5"
)

// Selection tracks the set of row ids currently selected in the grid.
// It is replaced wholesale on every selection-change event. Callers must
// clear or re-set it after a RemoveMany; the tracker does not prune itself.
type Selection struct {
	mu  sync.RWMutex
	ids map[uuid.UUID]struct{}
}

func NewSelection() *Selection {
	return &Selection{ids: make(map[uuid.UUID]struct{})}
}

// SetSelection replaces the selected set.
func (s *Selection) SetSelection(ids []uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = make(map[uuid.UUID]struct{})
}

// Current returns the selected ids. Order is not significant.
func (s *Selection) Current() []uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]uuid.UUID, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	return out
}

// Len returns the number of selected ids.
func (s *Selection) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}
