package entity

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Service is a bookable sub-resource an employee can be associated with.
type Service struct {
	ID              uuid.UUID `json:"id"`
	PlaceID         uuid.UUID `json:"place_id"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"duration_minutes"`
	Price           float64   `json:"price"`
}

// ServiceSelection is the set of service identifiers an employee is assigned
// to. Display order is preserved, but equality and the canonical signature
// ignore order and duplicates.
type ServiceSelection struct {
	ids []uuid.UUID
}

// NewServiceSelection builds a selection from ids, dropping duplicates while
// keeping first-seen order.
func NewServiceSelection(ids []uuid.UUID) ServiceSelection {
	var sel ServiceSelection
	sel.Replace(ids)

	return sel
}

// IDs returns the selected identifiers in display order.
func (s *ServiceSelection) IDs() []uuid.UUID {
	out := make([]uuid.UUID, len(s.ids))
	copy(out, s.ids)

	return out
}

// Len returns the number of selected services.
func (s *ServiceSelection) Len() int {
	return len(s.ids)
}

// Contains reports whether id is part of the selection.
func (s *ServiceSelection) Contains(id uuid.UUID) bool {
	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}

	return false
}

// Toggle adds id to the selection if absent and removes it if present.
func (s *ServiceSelection) Toggle(id uuid.UUID) {
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)

			return
		}
	}

	s.ids = append(s.ids, id)
}

// Replace swaps the whole selection for ids, dropping duplicates while
// keeping first-seen order.
func (s *ServiceSelection) Replace(ids []uuid.UUID) {
	seen := make(map[uuid.UUID]bool, len(ids))
	s.ids = s.ids[:0]
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		s.ids = append(s.ids, id)
	}
}

// Signature returns the canonical form of the selection: the sorted
// identifiers joined into one string. Two selections with the same members
// produce the same signature regardless of order.
func (s *ServiceSelection) Signature() string {
	keys := make([]string, 0, len(s.ids))
	for _, id := range s.ids {
		keys = append(keys, id.String())
	}
	sort.Strings(keys)

	return strings.Join(keys, ",")
}

// Equal reports whether both selections contain the same identifiers,
// ignoring order.
func (s *ServiceSelection) Equal(other *ServiceSelection) bool {
	return s.Signature() == other.Signature()
}
