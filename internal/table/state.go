package table

import (
	"encoding/binary"
	"slices"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// IndexSet is a set of row indices.
type IndexSet map[int]struct{}

// NewIndexSet returns a set holding indices.
func NewIndexSet(indices ...int) IndexSet {
	s := make(IndexSet, len(indices))
	for _, i := range indices {
		s[i] = struct{}{}
	}
	return s
}

// RangeSet returns the set {0, ..., n-1}.
func RangeSet(n int) IndexSet {
	s := make(IndexSet, max(n, 0))
	for i := 0; i < n; i++ {
		s[i] = struct{}{}
	}
	return s
}

// Has reports whether i is in the set.
func (s IndexSet) Has(i int) bool {
	_, ok := s[i]
	return ok
}

// Toggle flips membership of i and returns the new membership.
func (s IndexSet) Toggle(i int) bool {
	if s.Has(i) {
		delete(s, i)
		return false
	}
	s[i] = struct{}{}
	return true
}

// Sorted returns the members in ascending order.
func (s IndexSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for i := range s {
		out = append(out, i)
	}
	slices.Sort(out)
	return out
}

// CountBelow returns the number of members in [0, n).
func (s IndexSet) CountBelow(n int) int {
	count := 0
	for i := range s {
		if i >= 0 && i < n {
			count++
		}
	}
	return count
}

// Clone returns an independent copy.
func (s IndexSet) Clone() IndexSet {
	out := make(IndexSet, len(s))
	for i := range s {
		out[i] = struct{}{}
	}
	return out
}

// Fingerprint hashes the set contents independently of insertion order.
func (s IndexSet) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, i := range s.Sorted() {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(i)))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

// externalMark remembers the last externally supplied value of a set.
type externalMark struct {
	seen        bool
	fingerprint uint64
}

// changed records value and reports whether it differs from the previous one.
// A nil value is "uncontrolled" and never counts as a change.
func (m *externalMark) changed(value []int) (IndexSet, bool) {
	if value == nil {
		return nil, false
	}
	set := NewIndexSet(value...)
	fp := set.Fingerprint()
	if m.seen && m.fingerprint == fp {
		return nil, false
	}
	m.seen = true
	m.fingerprint = fp
	return set, true
}

// State is the interaction state a Table keeps across builds: the selection
// set, the expansion set and the hover map. All methods are safe for
// concurrent use; each mutation is applied atomically.
type State struct {
	mu       sync.Mutex
	selected IndexSet
	expanded IndexSet
	hovered  map[int]bool

	selectedMark externalMark
	expandedMark externalMark
}

// NewState returns empty state.
func NewState() *State {
	return &State{
		selected: IndexSet{},
		expanded: IndexSet{},
		hovered:  map[int]bool{},
	}
}

// Reconcile overwrites the internal sets with the external values whenever
// those values differ from the ones seen on the previous call. It reports
// which sets were re-seeded.
func (s *State) Reconcile(selected, expanded []int) (selectionReset, expansionReset bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if set, ok := s.selectedMark.changed(selected); ok {
		s.selected = set
		selectionReset = true
	}
	if set, ok := s.expandedMark.changed(expanded); ok {
		s.expanded = set
		expansionReset = true
	}
	return selectionReset, expansionReset
}

// ToggleSelected flips the selection of row i and returns the new value.
func (s *State) ToggleSelected(i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected.Toggle(i)
}

// SetAllSelected selects [0, total) when value is true and clears the
// selection otherwise.
func (s *State) SetAllSelected(value bool, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if value {
		s.selected = RangeSet(total)
		return
	}
	s.selected = IndexSet{}
}

// ToggleExpanded flips the expansion of row i and returns the new value.
func (s *State) ToggleExpanded(i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expanded.Toggle(i)
}

// SetHovered records pointer enter (true) or exit (false) for row i. It
// reports whether the value changed.
func (s *State) SetHovered(i int, hovered bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hovered[i] == hovered {
		return false
	}
	if hovered {
		s.hovered[i] = true
	} else {
		delete(s.hovered, i)
	}
	return true
}

// ClearHover forgets every hovered row.
func (s *State) ClearHover() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.hovered) == 0 {
		return false
	}
	s.hovered = map[int]bool{}
	return true
}

// Selected returns the selected indices in ascending order.
func (s *State) Selected() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected.Sorted()
}

// Expanded returns the expanded indices in ascending order.
func (s *State) Expanded() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expanded.Sorted()
}

// IsSelected reports whether row i is selected.
func (s *State) IsSelected(i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected.Has(i)
}

// IsExpanded reports whether row i is expanded.
func (s *State) IsExpanded(i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expanded.Has(i)
}

// snapshot is a consistent copy of the state used for one build pass.
type snapshot struct {
	selected IndexSet
	expanded IndexSet
	hovered  map[int]bool
}

func (s *State) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	hovered := make(map[int]bool, len(s.hovered))
	for i, v := range s.hovered {
		hovered[i] = v
	}
	return snapshot{
		selected: s.selected.Clone(),
		expanded: s.expanded.Clone(),
		hovered:  hovered,
	}
}
