package pleat

import "sort"

// ExpansionState tracks which rows are currently expanded. The coordinator
// owns one instance and hands it to host screens that want to query
// expansion without holding a coordinator reference. Mutation happens only
// through the coordinator; the state is never package-global.
type ExpansionState struct {
	multiple bool
	active   []int // sorted ascending
}

func newExpansionState(multiple bool) *ExpansionState {
	return &ExpansionState{multiple: multiple}
}

// IsActive reports whether the given row is expanded.
func (s *ExpansionState) IsActive(index int) bool {
	i := sort.SearchInts(s.active, index)
	return i < len(s.active) && s.active[i] == index
}

// Active returns the single expanded row. The second return is false when
// no row, or more than one row, is expanded.
func (s *ExpansionState) Active() (int, bool) {
	if len(s.active) != 1 {
		return 0, false
	}
	return s.active[0], true
}

// ActiveRows returns the expanded rows in ascending order. The slice is a
// copy; callers may keep it.
func (s *ExpansionState) ActiveRows() []int {
	out := make([]int, len(s.active))
	copy(out, s.active)
	return out
}

// Len reports how many rows are expanded.
func (s *ExpansionState) Len() int {
	return len(s.active)
}

// activate marks a row expanded. Single-expansion mode replaces any prior
// row; the coordinator has already collapsed it by the time this runs.
func (s *ExpansionState) activate(index int) {
	if !s.multiple {
		s.active = s.active[:0]
		s.active = append(s.active, index)
		return
	}
	i := sort.SearchInts(s.active, index)
	if i < len(s.active) && s.active[i] == index {
		return
	}
	s.active = append(s.active, 0)
	copy(s.active[i+1:], s.active[i:])
	s.active[i] = index
}

// deactivate clears one row's expanded mark, if present.
func (s *ExpansionState) deactivate(index int) {
	i := sort.SearchInts(s.active, index)
	if i >= len(s.active) || s.active[i] != index {
		return
	}
	s.active = append(s.active[:i], s.active[i+1:]...)
}

// clear drops all expansion marks.
func (s *ExpansionState) clear() {
	s.active = s.active[:0]
}
