package sets

import (
	"fmt"
	"sort"
	"strings"
)

// Epsilon marks "derives the empty string" in FIRST sets. FOLLOW sets
// never contain it.
const Epsilon = "ε"

// Set is a grow-only set of terminal texts.
type Set map[string]struct{}

func NewSet(elems ...string) Set {
	s := make(Set, len(elems))
	for _, elem := range elems {
		s[elem] = struct{}{}
	}
	return s
}

// Add inserts elem and reports whether the set grew.
func (s Set) Add(elem string) bool {
	if _, exists := s[elem]; exists {
		return false
	}
	s[elem] = struct{}{}
	return true
}

// AddSet inserts every element of other and reports whether the set
// grew.
func (s Set) AddSet(other Set) bool {
	grew := false
	for elem := range other {
		if s.Add(elem) {
			grew = true
		}
	}
	return grew
}

func (s Set) Has(elem string) bool {
	_, ok := s[elem]
	return ok
}

func (s Set) HasEpsilon() bool {
	return s.Has(Epsilon)
}

func (s Set) Len() int {
	return len(s)
}

// WithoutEpsilon returns a copy of the set with the ε marker removed.
func (s Set) WithoutEpsilon() Set {
	rv := make(Set, len(s))
	for elem := range s {
		if elem == Epsilon {
			continue
		}
		rv[elem] = struct{}{}
	}
	return rv
}

// Sorted returns the elements bytewise sorted with ε forced last, so
// rendered sets are stable across runs.
func (s Set) Sorted() []string {
	elems := make([]string, 0, len(s))
	hasEpsilon := false
	for elem := range s {
		if elem == Epsilon {
			hasEpsilon = true
			continue
		}
		elems = append(elems, elem)
	}
	sort.Strings(elems)

	if hasEpsilon {
		elems = append(elems, Epsilon)
	}
	return elems
}

func (s Set) String() string {
	sb := new(strings.Builder)
	sb.WriteString("{")
	for i, elem := range s.Sorted() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(sb, "%q", elem)
	}
	sb.WriteString("}")
	return sb.String()
}
