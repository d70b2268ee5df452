package game

import (
	"encoding/json"
	"sort"
)

// Set is a string set that serializes as a sorted JSON array, keeping
// GameState round-trips deterministic.
type Set map[string]bool

func NewSet(members ...string) Set {
	s := make(Set, len(members))
	for _, m := range members {
		s[m] = true
	}
	return s
}

func (s Set) Add(member string) {
	s[member] = true
}

func (s Set) Contains(member string) bool {
	return s[member]
}

// ContainsAll reports whether s is a superset of other.
func (s Set) ContainsAll(other Set) bool {
	for member := range other {
		if !s[member] {
			return false
		}
	}
	return true
}

// Sorted returns the members in lexical order.
func (s Set) Sorted() []string {
	members := make([]string, 0, len(s))
	for m := range s {
		members = append(members, m)
	}
	sort.Strings(members)
	return members
}

func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *Set) UnmarshalJSON(data []byte) error {
	var members []string
	if err := json.Unmarshal(data, &members); err != nil {
		return err
	}
	*s = NewSet(members...)
	return nil
}
