package typeutil

import (
	"encoding/json"
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"
)

// Set implements a set data structure based on built-in maps. This is not
// optimized for large data, but to be convenient.
type Set[T constraints.Ordered] struct {
	data map[T]struct{}
}

// NewSet initializes a new Set with the given values. If there are no
// values provided this is equivalent to new(Set[T]).
func NewSet[T constraints.Ordered](values ...T) *Set[T] {
	s := new(Set[T])
	for i := range values {
		s.Add(values[i])
	}
	return s
}

// Add puts a single value to the set. The set will be the same, if it
// already contains the value.
func (s *Set[T]) Add(value T) {
	if s.data == nil {
		s.data = map[T]struct{}{}
	}

	s.data[value] = struct{}{}
}

// Contains returns true, if the given value is part of the set.
func (s *Set[T]) Contains(value T) bool {
	if s == nil || s.data == nil {
		return false
	}

	_, found := s.data[value]
	return found
}

// Remove removes the given value from the set. The set will be the same,
// if the value is not part of it.
func (s *Set[T]) Remove(value T) {
	if s == nil || s.data == nil {
		return
	}

	delete(s.data, value)
}

// Len returns the number of all values in the set.
func (s *Set[T]) Len() int {
	if s == nil || s.data == nil {
		return 0
	}
	return len(s.data)
}

// ToList converts the set into a sorted slice, so iteration over set
// contents stays deterministic.
func (s *Set[T]) ToList() []T {
	if s == nil || s.data == nil {
		return nil
	}

	list := make([]T, 0, len(s.data))
	for v := range s.data {
		list = append(list, v)
	}

	slices.Sort(list)
	return list
}

// AddSet adds each value from the given set to the set.
func (s *Set[T]) AddSet(other *Set[T]) {
	if other == nil {
		return
	}

	for o := range other.data {
		s.Add(o)
	}
}

// MarshalJSON adds support for marshaling the set into a JSON list.
func (s Set[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.ToList())
}

// UnmarshalJSON adds support for unmarshaling the set from a JSON list.
func (s *Set[T]) UnmarshalJSON(data []byte) error {
	list := []T{}
	err := json.Unmarshal(data, &list)
	if err != nil {
		return fmt.Errorf("unmarshal set: %w", err)
	}

	for _, v := range list {
		s.Add(v)
	}

	return nil
}

// SetUnion merges all given sets into a new one. Nil sets are skipped.
func SetUnion[T constraints.Ordered](sets ...*Set[T]) *Set[T] {
	result := new(Set[T])

	for i := range sets {
		result.AddSet(sets[i])
	}

	return result
}
