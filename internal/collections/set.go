// Package collections holds small generic containers shared across the
// module.
package collections

// Set is a set of comparable values backed by a map with zero-size values.
type Set[T comparable] map[T]struct{}

// NewSet creates a Set holding the given initial values.
func NewSet[T comparable](vs ...T) Set[T] {
	s := Set[T]{}
	s.Add(vs...)
	return s
}

// Add adds one or more values to the set.
func (s Set[T]) Add(vs ...T) {
	for _, v := range vs {
		s[v] = struct{}{}
	}
}

// Has reports whether the set contains v.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}
