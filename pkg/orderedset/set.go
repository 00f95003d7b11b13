// Package orderedset provides a set with stable insertion-order iteration
// and constant-time membership tests.
package orderedset

// Set holds unique keys in the order they were added.
type Set[K comparable] struct {
	members map[K]struct{}
	order   []K // insertion order for deterministic iteration
}

// New creates an empty set.
func New[K comparable]() *Set[K] {
	return &Set[K]{members: make(map[K]struct{})}
}

// Has reports whether k is in the set.
func (s *Set[K]) Has(k K) bool {
	_, ok := s.members[k]
	return ok
}

// Add appends k if it is not already present. Returns false if it was.
func (s *Set[K]) Add(k K) bool {
	if s.Has(k) {
		return false
	}
	s.members[k] = struct{}{}
	s.order = append(s.order, k)
	return true
}

// Remove deletes k, keeping the relative order of the remaining keys.
// Returns false if k was not present.
func (s *Set[K]) Remove(k K) bool {
	if !s.Has(k) {
		return false
	}
	delete(s.members, k)
	for i, o := range s.order {
		if o == k {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Toggle removes k if present, otherwise appends it. Reports whether k is
// a member afterwards.
func (s *Set[K]) Toggle(k K) bool {
	if s.Remove(k) {
		return false
	}
	s.Add(k)
	return true
}

// Clear empties the set.
func (s *Set[K]) Clear() {
	clear(s.members)
	s.order = s.order[:0]
}

// Len returns the number of keys.
func (s *Set[K]) Len() int {
	return len(s.order)
}

// Items returns all keys in insertion order.
func (s *Set[K]) Items() []K {
	return append([]K(nil), s.order...)
}
