// Package sets provides a small generic Set type used to model acquaintance
// relations between party guests.
package sets

// Set is a finite set of comparable elements backed by a map. The zero value
// is not usable; construct instances with New.
type Set[T comparable] struct {
	items map[T]struct{}
}

// New builds a set holding the given elements. Duplicates collapse.
func New[T comparable](elems ...T) Set[T] {
	s := Set[T]{items: make(map[T]struct{}, len(elems))}
	for _, e := range elems {
		s.items[e] = struct{}{}
	}
	return s
}

// Add inserts elem into the set. Adding an existing element is a no-op.
func (s Set[T]) Add(elem T) {
	s.items[elem] = struct{}{}
}

// Delete removes elem from the set if present.
func (s Set[T]) Delete(elem T) {
	delete(s.items, elem)
}

// Contains reports whether elem is a member of the set.
func (s Set[T]) Contains(elem T) bool {
	_, ok := s.items[elem]
	return ok
}

// ContainsSet reports whether every element of other is also in s.
func (s Set[T]) ContainsSet(other Set[T]) bool {
	for e := range other.items {
		if !s.Contains(e) {
			return false
		}
	}
	return true
}

// Equals reports whether s and other hold exactly the same elements.
func (s Set[T]) Equals(other Set[T]) bool {
	return len(s.items) == len(other.items) && s.ContainsSet(other)
}

// Len returns the number of elements in the set.
func (s Set[T]) Len() int {
	return len(s.items)
}

// Elems returns the elements of the set in unspecified order.
func (s Set[T]) Elems() []T {
	out := make([]T, 0, len(s.items))
	for e := range s.items {
		out = append(out, e)
	}
	return out
}

// Clone returns an independent copy of the set.
func (s Set[T]) Clone() Set[T] {
	c := Set[T]{items: make(map[T]struct{}, len(s.items))}
	for e := range s.items {
		c.items[e] = struct{}{}
	}
	return c
}

// Union returns a new set holding every element of A and every element of B.
func Union[T comparable](A, B Set[T]) Set[T] {
	out := Set[T]{items: make(map[T]struct{}, len(A.items)+len(B.items))}
	for e := range A.items {
		out.items[e] = struct{}{}
	}
	for e := range B.items {
		out.items[e] = struct{}{}
	}
	return out
}

// Intersect returns a new set holding the elements found in both A and B.
func Intersect[T comparable](A, B Set[T]) Set[T] {
	out := Set[T]{items: make(map[T]struct{})}
	for e := range A.items {
		if _, ok := B.items[e]; ok {
			out.items[e] = struct{}{}
		}
	}
	return out
}

// Difference returns a new set holding the elements of A that are not in B.
func Difference[T comparable](A, B Set[T]) Set[T] {
	out := Set[T]{items: make(map[T]struct{})}
	for e := range A.items {
		if _, ok := B.items[e]; !ok {
			out.items[e] = struct{}{}
		}
	}
	return out
}
