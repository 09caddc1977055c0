package couleur

import (
	"cmp"
	"iter"
	"slices"
)

// UniqueSet is an append-only collection that holds each element once and
// keeps its elements in ascending order after every insertion.
//
// The zero value is an empty set ready to use. Copying a UniqueSet copies a
// reference to its backing array, so use Clone before inserting into a set
// another holder still observes.
type UniqueSet[T cmp.Ordered] struct {
	items []T
}

// NewUniqueSet returns an empty set.
func NewUniqueSet[T cmp.Ordered]() UniqueSet[T] {
	return UniqueSet[T]{}
}

// Insert adds v, then re-sorts the set and drops duplicates.
// Existing elements may change position.
func (u *UniqueSet[T]) Insert(v T) {
	u.items = append(u.items, v)
	slices.Sort(u.items)
	u.items = slices.Compact(u.items)
}

// Len returns the number of distinct elements.
func (u UniqueSet[T]) Len() int {
	return len(u.items)
}

// Contains reports whether v is in the set.
func (u UniqueSet[T]) Contains(v T) bool {
	_, found := slices.BinarySearch(u.items, v)
	return found
}

// Values returns the elements in ascending order. The returned slice is a
// copy and may be modified freely.
func (u UniqueSet[T]) Values() []T {
	if len(u.items) == 0 {
		return nil
	}
	return slices.Clone(u.items)
}

// All iterates the elements in ascending order.
func (u UniqueSet[T]) All() iter.Seq[T] {
	return slices.Values(u.items)
}

// Clone returns a set with its own backing storage.
func (u UniqueSet[T]) Clone() UniqueSet[T] {
	return UniqueSet[T]{items: u.Values()}
}
