package types

import "iter"

// ReadOnlyList is an ordered, live view over a collection owned elsewhere.
// Version changes whenever the visible contents may have changed.
type ReadOnlyList[T any] interface {
	Len() int
	At(i int) T
	All() iter.Seq2[int, T]
	Slice() []T
	Version() uint64
}

// Predicate selects entities for a filtered view.
type Predicate[T any] func(T) bool

// Snapshot is the full persisted state of both books.
type Snapshot struct {
	Contacts []Contact
	Trips    []Trip
}
