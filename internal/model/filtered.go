package model

import (
	"iter"
	"slices"

	"travelbook/internal/domain"
)

// ShowAll is the default predicate: it matches everything.
func ShowAll[T any](T) bool { return true }

// FilteredList is a live, order-preserving subsequence of a backing list holding exactly
// the elements that satisfy the current predicate.
type FilteredList[T any] struct {
	source    domain.ReadOnlyList[T]
	predicate domain.Predicate[T]

	// Memoized result, valid while sourceVersion and predicateGen still match.
	memo          []T
	fresh         bool
	sourceVersion uint64
	predicateGen  uint64
	gen           uint64
	version       uint64
}

func newFilteredList[T any](source domain.ReadOnlyList[T]) *FilteredList[T] {
	return &FilteredList[T]{source: source, predicate: ShowAll[T]}
}

// setPredicate swaps the predicate; the memo is dropped on the next read.
func (f *FilteredList[T]) setPredicate(p domain.Predicate[T]) {
	f.predicate = p
	f.gen++
}

func (f *FilteredList[T]) refresh() {
	if f.fresh && f.sourceVersion == f.source.Version() && f.predicateGen == f.gen {
		return
	}
	out := make([]T, 0, f.source.Len())
	for _, item := range f.source.All() {
		if f.predicate(item) {
			out = append(out, item)
		}
	}
	f.memo = out
	f.fresh = true
	f.sourceVersion = f.source.Version()
	f.predicateGen = f.gen
	f.version++
}

func (f *FilteredList[T]) Len() int {
	f.refresh()
	return len(f.memo)
}

// At returns the i-th matching element. It panics if i is out of range.
func (f *FilteredList[T]) At(i int) T {
	f.refresh()
	return f.memo[i]
}

func (f *FilteredList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		f.refresh()
		for i, item := range f.memo {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Slice returns a copy of the matching elements.
func (f *FilteredList[T]) Slice() []T {
	f.refresh()
	return slices.Clone(f.memo)
}

// Version changes each time the view is recomputed.
func (f *FilteredList[T]) Version() uint64 {
	f.refresh()
	return f.version
}

var _ domain.ReadOnlyList[domain.Contact] = (*FilteredList[domain.Contact])(nil)
