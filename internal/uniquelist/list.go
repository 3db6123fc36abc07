package uniquelist

import (
	"iter"
	"slices"

	"travelbook/internal/domain/types"
)

// Entity is the contract an element type must meet to be stored in a List.
type Entity[T any] interface {
	// Same is the weak identity relation used for duplicate detection.
	Same(other T) bool
	// Equal is the strong, field-for-field relation used for lookup.
	Equal(other T) bool
	// IsZero reports an absent value.
	IsZero() bool
}

// List is an ordered sequence in which no two elements are Same.
//
// The zero List is empty and ready to use.
type List[T Entity[T]] struct {
	items   []T
	version uint64
}

// New returns an empty List.
func New[T Entity[T]]() *List[T] { return &List[T]{} }

// Contains reports whether an element that is the same as candidate is present.
func (l *List[T]) Contains(candidate T) bool {
	return slices.ContainsFunc(l.items, func(e T) bool { return e.Same(candidate) })
}

// Add appends item. It fails if an element that is the same as item is present.
func (l *List[T]) Add(item T) error {
	if item.IsZero() {
		return types.ErrInvalidArgument
	}
	if l.Contains(item) {
		return types.ErrDuplicateEntity
	}
	l.items = append(l.items, item)
	l.version++
	return nil
}

// Set replaces target with replacement, keeping its position.
// target must be present. replacement must not be the same as any other element.
func (l *List[T]) Set(target, replacement T) error {
	if target.IsZero() || replacement.IsZero() {
		return types.ErrInvalidArgument
	}
	idx := l.indexOf(target)
	if idx < 0 {
		return types.ErrEntityNotFound
	}
	if !target.Same(replacement) && l.Contains(replacement) {
		return types.ErrDuplicateEntity
	}
	l.items[idx] = replacement
	l.version++
	return nil
}

// Remove deletes the first element equal to item.
func (l *List[T]) Remove(item T) error {
	if item.IsZero() {
		return types.ErrInvalidArgument
	}
	idx := l.indexOf(item)
	if idx < 0 {
		return types.ErrEntityNotFound
	}
	l.items = slices.Delete(l.items, idx, idx+1)
	l.version++
	return nil
}

// SetAll replaces the whole contents with items, in order.
// items must not contain two elements that are the same; on failure nothing changes.
func (l *List[T]) SetAll(items []T) error {
	for _, item := range items {
		if item.IsZero() {
			return types.ErrInvalidArgument
		}
	}
	if !unique(items) {
		return types.ErrDuplicateEntity
	}
	// Publish a fresh backing slice so no caller-held slice aliases ours.
	l.items = slices.Clone(items)
	l.version++
	return nil
}

// View returns a live read-only view of the list.
func (l *List[T]) View() View[T] { return View[T]{list: l} }

// Equal reports whether both lists hold equal elements in the same order.
func (l *List[T]) Equal(other *List[T]) bool {
	if l == other {
		return true
	}
	if other == nil {
		return false
	}
	return slices.EqualFunc(l.items, other.items, func(a, b T) bool { return a.Equal(b) })
}

func (l *List[T]) indexOf(item T) int {
	return slices.IndexFunc(l.items, func(e T) bool { return e.Equal(item) })
}

// unique reports whether no two elements of items are the same.
func unique[T Entity[T]](items []T) bool {
	for i := 0; i < len(items)-1; i++ {
		for j := i + 1; j < len(items); j++ {
			if items[i].Same(items[j]) {
				return false
			}
		}
	}
	return true
}

// View is a read-only window onto a List. It always reflects the current contents.
type View[T Entity[T]] struct {
	list *List[T]
}

func (v View[T]) Len() int {
	if v.list == nil {
		return 0
	}
	return len(v.list.items)
}

// At returns the element at index i. It panics if i is out of range.
func (v View[T]) At(i int) T { return v.list.items[i] }

// All yields index/element pairs in list order.
func (v View[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if v.list == nil {
			return
		}
		for i, item := range v.list.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Slice returns a copy of the current contents.
func (v View[T]) Slice() []T {
	if v.list == nil {
		return nil
	}
	return slices.Clone(v.list.items)
}

// Version changes after every successful mutation of the list.
func (v View[T]) Version() uint64 {
	if v.list == nil {
		return 0
	}
	return v.list.version
}

var _ types.ReadOnlyList[types.Contact] = View[types.Contact]{}
