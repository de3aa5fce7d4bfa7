package twoway

import (
	"errors"
	"fmt"
	"iter"
)

// ErrIndexOutOfRange is returned when an index addresses a slot past the end
// of its run. Direct indexing never grows the list.
var ErrIndexOutOfRange = errors.New("twoway: index out of range")

// List is a sequence addressed by signed indices. Indices 0, 1, 2, ... live in
// the forward run and -1, -2, -3, ... live in the backward run. Each run grows
// and shrinks independently at its outer end.
//
// The zero value is an empty list ready to use.
type List[T any] struct {
	backward []T // backward[i] holds logical index -i-1
	forward  []T // forward[i] holds logical index i
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Count returns the number of items in both runs.
func (l *List[T]) Count() int { return len(l.backward) + len(l.forward) }

// ForwardCount returns the number of items at indices >= 0.
func (l *List[T]) ForwardCount() int { return len(l.forward) }

// BackwardCount returns the number of items at indices < 0.
func (l *List[T]) BackwardCount() int { return len(l.backward) }

// MinIndex is the most negative addressable index, or 0 when the backward run is empty.
func (l *List[T]) MinIndex() int { return -len(l.backward) }

// MaxIndex is the highest addressable index, or -1 when the forward run is empty.
func (l *List[T]) MaxIndex() int { return len(l.forward) - 1 }

// run returns the run addressed by index and the position inside it.
func (l *List[T]) run(index int) (*[]T, int) {
	if index < 0 {
		return &l.backward, -index - 1
	}
	return &l.forward, index
}

func toOuter(inner int, backward bool) int {
	if backward {
		return -(inner + 1)
	}
	return inner
}

// Get returns the item at index.
func (l *List[T]) Get(index int) (T, error) {
	v, ok := l.TryGet(index)
	if !ok {
		return v, fmt.Errorf("get %d (min %d, max %d): %w", index, l.MinIndex(), l.MaxIndex(), ErrIndexOutOfRange)
	}
	return v, nil
}

// Set replaces the item at index.
func (l *List[T]) Set(index int, value T) error {
	if !l.TrySet(index, value) {
		return fmt.Errorf("set %d (min %d, max %d): %w", index, l.MinIndex(), l.MaxIndex(), ErrIndexOutOfRange)
	}
	return nil
}

// TryGet returns the item at index and whether the index was in range.
func (l *List[T]) TryGet(index int) (T, bool) {
	items, inner := l.run(index)
	if inner >= len(*items) {
		var zero T
		return zero, false
	}
	return (*items)[inner], true
}

// TrySet replaces the item at index if it is in range.
func (l *List[T]) TrySet(index int, value T) bool {
	items, inner := l.run(index)
	if inner >= len(*items) {
		return false
	}
	(*items)[inner] = value
	return true
}

// Ptr returns a pointer to the slot at index, or nil when out of range.
// The pointer is invalidated by any operation that grows or shrinks that run.
func (l *List[T]) Ptr(index int) *T {
	items, inner := l.run(index)
	if inner >= len(*items) {
		return nil
	}
	return &(*items)[inner]
}

// IndexFunc returns the index of the first item satisfying match. The backward
// run is searched before the forward run.
func (l *List[T]) IndexFunc(match func(T) bool) (int, bool) {
	for i, v := range l.backward {
		if match(v) {
			return toOuter(i, true), true
		}
	}
	for i, v := range l.forward {
		if match(v) {
			return toOuter(i, false), true
		}
	}
	return 0, false
}

// Insert places value at index, shifting the items from index to the outer end
// of that run one position outward. Index 0 inserts into the forward run and
// -1 into the backward run; inserting at the run length appends.
func (l *List[T]) Insert(index int, value T) error {
	items, inner := l.run(index)
	if inner > len(*items) {
		return fmt.Errorf("insert %d (min %d, max %d): %w", index, l.MinIndex(), l.MaxIndex(), ErrIndexOutOfRange)
	}
	var zero T
	*items = append(*items, zero)
	copy((*items)[inner+1:], (*items)[inner:])
	(*items)[inner] = value
	return nil
}

// AddForward appends value at index MaxIndex()+1.
func (l *List[T]) AddForward(value T) { l.forward = append(l.forward, value) }

// AddBackward appends value at index MinIndex()-1.
func (l *List[T]) AddBackward(value T) { l.backward = append(l.backward, value) }

// RemoveForward pops the item at MaxIndex.
func (l *List[T]) RemoveForward() (T, bool) { return pop(&l.forward) }

// RemoveBackward pops the item at MinIndex.
func (l *List[T]) RemoveBackward() (T, bool) { return pop(&l.backward) }

func pop[T any](items *[]T) (T, bool) {
	var zero T
	n := len(*items)
	if n == 0 {
		return zero, false
	}
	v := (*items)[n-1]
	(*items)[n-1] = zero
	*items = (*items)[:n-1]
	return v, true
}

// RemoveAt removes and returns the item at index. Any index at or past the end
// of its run reports false.
func (l *List[T]) RemoveAt(index int) (T, bool) {
	items, inner := l.run(index)
	var zero T
	if inner >= len(*items) {
		return zero, false
	}
	v := (*items)[inner]
	last := len(*items) - 1
	copy((*items)[inner:], (*items)[inner+1:])
	(*items)[last] = zero
	*items = (*items)[:last]
	return v, true
}

// RemoveFunc removes the first item satisfying match, searching the backward
// run first. It reports whether an item was removed.
func (l *List[T]) RemoveFunc(match func(T) bool) bool {
	index, ok := l.IndexFunc(match)
	if !ok {
		return false
	}
	_, ok = l.RemoveAt(index)
	return ok
}

// Clear drops every item from both runs.
func (l *List[T]) Clear() {
	clear(l.backward)
	clear(l.forward)
	l.backward = l.backward[:0]
	l.forward = l.forward[:0]
}

// All yields index/value pairs in ascending index order, from MinIndex to MaxIndex.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(l.backward) - 1; i >= 0; i-- {
			if !yield(toOuter(i, true), l.backward[i]) {
				return
			}
		}
		for i, v := range l.forward {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values yields the items in ascending index order.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// IndexOf returns the index of value in l, searching the backward run first.
func IndexOf[T comparable](l *List[T], value T) (int, bool) {
	return l.IndexFunc(func(v T) bool { return v == value })
}

// Remove deletes the first occurrence of value, searching the backward run
// first, and reports whether it was found.
func Remove[T comparable](l *List[T], value T) bool {
	return l.RemoveFunc(func(v T) bool { return v == value })
}
