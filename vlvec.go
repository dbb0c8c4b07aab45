package vlvec

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"strings"
)

// DefaultInlineCapacity is the inline slot count used when a Vec is created
// without an explicit capacity.
const DefaultInlineCapacity = 16

// storageMode discriminates the two storage representations of a Vec.
type storageMode uint8

const (
	modeInline storageMode = iota
	modeHeap
)

// Vec is a virtual-length vector: a sequence container holding up to
// inlineCap elements in a fixed inline slab, migrating to a heap buffer when
// the count exceeds the inline capacity and back when it drops to the inline
// capacity or below.
//
// A vector created by
//
//	Vec[int]{}
//
// is a valid object and behaves like an empty vector with the default inline
// capacity. The inline slab is allocated lazily on first use and then reused
// for the vector's whole lifetime; while the vector stays inline, no
// operation allocates.
//
// Vecs are not safe for concurrent use.
type Vec[T any] struct {
	mode  storageMode
	count int
	// inlineCap is the fixed inline slot count N; 0 means "not configured yet"
	// and reads as DefaultInlineCapacity.
	inlineCap int
	// inline is the fixed backing slab for inline mode and must satisfy:
	// len(inline) == inlineCap, allocated at most once.
	inline []T
	// heap is the active storage while mode == modeHeap and must satisfy:
	// len(heap) == capacity > inlineCap; nil otherwise.
	heap []T
	// onTransition, if set, observes storage transitions (see SetTransitionHook).
	onTransition func(Event)
}

// New creates an empty vector with the default inline capacity.
func New[T any]() *Vec[T] {
	return &Vec[T]{inlineCap: DefaultInlineCapacity}
}

// NewWithCapacity creates an empty vector with an inline capacity of n slots.
// The inline capacity is fixed for the vector's lifetime.
func NewWithCapacity[T any](n int) (*Vec[T], error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, n)
	}
	return &Vec[T]{inlineCap: n}, nil
}

// FromSlice creates a vector with the default inline capacity, holding copies
// of the given values in order.
func FromSlice[T any](values []T) *Vec[T] {
	v := New[T]()
	for _, value := range values {
		v.Push(value)
	}
	return v
}

// FromRange creates a vector with the default inline capacity, holding copies
// of the elements in [first, last), in order. Both positions must stem from
// the same container snapshot.
func FromRange[T any](first, last ConstIter[T]) *Vec[T] {
	v := New[T]()
	for it := first; !it.Equal(last); it = it.Plus(1) {
		v.Push(it.Item())
	}
	return v
}

// inlineCapacity returns the effective inline capacity N.
func (v *Vec[T]) inlineCapacity() int {
	if v.inlineCap == 0 {
		return DefaultInlineCapacity
	}
	return v.inlineCap
}

// slab returns the inline backing slab, allocating it on first use.
func (v *Vec[T]) slab() []T {
	if v.inline == nil {
		v.inline = make([]T, v.inlineCapacity())
	}
	return v.inline
}

// active returns the currently live buffer, sized to the full capacity.
//
// The returned slice must not be cached across any operation that may change
// the storage mode: growth and shrink relocate the elements.
func (v *Vec[T]) active() []T {
	if v.mode == modeHeap {
		return v.heap
	}
	return v.slab()
}

// Len returns the current number of elements.
func (v *Vec[T]) Len() int {
	return v.count
}

// Capacity returns the number of slots the vector can hold before it has to
// grow. While the vector is inline this is exactly the inline capacity.
func (v *Vec[T]) Capacity() int {
	if v.mode == modeHeap {
		return len(v.heap)
	}
	return v.inlineCapacity()
}

// IsEmpty reports whether the vector has no elements.
func (v *Vec[T]) IsEmpty() bool {
	return v.count == 0
}

// IsInline reports whether the elements currently live in the inline slab
// (as opposed to a heap-allocated buffer).
func (v *Vec[T]) IsInline() bool {
	return v.mode == modeInline
}

// At returns the element at index i, or ErrIndexOutOfBounds if i is not a
// valid element index.
func (v *Vec[T]) At(i int) (T, error) {
	if i < 0 || i >= v.count {
		var none T
		return none, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfBounds, i, v.count)
	}
	return v.active()[i], nil
}

// Ref returns a writable reference to the element at index i, or
// ErrIndexOutOfBounds if i is not a valid element index.
//
// The reference follows the iterator invalidation rule: it must not be used
// across any operation that may change the storage mode.
func (v *Vec[T]) Ref(i int) (*T, error) {
	if i < 0 || i >= v.count {
		return nil, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfBounds, i, v.count)
	}
	return &v.active()[i], nil
}

// Get returns the element at index i without bounds checking against the
// element count. Callers are responsible for i being a valid element index.
func (v *Vec[T]) Get(i int) T {
	return v.active()[i]
}

// Set overwrites the element at index i without bounds checking against the
// element count. Callers are responsible for i being a valid element index.
func (v *Vec[T]) Set(i int, value T) {
	v.active()[i] = value
}

// Data returns a view of the live elements, backed by the currently active
// buffer. The view follows the iterator invalidation rule.
func (v *Vec[T]) Data() []T {
	return v.active()[:v.count]
}

// String returns a debug representation of the vector's contents. This may be
// an expensive operation for element types with costly formatting.
func (v *Vec[T]) String() string {
	var bf strings.Builder
	bf.WriteByte('[')
	for i, value := range v.Data() {
		if i > 0 {
			bf.WriteByte(' ')
		}
		fmt.Fprintf(&bf, "%v", value)
	}
	bf.WriteByte(']')
	return bf.String()
}
