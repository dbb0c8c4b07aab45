package vlvec

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "iter"

// position is the random-access core shared by Iter and ConstIter. It tracks
// an index into a snapshot of the active buffer.
//
// Positions originating from different buffer snapshots of the same vector,
// or from different vectors, are not comparable; the comparison and distance
// operations assume a shared buffer and do not check for one.
type position[T any] struct {
	buf []T
	at  int
}

func (p position[T]) item() T { return p.buf[p.at] }
func (p position[T]) ref() *T { return &p.buf[p.at] }
func (p position[T]) shifted(n int) position[T] {
	p.at += n
	return p
}

// Index returns the element index the position refers to.
func (p position[T]) Index() int { return p.at }

// Iter is a mutable random-access position into a vector. The zero value is
// not useful; obtain iterators through Begin, End, or mutating operations.
//
// Any operation that can change the vector's storage mode (growth or shrink)
// invalidates all previously obtained iterators; operations that shift
// elements within the same buffer invalidate iterators at or after the
// mutation point. Callers should treat every insert and erase as invalidating
// all iterators.
type Iter[T any] struct {
	position[T]
}

// ConstIter is a read-only random-access position into a vector. It follows
// the same invalidation rules as Iter.
type ConstIter[T any] struct {
	position[T]
}

// --- Mutable iterator ------------------------------------------------------

// Item returns the referenced element.
func (it Iter[T]) Item() T { return it.item() }

// Ref returns a writable reference to the referenced element.
func (it Iter[T]) Ref() *T { return it.ref() }

// Set overwrites the referenced element.
func (it Iter[T]) Set(value T) { *it.ref() = value }

// Const converts the iterator into its read-only counterpart. There is no
// conversion in the other direction.
func (it Iter[T]) Const() ConstIter[T] {
	return ConstIter[T]{it.position}
}

// Equal reports whether both iterators refer to the same position.
func (it Iter[T]) Equal(other Iter[T]) bool { return it.at == other.at }

// Before reports whether the iterator's position precedes other's.
func (it Iter[T]) Before(other Iter[T]) bool { return it.at < other.at }

// After reports whether the iterator's position succeeds other's.
func (it Iter[T]) After(other Iter[T]) bool { return it.at > other.at }

// AtOrBefore reports it.Before(other) || it.Equal(other).
func (it Iter[T]) AtOrBefore(other Iter[T]) bool { return it.at <= other.at }

// AtOrAfter reports it.After(other) || it.Equal(other).
func (it Iter[T]) AtOrAfter(other Iter[T]) bool { return it.at >= other.at }

// Plus returns a new iterator moved n positions forward.
func (it Iter[T]) Plus(n int) Iter[T] { return Iter[T]{it.shifted(n)} }

// Minus returns a new iterator moved n positions backward.
func (it Iter[T]) Minus(n int) Iter[T] { return Iter[T]{it.shifted(-n)} }

// Advance moves the iterator n positions forward in place; n may be negative.
func (it *Iter[T]) Advance(n int) { it.at += n }

// Next moves the iterator one position forward in place.
func (it *Iter[T]) Next() { it.at++ }

// Prev moves the iterator one position backward in place.
func (it *Iter[T]) Prev() { it.at-- }

// Distance returns the signed number of positions from other to it.
func (it Iter[T]) Distance(other Iter[T]) int { return it.at - other.at }

// --- Read-only iterator ----------------------------------------------------

// Item returns the referenced element.
func (it ConstIter[T]) Item() T { return it.item() }

// Equal reports whether both iterators refer to the same position.
func (it ConstIter[T]) Equal(other ConstIter[T]) bool { return it.at == other.at }

// Before reports whether the iterator's position precedes other's.
func (it ConstIter[T]) Before(other ConstIter[T]) bool { return it.at < other.at }

// After reports whether the iterator's position succeeds other's.
func (it ConstIter[T]) After(other ConstIter[T]) bool { return it.at > other.at }

// AtOrBefore reports it.Before(other) || it.Equal(other).
func (it ConstIter[T]) AtOrBefore(other ConstIter[T]) bool { return it.at <= other.at }

// AtOrAfter reports it.After(other) || it.Equal(other).
func (it ConstIter[T]) AtOrAfter(other ConstIter[T]) bool { return it.at >= other.at }

// Plus returns a new iterator moved n positions forward.
func (it ConstIter[T]) Plus(n int) ConstIter[T] { return ConstIter[T]{it.shifted(n)} }

// Minus returns a new iterator moved n positions backward.
func (it ConstIter[T]) Minus(n int) ConstIter[T] { return ConstIter[T]{it.shifted(-n)} }

// Advance moves the iterator n positions forward in place; n may be negative.
func (it *ConstIter[T]) Advance(n int) { it.at += n }

// Next moves the iterator one position forward in place.
func (it *ConstIter[T]) Next() { it.at++ }

// Prev moves the iterator one position backward in place.
func (it *ConstIter[T]) Prev() { it.at-- }

// Distance returns the signed number of positions from other to it.
func (it ConstIter[T]) Distance(other ConstIter[T]) int { return it.at - other.at }

// --- Iterator factories ----------------------------------------------------

// Begin returns a mutable iterator at the first element.
func (v *Vec[T]) Begin() Iter[T] {
	return Iter[T]{position[T]{buf: v.active(), at: 0}}
}

// End returns a mutable iterator one past the last element. It must not be
// dereferenced.
func (v *Vec[T]) End() Iter[T] {
	return Iter[T]{position[T]{buf: v.active(), at: v.count}}
}

// CBegin returns a read-only iterator at the first element.
func (v *Vec[T]) CBegin() ConstIter[T] {
	return ConstIter[T]{position[T]{buf: v.active(), at: 0}}
}

// CEnd returns a read-only iterator one past the last element. It must not be
// dereferenced.
func (v *Vec[T]) CEnd() ConstIter[T] {
	return ConstIter[T]{position[T]{buf: v.active(), at: v.count}}
}

// All returns an index/element sequence over the current contents, for use
// with range-over-func. The vector must not be mutated during iteration.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, value := range v.Data() {
			if !yield(i, value) {
				return
			}
		}
	}
}

// Values returns an element sequence over the current contents, for use with
// range-over-func. The vector must not be mutated during iteration.
func (v *Vec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.Data() {
			if !yield(value) {
				return
			}
		}
	}
}
