package vlvec

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Push appends value to the end of the vector, growing the storage if the
// vector is at capacity. Amortized O(1).
func (v *Vec[T]) Push(value T) {
	if v.count == v.Capacity() {
		v.grow(v.count + 1)
	}
	v.active()[v.count] = value
	v.count++
}

// Pop removes the last element, migrating back to inline storage if the
// count drops to the inline capacity. The vector must not be empty.
//
// The vacated slot keeps its previous value until it is overwritten or the
// buffer is released; for pointerful element types this defers garbage
// collection of the removed element.
func (v *Vec[T]) Pop() {
	assert(v.count > 0, "Pop called on empty vector")
	v.count--
	v.shrinkCheck()
}

// Insert inserts value before pos and returns an iterator referring to the
// newly inserted element. pos must be a valid position in this vector.
func (v *Vec[T]) Insert(pos ConstIter[T], value T) Iter[T] {
	offset := pos.at
	if v.count == v.Capacity() {
		v.grow(v.count + 1)
	}
	buf := v.active()
	for i := v.count; i > offset; i-- {
		buf[i] = buf[i-1]
	}
	buf[offset] = value
	v.count++
	return Iter[T]{position[T]{buf: buf, at: offset}}
}

// InsertRange inserts copies of the elements in [first, last) before pos and
// returns an iterator referring to the first newly inserted element. The
// source range must not alias this vector's storage.
func (v *Vec[T]) InsertRange(pos, first, last ConstIter[T]) Iter[T] {
	return v.InsertSlice(pos, first.buf[first.at:last.at])
}

// InsertSlice inserts copies of values before pos and returns an iterator
// referring to the first newly inserted element. values must not alias this
// vector's storage.
//
// Growth may relocate the buffer mid-operation, so the elements at or after
// the insertion point are saved aside before capacity is ensured and written
// back after the new elements.
func (v *Vec[T]) InsertSlice(pos ConstIter[T], values []T) Iter[T] {
	offset := pos.at
	tail := make([]T, v.count-offset)
	copy(tail, v.active()[offset:v.count])
	required := v.count + len(values)
	if required > v.Capacity() {
		v.grow(required)
	}
	buf := v.active()
	copy(buf[offset:], values)
	copy(buf[offset+len(values):], tail)
	v.count = required
	return Iter[T]{position[T]{buf: buf, at: offset}}
}

// Erase removes the element at pos, migrating back to inline storage if the
// count drops to the inline capacity. It returns an iterator referring to
// the element that now occupies the erased slot, or to the end if the last
// element was erased. pos must be a valid element position in this vector.
func (v *Vec[T]) Erase(pos ConstIter[T]) Iter[T] {
	offset := pos.at
	buf := v.active()
	copy(buf[offset:], buf[offset+1:v.count])
	v.count--
	v.shrinkCheck()
	return Iter[T]{position[T]{buf: v.active(), at: offset}}
}

// EraseRange removes the elements in [first, last), migrating back to inline
// storage if the count drops to the inline capacity. It returns an iterator
// at the start of the shifted block. Both positions must be valid in this
// vector with first not after last.
func (v *Vec[T]) EraseRange(first, last ConstIter[T]) Iter[T] {
	buf := v.active()
	copy(buf[first.at:], buf[last.at:v.count])
	v.count -= last.at - first.at
	v.shrinkCheck()
	return Iter[T]{position[T]{buf: v.active(), at: first.at}}
}

// Clear removes all elements and unconditionally returns to inline storage,
// releasing the heap buffer if one is held. This is a stronger reset than
// the shrink policy applied after removals.
func (v *Vec[T]) Clear() {
	v.count = 0
	v.release(EventRelease)
}

// CopyFrom makes the vector an independent deep copy of src: the capacity is
// set to match src's capacity up front, then all source elements are copied
// in order. Copying a vector onto itself is a no-op. CopyFrom returns v.
func (v *Vec[T]) CopyFrom(src *Vec[T]) *Vec[T] {
	if v == src {
		return v
	}
	v.count = 0
	v.release(EventRelease)
	if src.Capacity() > v.inlineCapacity() {
		v.heap = make([]T, src.Capacity())
		v.mode = modeHeap
		v.notify(Event{
			Kind:         EventGrow,
			FromCapacity: v.inlineCapacity(),
			ToCapacity:   len(v.heap),
			Count:        0,
		})
	}
	v.InsertSlice(v.CBegin(), src.Data())
	return v
}

// Clone returns an independent deep copy of the vector, with the same inline
// capacity.
func (v *Vec[T]) Clone() *Vec[T] {
	clone := &Vec[T]{inlineCap: v.inlineCapacity()}
	return clone.CopyFrom(v)
}

// EqualFunc reports whether both vectors hold the same number of elements
// and all corresponding elements compare equal under eq, in order.
func (v *Vec[T]) EqualFunc(other *Vec[T], eq func(left, right T) bool) bool {
	if v.count != other.count {
		return false
	}
	left, right := v.Data(), other.Data()
	for i := range left {
		if !eq(left[i], right[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether both vectors hold the same elements in the same
// order, compared with ==.
func Equal[T comparable](left, right *Vec[T]) bool {
	return left.EqualFunc(right, func(a, b T) bool { return a == b })
}
