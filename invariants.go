package vlvec

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "fmt"

// Check validates the storage invariants of the vector.
//
// This checker is intentionally strict and is meant to be called densely
// from tests after mutating operations.
func (v *Vec[T]) Check() error {
	if v == nil {
		return fmt.Errorf("%w: nil vector", ErrInvalidState)
	}
	if v.count < 0 {
		return fmt.Errorf("%w: negative count %d", ErrInvalidState, v.count)
	}
	if v.count > v.Capacity() {
		return fmt.Errorf("%w: count %d exceeds capacity %d", ErrInvalidState, v.count, v.Capacity())
	}
	switch v.mode {
	case modeInline:
		if v.heap != nil {
			return fmt.Errorf("%w: inline mode holds a heap buffer", ErrInvalidState)
		}
		if v.inline != nil && len(v.inline) != v.inlineCapacity() {
			return fmt.Errorf("%w: inline slab has %d slots, want %d",
				ErrInvalidState, len(v.inline), v.inlineCapacity())
		}
		if v.Capacity() != v.inlineCapacity() {
			return fmt.Errorf("%w: inline capacity %d differs from %d",
				ErrInvalidState, v.Capacity(), v.inlineCapacity())
		}
	case modeHeap:
		if v.heap == nil {
			return fmt.Errorf("%w: heap mode without heap buffer", ErrInvalidState)
		}
		if len(v.heap) <= v.inlineCapacity() {
			return fmt.Errorf("%w: heap capacity %d does not exceed inline capacity %d",
				ErrInvalidState, len(v.heap), v.inlineCapacity())
		}
	default:
		return fmt.Errorf("%w: unknown storage mode %d", ErrInvalidState, v.mode)
	}
	return nil
}
