package vlvec

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// EventKind classifies storage transitions of a Vec.
type EventKind uint8

const (
	// EventGrow signals a migration to a (larger) heap buffer.
	EventGrow EventKind = iota
	// EventShrink signals a migration from the heap buffer back to the inline slab.
	EventShrink
	// EventRelease signals a heap buffer release forced by Clear or reassignment.
	EventRelease
)

func (k EventKind) String() string {
	switch k {
	case EventGrow:
		return "grow"
	case EventShrink:
		return "shrink"
	case EventRelease:
		return "release"
	}
	return "unknown"
}

// Event describes a single storage transition.
type Event struct {
	Kind         EventKind
	FromCapacity int
	ToCapacity   int
	// Count is the number of live elements at the time of the transition.
	Count int
}

// SetTransitionHook installs a callback observing storage transitions. The
// hook is invoked synchronously from the mutating operation, on the caller's
// goroutine, after the transition has completed. A nil hook removes the
// callback.
//
// Package obs adapts the hook onto a broadcaster for multi-subscriber use.
func (v *Vec[T]) SetTransitionHook(hook func(Event)) {
	v.onTransition = hook
}

func (v *Vec[T]) notify(e Event) {
	if v.onTransition != nil {
		v.onTransition(e)
	}
}

// grow migrates the elements to a freshly allocated heap buffer sized by the
// 3/2 growth factor. required is the pending element count, including the
// elements about to be added, and must exceed the current capacity.
//
// Growth always reallocates; it never extends the current buffer in place.
// All previously obtained iterators are invalid afterwards.
func (v *Vec[T]) grow(required int) {
	assert(required > v.Capacity(), "grow called without capacity deficit")
	// Integer truncation is intentional; for small required counts this
	// under-allocates relative to a ceiling rounding.
	newCapacity := required * 3 / 2
	buf := make([]T, newCapacity)
	copy(buf, v.active()[:v.count])
	fromCapacity := v.Capacity()
	v.heap = buf
	v.mode = modeHeap
	tracer().Debugf("vlvec: grow %d -> %d slots (count=%d)", fromCapacity, newCapacity, v.count)
	v.notify(Event{
		Kind:         EventGrow,
		FromCapacity: fromCapacity,
		ToCapacity:   newCapacity,
		Count:        v.count,
	})
}

// shrinkCheck migrates the elements back into the inline slab if the vector
// is in heap mode and the count has dropped to the inline capacity or below.
// It is called after every removal.
//
// The policy is eager: removals straddling the inline boundary will allocate
// and release a heap buffer per push/pop cycle.
func (v *Vec[T]) shrinkCheck() {
	if v.mode != modeHeap || v.count > v.inlineCapacity() {
		return
	}
	copy(v.slab()[:v.count], v.heap[:v.count])
	fromCapacity := len(v.heap)
	v.heap = nil
	v.mode = modeInline
	tracer().Debugf("vlvec: shrink %d -> %d slots (count=%d)", fromCapacity, v.inlineCapacity(), v.count)
	v.notify(Event{
		Kind:         EventShrink,
		FromCapacity: fromCapacity,
		ToCapacity:   v.inlineCapacity(),
		Count:        v.count,
	})
}

// release drops the heap buffer unconditionally and returns to inline mode.
// Callers are responsible for the live elements; release does not copy.
func (v *Vec[T]) release(kind EventKind) {
	if v.mode != modeHeap {
		return
	}
	fromCapacity := len(v.heap)
	v.heap = nil
	v.mode = modeInline
	tracer().Debugf("vlvec: release heap buffer of %d slots", fromCapacity)
	v.notify(Event{
		Kind:         kind,
		FromCapacity: fromCapacity,
		ToCapacity:   v.inlineCapacity(),
		Count:        v.count,
	})
}
