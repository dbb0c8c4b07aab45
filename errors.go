package vlvec

import "errors"

var (
	// ErrIndexOutOfBounds signals a checked access with an index not less than
	// the current element count.
	ErrIndexOutOfBounds = errors.New("vlvec: index out of bounds")
	// ErrInvalidCapacity signals an inline capacity below 1.
	ErrInvalidCapacity = errors.New("vlvec: invalid inline capacity")
	// ErrInvalidState signals a violated storage invariant, reported by Check.
	ErrInvalidState = errors.New("vlvec: invalid container state")
)
