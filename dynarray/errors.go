package dynarray

import "errors"

var (
	ErrEmptyArray       = errors.New("pop from an empty array")
	ErrIndexOutOfBounds = errors.New("array index out of bounds")
	ErrHandleInvalid    = errors.New("the handle does not reference a valid length word")
)
