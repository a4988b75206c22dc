package arena

import "errors"

var (
	ErrCapacityExceeded = errors.New("the region cannot grow further")
	ErrOutOfRange       = errors.New("word offset at or beyond the high water mark")
	ErrWordSize         = errors.New("value size does not match the region word size")
	ErrWordBytesInvalid = errors.New("the word size is too small to hold a length value")
)
