package errors

import "errors"

var (
	// ErrPointOutOfBoard and ErrIndexOutOfRange signal caller bugs: a
	// correct integration never passes a point outside the board or a
	// jump target beyond the move total.
	ErrPointOutOfBoard = errors.New("point out of board")
	ErrIndexOutOfRange = errors.New("move index out of range")

	// ErrCorruptRecord is the recoverable decode failure: truncated or
	// malformed input leaves the caller's prior state untouched.
	ErrCorruptRecord = errors.New("corrupt game record")
)
