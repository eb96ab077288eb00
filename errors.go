package spath

import (
	"errors"
	"fmt"
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidPath     = errors.New("invalid path")
)

type wrapError struct {
	underlying error
	msg        string
	cause      error
}

var _ error = (*wrapError)(nil)

func newIndexOutOfRangeError(index, length int) error {
	return &wrapError{
		underlying: ErrIndexOutOfRange,
		msg:        fmt.Sprintf("index %d for path of length %d", index, length),
	}
}

func newInvalidPathError(msg string, cause error) error {
	return &wrapError{
		underlying: ErrInvalidPath,
		msg:        msg,
		cause:      cause,
	}
}

func (err *wrapError) Error() string {
	if err == nil {
		return "(*wrapError)(nil)"
	}
	message := err.underlying.Error() + ": " + err.msg
	if err.cause != nil {
		message += ": " + err.cause.Error()
	}
	return message
}

func (err *wrapError) Unwrap() []error {
	if err.cause == nil {
		return []error{err.underlying}
	}
	return []error{err.underlying, err.cause}
}
