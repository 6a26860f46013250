package rx

import "errors"

var (
	// ErrDisposed is delivered to subscribers of a subject that has been disposed.
	ErrDisposed = errors.New("rx: object was already disposed")

	// ErrNilSource is delivered when an operator receives a nil source.
	ErrNilSource = errors.New("rx: nil source")
)
