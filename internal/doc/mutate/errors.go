package mutate

import "errors"

var (
	// ErrNoDocument indicates an executor constructed without a document.
	ErrNoDocument = errors.New("mutate: no document")

	// ErrEmptyBatch indicates Run was called with a batch that staged
	// nothing.
	ErrEmptyBatch = errors.New("mutate: empty batch")

	// ErrBadOp indicates an operation with missing or invalid arguments.
	ErrBadOp = errors.New("mutate: invalid operation")
)
