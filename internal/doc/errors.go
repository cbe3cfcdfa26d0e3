package doc

import "errors"

var (
	// ErrNotText indicates a text operation on a card or list container.
	ErrNotText = errors.New("doc: block does not support inline text")

	// ErrOffsetRange indicates an offset outside [0, block.Length()].
	ErrOffsetRange = errors.New("doc: offset out of range")

	// ErrDetached indicates an operation on a block with no parent collection.
	ErrDetached = errors.New("doc: block is not in a collection")

	// ErrNotFound indicates a block that is not in the document.
	ErrNotFound = errors.New("doc: block not found")

	// ErrBadSplit indicates a block split into a non-empty destination.
	ErrBadSplit = errors.New("doc: bad split")
)
