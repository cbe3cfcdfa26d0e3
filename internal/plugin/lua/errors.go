package lua

import "errors"

var (
	// ErrStateClosed indicates use of a closed Lua state.
	ErrStateClosed = errors.New("lua: state closed")

	// ErrNoRegistry indicates a host created without a chord registry.
	ErrNoRegistry = errors.New("lua: nil registry")
)
