package command

import "fmt"

// Status indicates the outcome of handling a key event.
type Status uint8

const (
	// StatusNotHandled means the handler declined; the host applies its
	// default text-editing behavior.
	StatusNotHandled Status = iota

	// StatusHandled means the event was consumed.
	StatusHandled

	// StatusError means a mutation batch failed. The event counts as
	// consumed; the document was restored to its pre-batch state.
	StatusError
)

// String returns a string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusNotHandled:
		return "not-handled"
	case StatusHandled:
		return "handled"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is the outcome of a dispatch.
type Result struct {
	// Status indicates the result status.
	Status Status

	// Error contains the batch error for StatusError.
	Error error

	// ScrollIntoView requests that the host scroll the cursor into view.
	ScrollIntoView bool
}

// IsHandled returns true if the event was consumed (including errors).
func (r Result) IsHandled() bool {
	return r.Status != StatusNotHandled
}

// NotHandled creates the fall-through sentinel result.
func NotHandled() Result {
	return Result{Status: StatusNotHandled}
}

// Handled creates a consumed result.
func Handled() Result {
	return Result{Status: StatusHandled}
}

// Error creates an error result.
func Error(err error) Result {
	return Result{Status: StatusError, Error: err}
}

// Errorf creates an error result with a formatted message.
func Errorf(format string, args ...any) Result {
	return Result{Status: StatusError, Error: fmt.Errorf(format, args...)}
}

// WithScroll returns a copy of the result requesting a scroll.
func (r Result) WithScroll() Result {
	r.ScrollIntoView = true
	return r
}
