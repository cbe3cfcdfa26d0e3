package config

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownMarkup indicates an expansion entry naming no known markup.
	ErrUnknownMarkup = errors.New("unknown markup")

	// ErrEmptyDelimiter indicates an expansion entry without a delimiter.
	ErrEmptyDelimiter = errors.New("empty delimiter")

	// ErrDuplicateMarkup indicates a markup listed twice in the table.
	ErrDuplicateMarkup = errors.New("duplicate markup")
)

// ParseError describes a TOML parse failure.
type ParseError struct {
	// Path is the source the config was read from.
	Path string

	// Err is the underlying parse error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing config %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
