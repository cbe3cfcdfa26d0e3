// Package card tracks the selection state of embedded card blocks.
//
// At most one card holds selected or editing state at a time. The Selection
// is the single writer of that state; handlers only read it and request
// transitions. Valid transitions: none -> selected -> editing, and any
// state -> none via Deselect.
package card

import (
	"errors"
	"fmt"

	"github.com/dshills/inkwell/internal/doc"
)

var (
	// ErrNotCard indicates a transition request on a non-card block.
	ErrNotCard = errors.New("card: block is not a card")

	// ErrNoSelection indicates an edit request with no card selected.
	ErrNoSelection = errors.New("card: no card selected")
)

// State is a card's selection state.
type State uint8

const (
	// StateNone means no card is selected.
	StateNone State = iota

	// StateSelected means a card is highlighted but not in edit mode.
	StateSelected

	// StateEditing means a card is in edit mode.
	StateEditing
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateNone:
		return "none"
	case StateSelected:
		return "selected"
	case StateEditing:
		return "editing"
	default:
		return "unknown"
	}
}

// Selection is the process-wide card selection cell.
// The engine dispatches one handler at a time, so Selection carries no lock.
type Selection struct {
	state State
	block *doc.Block
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{}
}

// State returns the current selection state.
func (s *Selection) State() State { return s.state }

// Selected returns the card holding selected or editing state, nil if none.
func (s *Selection) Selected() *doc.Block { return s.block }

// IsEditing returns true if a card is in edit mode.
func (s *Selection) IsEditing() bool { return s.state == StateEditing }

// Select highlights a card, replacing any previous selection.
func (s *Selection) Select(b *doc.Block) error {
	if b == nil || b.Kind() != doc.KindCard {
		return fmt.Errorf("%w: %v", ErrNotCard, b)
	}
	s.state = StateSelected
	s.block = b
	return nil
}

// Edit puts a card into edit mode, selecting it first if needed.
func (s *Selection) Edit(b *doc.Block) error {
	if b == nil || b.Kind() != doc.KindCard {
		return fmt.Errorf("%w: %v", ErrNotCard, b)
	}
	s.state = StateEditing
	s.block = b
	return nil
}

// EditSelected puts the currently selected card into edit mode.
func (s *Selection) EditSelected() error {
	if s.block == nil {
		return ErrNoSelection
	}
	s.state = StateEditing
	return nil
}

// Deselect clears the selection.
func (s *Selection) Deselect() {
	s.state = StateNone
	s.block = nil
}

// CardFromBlock returns the block if it is a card, nil otherwise.
func CardFromBlock(b *doc.Block) *doc.Block {
	if b == nil || b.Kind() != doc.KindCard {
		return nil
	}
	return b
}
