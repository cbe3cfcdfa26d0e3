// Package command is the key-command engine: an ordered registry of chord
// handlers and the dispatcher that routes normalized key events to them.
//
// Each handler reads the current range and document, optionally issues an
// atomic mutation batch, a cursor placement, a card selection transition,
// or a notification, and returns Handled — or returns NotHandled to defer
// to the host's default text-editing behavior. All branching is
// precondition-guarded: on any missing or unexpected model state a handler
// declines rather than mutating.
//
// Dispatch is serialized; one key event is processed to completion before
// the next is accepted.
package command
