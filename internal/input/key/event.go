package key

import (
	"fmt"
	"strings"
	"unicode"
)

// Event represents a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{Key: key, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune)
}

// IsModified returns true if any modifier is pressed.
// For character events, Shift alone is not considered modified
// (since Shift changes the character itself).
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers&(ModCtrl|ModAlt|ModMeta) != 0
	}
	return e.Modifiers != ModNone
}

// Chord returns the canonical chord descriptor for this event: modifiers in
// META, CTRL, ALT, SHIFT order joined with "+", then the base key name,
// all upper-case. Examples: "ENTER", "META+ENTER", "CTRL+K", "SHIFT+ENTER".
//
// For character events, Shift is folded into the rune (it already changed the
// character), so "K" and "SHIFT+K" produce the same chord unless another
// modifier is present.
func (e Event) Chord() string {
	var parts []string

	if e.Modifiers.HasMeta() {
		parts = append(parts, "META")
	}
	if e.Modifiers.HasCtrl() {
		parts = append(parts, "CTRL")
	}
	if e.Modifiers.HasAlt() {
		parts = append(parts, "ALT")
	}
	if e.Modifiers.HasShift() && !e.IsRune() {
		parts = append(parts, "SHIFT")
	}

	switch {
	case e.Key == KeyRune && e.Rune == ' ':
		parts = append(parts, "SPACE")
	case e.Key == KeyRune:
		parts = append(parts, strings.ToUpper(string(e.Rune)))
	default:
		parts = append(parts, e.Key.String())
	}

	return strings.Join(parts, "+")
}

// String returns the canonical chord descriptor.
func (e Event) String() string {
	return e.Chord()
}

// Equals returns true if two events represent the same key press.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key &&
		e.Rune == other.Rune &&
		e.Modifiers == other.Modifiers
}

// Matches checks if this event matches a chord specification string.
func (e Event) Matches(spec string) bool {
	chord, err := NormalizeChord(spec)
	if err != nil {
		return false
	}
	return e.Chord() == chord
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s}",
		e.Key.String(), e.Rune, e.Modifiers.String())
}
