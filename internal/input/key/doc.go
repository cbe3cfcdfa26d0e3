// Package key defines keyboard keys, modifiers, and key events, plus
// parsing of chord descriptors like "META+ENTER" or "<C-k>".
//
// A chord is the canonical string form of a key event: modifier names in a
// fixed order (META, CTRL, ALT, SHIFT) joined with "+", followed by the base
// key name, all upper-case. Chords are the lookup keys of the command
// registry, so every accepted spelling normalizes to exactly one chord.
package key
