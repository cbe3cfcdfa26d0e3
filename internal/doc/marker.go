package doc

import (
	"fmt"
	"unicode/utf8"
)

// Marker is a contiguous inline run within a text block: either a text run
// carrying a markup set, or a soft line break atom (a break that stays
// within the block, distinct from a block split).
type Marker struct {
	// Text is the run's text. Empty for break markers.
	Text string

	// Markups is the set of inline markups active on this run.
	Markups Markup

	isBreak bool
}

// NewMarker creates a text run with the given markups.
func NewMarker(text string, markups Markup) *Marker {
	return &Marker{Text: text, Markups: markups}
}

// NewBreakMarker creates a soft line break atom.
func NewBreakMarker() *Marker {
	return &Marker{isBreak: true}
}

// IsBreak returns true if this marker is a soft line break.
func (m *Marker) IsBreak() bool {
	return m.isBreak
}

// Length returns the run's length in runes. A break counts 1.
func (m *Marker) Length() int {
	if m.isBreak {
		return 1
	}
	return utf8.RuneCountInString(m.Text)
}

// Clone returns a copy of the marker.
func (m *Marker) Clone() *Marker {
	c := *m
	return &c
}

// String returns a debug representation.
func (m *Marker) String() string {
	if m.isBreak {
		return "Marker(break)"
	}
	if m.Markups == MarkupNone {
		return fmt.Sprintf("Marker(%q)", m.Text)
	}
	return fmt.Sprintf("Marker(%q %s)", m.Text, m.Markups)
}
