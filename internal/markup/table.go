// Package markup holds the special-markup table: the inline markups that
// are reachable via a typed textual shorthand, mapped to their delimiter
// text. The table is immutable once constructed; order matters, because
// backspace un-expansion checks entries in table order and reverses at
// most one per key press.
package markup

import "github.com/dshills/inkwell/internal/doc"

// Entry pairs a markup kind with its literal delimiter.
type Entry struct {
	Markup    doc.Markup
	Delimiter string
}

// Table is an ordered, immutable special-markup table.
type Table struct {
	entries []Entry
}

// Default returns the built-in table: inline code delimited by a backtick,
// strikethrough by a double tilde.
func Default() *Table {
	return New([]Entry{
		{Markup: doc.MarkupCode, Delimiter: "`"},
		{Markup: doc.MarkupStrike, Delimiter: "~~"},
	})
}

// New builds a table from entries, keeping their order. Entries with an
// empty delimiter or no markup are dropped.
func New(entries []Entry) *Table {
	t := &Table{entries: make([]Entry, 0, len(entries))}
	for _, e := range entries {
		if e.Markup == doc.MarkupNone || e.Delimiter == "" {
			continue
		}
		t.entries = append(t.entries, e)
	}
	return t
}

// Entries returns the table's entries in order. Callers must not mutate.
func (t *Table) Entries() []Entry { return t.entries }

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.entries) }

// Lookup returns the delimiter for a markup kind.
func (t *Table) Lookup(m doc.Markup) (string, bool) {
	for _, e := range t.entries {
		if e.Markup == m {
			return e.Delimiter, true
		}
	}
	return "", false
}
