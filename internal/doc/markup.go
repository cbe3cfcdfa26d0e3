package doc

import "strings"

// Markup is a set of inline markups carried by a text run.
// Individual markups are bits; combine with With/Without.
type Markup uint16

const (
	// MarkupNone indicates an unstyled run.
	MarkupNone Markup = 0

	// MarkupBold is strong emphasis.
	MarkupBold Markup = 1 << iota

	// MarkupItalic is emphasis.
	MarkupItalic

	// MarkupCode is inline code.
	MarkupCode

	// MarkupStrike is strikethrough.
	MarkupStrike

	// MarkupUnderline is underline.
	MarkupUnderline

	// MarkupLink is a hyperlink run.
	MarkupLink
)

// Has returns true if m contains the specified markup.
func (m Markup) Has(mk Markup) bool {
	return m&mk != 0
}

// With returns a new Markup set with mk added.
func (m Markup) With(mk Markup) Markup {
	return m | mk
}

// Without returns a new Markup set with mk removed.
func (m Markup) Without(mk Markup) Markup {
	return m &^ mk
}

// IsEmpty returns true if no markups are set.
func (m Markup) IsEmpty() bool {
	return m == MarkupNone
}

// String returns the markup names joined with "+" ("bold+code"), or "" for
// the empty set.
func (m Markup) String() string {
	if m == MarkupNone {
		return ""
	}

	var parts []string
	if m.Has(MarkupBold) {
		parts = append(parts, "bold")
	}
	if m.Has(MarkupItalic) {
		parts = append(parts, "italic")
	}
	if m.Has(MarkupCode) {
		parts = append(parts, "code")
	}
	if m.Has(MarkupStrike) {
		parts = append(parts, "strike")
	}
	if m.Has(MarkupUnderline) {
		parts = append(parts, "underline")
	}
	if m.Has(MarkupLink) {
		parts = append(parts, "link")
	}
	return strings.Join(parts, "+")
}

// markupNameMap maps markup names (lowercase) to single-bit Markup values.
var markupNameMap = map[string]Markup{
	"bold":      MarkupBold,
	"strong":    MarkupBold,
	"italic":    MarkupItalic,
	"em":        MarkupItalic,
	"code":      MarkupCode,
	"strike":    MarkupStrike,
	"del":       MarkupStrike,
	"underline": MarkupUnderline,
	"link":      MarkupLink,
}

// MarkupFromName returns the single-bit Markup for a given name
// (case-insensitive). Returns MarkupNone if the name is not recognized.
func MarkupFromName(name string) Markup {
	if m, ok := markupNameMap[strings.ToLower(strings.TrimSpace(name))]; ok {
		return m
	}
	return MarkupNone
}
