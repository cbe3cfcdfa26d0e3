package doc

import "fmt"

// Text-run primitives. These mutate the block's markers directly and are
// intended to be driven by the mutate package, which provides atomicity;
// nothing here touches block structure outside the receiver.

// RunAt returns the marker containing the given offset (start <= offset <
// end) along with its start and end offsets. Returns nil if the offset is
// at or beyond the block's length.
func (b *Block) RunAt(offset int) (m *Marker, start, end int) {
	cum := 0
	for _, mk := range b.markers {
		next := cum + mk.Length()
		if offset >= cum && offset < next {
			return mk, cum, next
		}
		cum = next
	}
	return nil, 0, 0
}

// RunEndingAt returns the text run whose trailing edge is exactly at the
// given offset, along with its start offset. Returns nil if no run ends
// there or the run is a break atom. This is the boundary test for special
// markup un-expansion: the cursor sits just past the run, not inside it.
func (b *Block) RunEndingAt(offset int) (*Marker, int) {
	if offset <= 0 {
		return nil, 0
	}
	cum := 0
	for _, mk := range b.markers {
		next := cum + mk.Length()
		if next == offset {
			if mk.IsBreak() {
				return nil, 0
			}
			return mk, cum
		}
		cum = next
	}
	return nil, 0
}

// RunRange returns the [start, end) offsets of a marker within the block.
func (b *Block) RunRange(target *Marker) (start, end int, ok bool) {
	cum := 0
	for _, mk := range b.markers {
		next := cum + mk.Length()
		if mk == target {
			return cum, next, true
		}
		cum = next
	}
	return 0, 0, false
}

// InsertText inserts text at a rune offset. The inserted text inherits the
// markups of the run containing the offset (the run to the left at a run
// boundary).
func (b *Block) InsertText(offset int, text string) error {
	if !b.IsText() {
		return ErrNotText
	}
	if offset < 0 || offset > b.Length() {
		return fmt.Errorf("%w: %d of %d", ErrOffsetRange, offset, b.Length())
	}
	if text == "" {
		return nil
	}

	if len(b.markers) == 0 {
		b.markers = []*Marker{NewMarker(text, MarkupNone)}
		return nil
	}

	cum := 0
	for _, mk := range b.markers {
		next := cum + mk.Length()
		// Insert inside a text run, or at its trailing edge.
		if !mk.IsBreak() && offset > cum && offset <= next {
			r := []rune(mk.Text)
			k := offset - cum
			mk.Text = string(r[:k]) + text + string(r[k:])
			return nil
		}
		cum = next
	}

	// Offset 0, or a boundary whose left neighbour is a break: start a new
	// run with the markups of the run to the right, if any.
	i := b.splitAt(offset)
	markups := MarkupNone
	if i < len(b.markers) && !b.markers[i].IsBreak() {
		markups = b.markers[i].Markups
	}
	b.insertMarkerAt(i, NewMarker(text, markups))
	b.normalize()
	return nil
}

// DeleteText removes n runes starting at offset.
func (b *Block) DeleteText(offset, n int) error {
	if !b.IsText() {
		return ErrNotText
	}
	if n < 0 || offset < 0 || offset+n > b.Length() {
		return fmt.Errorf("%w: [%d,%d) of %d", ErrOffsetRange, offset, offset+n, b.Length())
	}
	if n == 0 {
		return nil
	}

	i := b.splitAt(offset)
	j := b.splitAt(offset + n)
	b.markers = append(b.markers[:i], b.markers[j:]...)
	b.normalize()
	return nil
}

// ApplyMarkup sets a markup over [start, end). Break atoms are skipped.
func (b *Block) ApplyMarkup(start, end int, m Markup) error {
	return b.setMarkup(start, end, m, true)
}

// RemoveMarkup clears a markup over [start, end). Break atoms are skipped.
func (b *Block) RemoveMarkup(start, end int, m Markup) error {
	return b.setMarkup(start, end, m, false)
}

func (b *Block) setMarkup(start, end int, m Markup, on bool) error {
	if !b.IsText() {
		return ErrNotText
	}
	if start < 0 || end < start || end > b.Length() {
		return fmt.Errorf("%w: [%d,%d) of %d", ErrOffsetRange, start, end, b.Length())
	}
	if start == end {
		return nil
	}

	i := b.splitAt(start)
	j := b.splitAt(end)
	for _, mk := range b.markers[i:j] {
		if mk.IsBreak() {
			continue
		}
		if on {
			mk.Markups = mk.Markups.With(m)
		} else {
			mk.Markups = mk.Markups.Without(m)
		}
	}
	b.normalize()
	return nil
}

// InsertBreak inserts a soft line break atom at the given offset.
func (b *Block) InsertBreak(offset int) error {
	if !b.IsText() {
		return ErrNotText
	}
	if offset < 0 || offset > b.Length() {
		return fmt.Errorf("%w: %d of %d", ErrOffsetRange, offset, b.Length())
	}

	i := b.splitAt(offset)
	b.insertMarkerAt(i, NewBreakMarker())
	return nil
}

// AppendFrom appends clones of another text block's markers, preserving
// their markups. Used for default block merges.
func (b *Block) AppendFrom(src *Block) error {
	if !b.IsText() || src == nil || !src.IsText() {
		return ErrNotText
	}
	for _, mk := range src.markers {
		b.markers = append(b.markers, mk.Clone())
	}
	b.normalize()
	return nil
}

// MoveTail moves everything from offset onward into dst, which must be an
// empty text block. Used for default block splits.
func (b *Block) MoveTail(offset int, dst *Block) error {
	if !b.IsText() || dst == nil || !dst.IsText() {
		return ErrNotText
	}
	if len(dst.markers) != 0 {
		return fmt.Errorf("%w: split destination not empty", ErrBadSplit)
	}
	if offset < 0 || offset > b.Length() {
		return fmt.Errorf("%w: %d of %d", ErrOffsetRange, offset, b.Length())
	}

	i := b.splitAt(offset)
	dst.markers = append(dst.markers, b.markers[i:]...)
	b.markers = b.markers[:i]
	b.normalize()
	dst.normalize()
	return nil
}

// splitAt ensures a marker boundary at the given rune offset and returns
// the index of the marker beginning there. offset == Length returns
// len(markers).
func (b *Block) splitAt(offset int) int {
	cum := 0
	for i, mk := range b.markers {
		if offset == cum {
			return i
		}
		next := cum + mk.Length()
		if offset < next {
			// Inside a text run (breaks have length 1 and can only be hit
			// at their boundaries).
			r := []rune(mk.Text)
			k := offset - cum
			right := NewMarker(string(r[k:]), mk.Markups)
			mk.Text = string(r[:k])
			b.insertMarkerAt(i+1, right)
			return i + 1
		}
		cum = next
	}
	return len(b.markers)
}

func (b *Block) insertMarkerAt(i int, m *Marker) {
	b.markers = append(b.markers, nil)
	copy(b.markers[i+1:], b.markers[i:])
	b.markers[i] = m
}

// normalize drops empty text runs and merges adjacent runs with identical
// markup sets.
func (b *Block) normalize() {
	out := b.markers[:0]
	for _, mk := range b.markers {
		if !mk.IsBreak() && mk.Text == "" {
			continue
		}
		if len(out) > 0 {
			last := out[len(out)-1]
			if !last.IsBreak() && !mk.IsBreak() && last.Markups == mk.Markups {
				last.Text += mk.Text
				continue
			}
		}
		out = append(out, mk)
	}
	b.markers = out
}
