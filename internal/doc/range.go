package doc

import "fmt"

// Position is a location in the document: a block and a rune offset within
// it. Offsets on card blocks are always 0.
type Position struct {
	Block  *Block
	Offset int
}

// NewPosition creates a position.
func NewPosition(b *Block, offset int) Position {
	return Position{Block: b, Offset: offset}
}

// TailOf returns the position at the end of a block's text.
func TailOf(b *Block) Position {
	return Position{Block: b, Offset: b.Length()}
}

// HeadOf returns the position at the start of a block.
func HeadOf(b *Block) Position {
	return Position{Block: b}
}

// IsValid returns true if the position references a live (attached) block
// with an in-range offset.
func (p Position) IsValid() bool {
	return p.Block != nil && p.Block.parent != nil &&
		p.Offset >= 0 && p.Offset <= p.Block.Length()
}

// String returns a debug representation.
func (p Position) String() string {
	if p.Block == nil {
		return "Position(nil)"
	}
	return fmt.Sprintf("Position(%s@%d)", p.Block.Kind(), p.Offset)
}

// Range is a selection: head and tail positions. Head == tail is a caret
// (collapsed range), not a selection.
type Range struct {
	Head Position
	Tail Position
}

// Collapsed returns a caret range at the given position.
func Collapsed(p Position) Range {
	return Range{Head: p, Tail: p}
}

// NewRange creates a range between two positions.
func NewRange(head, tail Position) Range {
	return Range{Head: head, Tail: tail}
}

// IsCollapsed returns true if head and tail coincide.
func (r Range) IsCollapsed() bool {
	return r.Head == r.Tail
}

// IsValid returns true if both positions reference live blocks.
func (r Range) IsValid() bool {
	return r.Head.IsValid() && r.Tail.IsValid()
}

// String returns a debug representation.
func (r Range) String() string {
	if r.IsCollapsed() {
		return fmt.Sprintf("Range(caret %s)", r.Head)
	}
	return fmt.Sprintf("Range(%s .. %s)", r.Head, r.Tail)
}
