package doc

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Kind identifies the block type.
type Kind uint8

const (
	// KindParagraph is a plain text paragraph.
	KindParagraph Kind = iota

	// KindHeading is a heading with a level (1-6).
	KindHeading

	// KindListItem is an item inside a list container.
	KindListItem

	// KindCard is an atomic embedded non-text block.
	KindCard

	// KindList is a list container owning list items.
	KindList
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindParagraph:
		return "paragraph"
	case KindHeading:
		return "heading"
	case KindListItem:
		return "list-item"
	case KindCard:
		return "card"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Block is a content unit: a paragraph, heading, list item, card, or list
// container. Blocks live in exactly one Collection; Prev/Next navigate
// within it.
type Block struct {
	id      uuid.UUID
	kind    Kind
	level   int    // heading level, 1-6
	card    string // card name, KindCard only
	markers []*Marker

	parent *Collection
	items  *Collection // KindList only
}

// NewParagraph creates a paragraph block with the given markers.
func NewParagraph(markers ...*Marker) *Block {
	return &Block{id: uuid.New(), kind: KindParagraph, markers: markers}
}

// NewHeading creates a heading block. Levels outside 1-6 are clamped.
func NewHeading(level int, markers ...*Marker) *Block {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return &Block{id: uuid.New(), kind: KindHeading, level: level, markers: markers}
}

// NewListItem creates a list item block.
func NewListItem(markers ...*Marker) *Block {
	return &Block{id: uuid.New(), kind: KindListItem, markers: markers}
}

// NewCard creates a card block with the given card name.
func NewCard(name string) *Block {
	return &Block{id: uuid.New(), kind: KindCard, card: name}
}

// NewList creates a list container owning the given items.
func NewList(items ...*Block) *Block {
	b := &Block{id: uuid.New(), kind: KindList}
	b.items = &Collection{owner: b}
	for _, item := range items {
		b.items.append(item)
	}
	return b
}

// ID returns the block's unique identifier.
func (b *Block) ID() uuid.UUID { return b.id }

// Kind returns the block type.
func (b *Block) Kind() Kind { return b.kind }

// Level returns the heading level (0 for non-headings).
func (b *Block) Level() int {
	if b.kind != KindHeading {
		return 0
	}
	return b.level
}

// CardName returns the card name (empty for non-cards).
func (b *Block) CardName() string { return b.card }

// TagName returns the block-type tag: "p", "h1".."h6", "li". Empty for
// cards and list containers.
func (b *Block) TagName() string {
	switch b.kind {
	case KindParagraph:
		return "p"
	case KindHeading:
		return fmt.Sprintf("h%d", b.level)
	case KindListItem:
		return "li"
	case KindCard, KindList:
		return ""
	default:
		return ""
	}
}

// IsText returns true if the block supports inline text content.
func (b *Block) IsText() bool {
	switch b.kind {
	case KindParagraph, KindHeading, KindListItem:
		return true
	case KindCard, KindList:
		return false
	default:
		return false
	}
}

// Length returns the block's text length in runes (0 for cards and lists).
func (b *Block) Length() int {
	if !b.IsText() {
		return 0
	}
	n := 0
	for _, m := range b.markers {
		n += m.Length()
	}
	return n
}

// IsBlank returns true iff the block contains no text and no card.
func (b *Block) IsBlank() bool {
	if b.kind == KindCard {
		return false
	}
	if b.kind == KindList {
		return b.items.Len() == 0
	}
	return b.Length() == 0
}

// Text returns the block's text with soft breaks rendered as "\n".
func (b *Block) Text() string {
	var sb strings.Builder
	for _, m := range b.markers {
		if m.IsBreak() {
			sb.WriteByte('\n')
		} else {
			sb.WriteString(m.Text)
		}
	}
	return sb.String()
}

// Markers returns the block's markers. The slice must not be mutated by
// callers; use the mutate package.
func (b *Block) Markers() []*Marker { return b.markers }

// Items returns the item collection of a list container, nil otherwise.
func (b *Block) Items() *Collection {
	if b.kind != KindList {
		return nil
	}
	return b.items
}

// Parent returns the collection the block belongs to (nil if detached).
func (b *Block) Parent() *Collection { return b.parent }

// Prev returns the previous sibling within the parent collection.
func (b *Block) Prev() *Block {
	if b.parent == nil {
		return nil
	}
	i := b.parent.indexOf(b)
	if i <= 0 {
		return nil
	}
	return b.parent.blocks[i-1]
}

// Next returns the next sibling within the parent collection.
func (b *Block) Next() *Block {
	if b.parent == nil {
		return nil
	}
	i := b.parent.indexOf(b)
	if i < 0 || i+1 >= len(b.parent.blocks) {
		return nil
	}
	return b.parent.blocks[i+1]
}

// Clone returns a deep copy of the block with the same ID. The copy is
// detached from any collection.
func (b *Block) Clone() *Block {
	c := &Block{
		id:    b.id,
		kind:  b.kind,
		level: b.level,
		card:  b.card,
	}
	if b.markers != nil {
		c.markers = make([]*Marker, len(b.markers))
		for i, m := range b.markers {
			c.markers[i] = m.Clone()
		}
	}
	if b.items != nil {
		c.items = &Collection{owner: c}
		for _, item := range b.items.blocks {
			c.items.append(item.Clone())
		}
	}
	return c
}

// String returns a debug representation.
func (b *Block) String() string {
	switch b.kind {
	case KindCard:
		return fmt.Sprintf("Block(card %q)", b.card)
	case KindList:
		return fmt.Sprintf("Block(list, %d items)", b.items.Len())
	default:
		return fmt.Sprintf("Block(%s %q)", b.TagName(), b.Text())
	}
}

// Collection is an ordered collection of blocks: the document root, or the
// items of a list container.
type Collection struct {
	owner  *Block // nil for the document root
	blocks []*Block
}

// Owner returns the list container owning this collection, nil for the
// document root.
func (c *Collection) Owner() *Block { return c.owner }

// Len returns the number of blocks.
func (c *Collection) Len() int { return len(c.blocks) }

// Blocks returns the blocks in order. The slice must not be mutated.
func (c *Collection) Blocks() []*Block { return c.blocks }

// First returns the first block, nil if empty.
func (c *Collection) First() *Block {
	if len(c.blocks) == 0 {
		return nil
	}
	return c.blocks[0]
}

// Last returns the last block, nil if empty.
func (c *Collection) Last() *Block {
	if len(c.blocks) == 0 {
		return nil
	}
	return c.blocks[len(c.blocks)-1]
}

func (c *Collection) indexOf(b *Block) int {
	for i, blk := range c.blocks {
		if blk == b {
			return i
		}
	}
	return -1
}

func (c *Collection) append(b *Block) {
	b.parent = c
	c.blocks = append(c.blocks, b)
}

func (c *Collection) insertAt(i int, b *Block) {
	b.parent = c
	c.blocks = append(c.blocks, nil)
	copy(c.blocks[i+1:], c.blocks[i:])
	c.blocks[i] = b
}

func (c *Collection) remove(b *Block) bool {
	i := c.indexOf(b)
	if i < 0 {
		return false
	}
	c.blocks = append(c.blocks[:i], c.blocks[i+1:]...)
	b.parent = nil
	return true
}
