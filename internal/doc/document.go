package doc

import (
	"github.com/google/uuid"
)

// Document is the root block collection.
type Document struct {
	root *Collection
}

// New creates an empty document.
func New() *Document {
	return &Document{root: &Collection{}}
}

// NewWithBlocks creates a document containing the given blocks in order.
func NewWithBlocks(blocks ...*Block) *Document {
	d := New()
	for _, b := range blocks {
		d.root.append(b)
	}
	return d
}

// Root returns the document's root collection.
func (d *Document) Root() *Collection { return d.root }

// Blocks returns the top-level blocks in order.
func (d *Document) Blocks() []*Block { return d.root.blocks }

// Len returns the number of top-level blocks.
func (d *Document) Len() int { return d.root.Len() }

// First returns the first top-level block, nil if the document is empty.
func (d *Document) First() *Block { return d.root.First() }

// Last returns the last top-level block, nil if the document is empty.
func (d *Document) Last() *Block { return d.root.Last() }

// Append adds a block to the end of the document.
func (d *Document) Append(b *Block) {
	d.root.append(b)
}

// InsertBefore inserts newBlock immediately before ref within ref's
// collection (which may be a list container, not just the root).
func (d *Document) InsertBefore(newBlock, ref *Block) error {
	if ref.parent == nil {
		return ErrDetached
	}
	i := ref.parent.indexOf(ref)
	if i < 0 {
		return ErrNotFound
	}
	ref.parent.insertAt(i, newBlock)
	return nil
}

// InsertAfter inserts newBlock immediately after ref within ref's collection.
func (d *Document) InsertAfter(newBlock, ref *Block) error {
	if ref.parent == nil {
		return ErrDetached
	}
	i := ref.parent.indexOf(ref)
	if i < 0 {
		return ErrNotFound
	}
	ref.parent.insertAt(i+1, newBlock)
	return nil
}

// Remove detaches a block from its collection.
func (d *Document) Remove(b *Block) error {
	if b.parent == nil {
		return ErrDetached
	}
	if !b.parent.remove(b) {
		return ErrNotFound
	}
	return nil
}

// EffectivePrev resolves the effective previous sibling of a block for
// top-of-document checks: a list item with no previous item within its list
// defers to the list container's own previous sibling.
func (d *Document) EffectivePrev(b *Block) *Block {
	if prev := b.Prev(); prev != nil {
		return prev
	}
	if b.kind == KindListItem && b.parent != nil && b.parent.owner != nil {
		return b.parent.owner.Prev()
	}
	return nil
}

// BlockByID finds a block (including list items) by ID. Returns nil if not
// present.
func (d *Document) BlockByID(id uuid.UUID) *Block {
	return findByID(d.root, id)
}

func findByID(c *Collection, id uuid.UUID) *Block {
	for _, b := range c.blocks {
		if b.id == id {
			return b
		}
		if b.items != nil {
			if found := findByID(b.items, id); found != nil {
				return found
			}
		}
	}
	return nil
}

// Clone returns a deep copy of the document. Blocks keep their IDs so
// positions can be re-resolved across a snapshot restore.
func (d *Document) Clone() *Document {
	c := New()
	for _, b := range d.root.blocks {
		c.root.append(b.Clone())
	}
	return c
}

// Restore replaces the document's contents with those of a snapshot taken
// with Clone. Blocks from the snapshot become live; stale block references
// must be re-resolved through BlockByID.
func (d *Document) Restore(snapshot *Document) {
	d.root = snapshot.root
}
