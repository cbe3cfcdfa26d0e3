package mutate

import (
	"fmt"

	"github.com/dshills/inkwell/internal/doc"
)

// Batch stages operations for a single atomic application.
// Staging never touches the document; Executor.Run applies.
type Batch struct {
	ops    []op
	cursor *doc.Range
}

type op struct {
	name  string
	apply func(d *doc.Document) error
}

func (b *Batch) stage(name string, apply func(d *doc.Document) error) {
	b.ops = append(b.ops, op{name: name, apply: apply})
}

// InsertBlockBefore stages inserting newBlock immediately before ref.
func (b *Batch) InsertBlockBefore(newBlock, ref *doc.Block) {
	b.stage("insertBlockBefore", func(d *doc.Document) error {
		if newBlock == nil || ref == nil {
			return ErrBadOp
		}
		return d.InsertBefore(newBlock, ref)
	})
}

// InsertBlockAfter stages inserting newBlock immediately after ref.
func (b *Batch) InsertBlockAfter(newBlock, ref *doc.Block) {
	b.stage("insertBlockAfter", func(d *doc.Document) error {
		if newBlock == nil || ref == nil {
			return ErrBadOp
		}
		return d.InsertAfter(newBlock, ref)
	})
}

// AppendBlock stages appending a block at the end of the document.
func (b *Batch) AppendBlock(block *doc.Block) {
	b.stage("appendBlock", func(d *doc.Document) error {
		if block == nil {
			return ErrBadOp
		}
		d.Append(block)
		return nil
	})
}

// RemoveBlock stages detaching a block from its collection.
func (b *Batch) RemoveBlock(block *doc.Block) {
	b.stage("removeBlock", func(d *doc.Document) error {
		if block == nil {
			return ErrBadOp
		}
		return d.Remove(block)
	})
}

// MergeBlocks stages appending src's content to dst and removing src.
func (b *Batch) MergeBlocks(dst, src *doc.Block) {
	b.stage("mergeBlocks", func(d *doc.Document) error {
		if dst == nil || src == nil {
			return ErrBadOp
		}
		if err := dst.AppendFrom(src); err != nil {
			return err
		}
		return d.Remove(src)
	})
}

// SplitBlock stages moving everything from offset onward into dst and
// inserting dst directly after block. dst must be an empty text block.
func (b *Batch) SplitBlock(block *doc.Block, offset int, dst *doc.Block) {
	b.stage("splitBlock", func(d *doc.Document) error {
		if block == nil || dst == nil {
			return ErrBadOp
		}
		if err := block.MoveTail(offset, dst); err != nil {
			return err
		}
		return d.InsertAfter(dst, block)
	})
}

// InsertText stages a text insertion at a rune offset.
func (b *Batch) InsertText(block *doc.Block, offset int, text string) {
	b.stage("insertText", func(d *doc.Document) error {
		if block == nil {
			return ErrBadOp
		}
		return block.InsertText(offset, text)
	})
}

// DeleteText stages removal of n runes starting at offset.
func (b *Batch) DeleteText(block *doc.Block, offset, n int) {
	b.stage("deleteText", func(d *doc.Document) error {
		if block == nil {
			return ErrBadOp
		}
		return block.DeleteText(offset, n)
	})
}

// InsertBreak stages a soft line break insertion.
func (b *Batch) InsertBreak(block *doc.Block, offset int) {
	b.stage("insertBreak", func(d *doc.Document) error {
		if block == nil {
			return ErrBadOp
		}
		return block.InsertBreak(offset)
	})
}

// ApplyMarkup stages setting a markup over [start, end).
func (b *Batch) ApplyMarkup(block *doc.Block, start, end int, m doc.Markup) {
	b.stage("applyMarkup", func(d *doc.Document) error {
		if block == nil {
			return ErrBadOp
		}
		return block.ApplyMarkup(start, end, m)
	})
}

// RemoveMarkup stages clearing a markup over [start, end).
func (b *Batch) RemoveMarkup(block *doc.Block, start, end int, m doc.Markup) {
	b.stage("removeMarkup", func(d *doc.Document) error {
		if block == nil {
			return ErrBadOp
		}
		return block.RemoveMarkup(start, end, m)
	})
}

// SetCursor stages the cursor placement delivered after the batch applies.
// The last call wins.
func (b *Batch) SetCursor(r doc.Range) {
	b.cursor = &r
}

// SetCaret stages a collapsed cursor at the given position.
func (b *Batch) SetCaret(p doc.Position) {
	b.SetCursor(doc.Collapsed(p))
}

// Len returns the number of staged operations.
func (b *Batch) Len() int { return len(b.ops) }

// IsEmpty returns true if nothing was staged, cursor included.
func (b *Batch) IsEmpty() bool {
	return len(b.ops) == 0 && b.cursor == nil
}

// String returns the staged op names for debugging.
func (b *Batch) String() string {
	names := make([]string, len(b.ops))
	for i, o := range b.ops {
		names[i] = o.name
	}
	return fmt.Sprintf("Batch%v", names)
}
