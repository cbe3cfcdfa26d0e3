package term

import (
	"github.com/dshills/inkwell/internal/command"
	"github.com/dshills/inkwell/internal/doc"
	"github.com/dshills/inkwell/internal/doc/mutate"
	"github.com/dshills/inkwell/internal/input/key"
)

// Editor supplies the host's default text-editing behavior: what happens
// to a key event after every registered chord handler has declined it.
// Cursor-only moves bypass the executor; anything that touches content
// goes through it as a batch.
type Editor struct {
	engine *command.Engine
}

// NewEditor creates the default-behavior editor over an engine.
func NewEditor(e *command.Engine) *Editor {
	return &Editor{engine: e}
}

// Apply performs the default behavior for an unconsumed key event.
// Returns true if the event changed the document or the cursor.
func (ed *Editor) Apply(ev key.Event) bool {
	switch {
	case ev.Key == key.KeyEnter && ev.Modifiers == key.ModNone:
		return ed.splitBlock()
	case ev.Key == key.KeyBackspace && ev.Modifiers == key.ModNone:
		return ed.deleteBackward()
	case ev.Key == key.KeyDelete && ev.Modifiers == key.ModNone:
		return ed.deleteForward()
	case ev.Key == key.KeyLeft && ev.Modifiers == key.ModNone:
		return ed.moveHorizontal(-1)
	case ev.Key == key.KeyRight && ev.Modifiers == key.ModNone:
		return ed.moveHorizontal(1)
	case ev.Key == key.KeyUp && ev.Modifiers == key.ModNone:
		return ed.moveVertical(-1)
	case ev.Key == key.KeyDown && ev.Modifiers == key.ModNone:
		return ed.moveVertical(1)
	case ev.IsChar() && !ev.IsModified():
		return ed.insertRune(ev.Rune)
	}
	return false
}

func (ed *Editor) caret() (b *doc.Block, offset int, ok bool) {
	r := ed.engine.Cursor()
	if !r.IsCollapsed() || r.Head.Block == nil {
		return nil, 0, false
	}
	return r.Head.Block, r.Head.Offset, true
}

func (ed *Editor) insertRune(r rune) bool {
	b, offset, ok := ed.caret()
	if !ok || !b.IsText() {
		return false
	}
	err := ed.engine.Executor().Run(func(batch *mutate.Batch) {
		batch.InsertText(b, offset, string(r))
		batch.SetCaret(doc.NewPosition(b, offset+1))
	})
	return err == nil
}

// splitBlock breaks the block at the caret; the tail moves into a fresh
// paragraph below.
func (ed *Editor) splitBlock() bool {
	b, offset, ok := ed.caret()
	if !ok || !b.IsText() {
		return false
	}
	tail := doc.NewParagraph()
	err := ed.engine.Executor().Run(func(batch *mutate.Batch) {
		batch.SplitBlock(b, offset, tail)
		batch.SetCaret(doc.HeadOf(tail))
	})
	return err == nil
}

func (ed *Editor) deleteBackward() bool {
	b, offset, ok := ed.caret()
	if !ok || !b.IsText() {
		return false
	}
	exec := ed.engine.Executor()

	if offset > 0 {
		err := exec.Run(func(batch *mutate.Batch) {
			batch.DeleteText(b, offset-1, 1)
			batch.SetCaret(doc.NewPosition(b, offset-1))
		})
		return err == nil
	}

	// Offset 0: merge into the previous text block.
	prev := b.Prev()
	if prev == nil || !prev.IsText() {
		return false
	}
	at := prev.Length()
	err := exec.Run(func(batch *mutate.Batch) {
		batch.MergeBlocks(prev, b)
		batch.SetCaret(doc.NewPosition(prev, at))
	})
	return err == nil
}

func (ed *Editor) deleteForward() bool {
	b, offset, ok := ed.caret()
	if !ok || !b.IsText() {
		return false
	}
	exec := ed.engine.Executor()

	if offset < b.Length() {
		err := exec.Run(func(batch *mutate.Batch) {
			batch.DeleteText(b, offset, 1)
			batch.SetCaret(doc.NewPosition(b, offset))
		})
		return err == nil
	}

	next := b.Next()
	if next == nil || !next.IsText() {
		return false
	}
	err := exec.Run(func(batch *mutate.Batch) {
		batch.MergeBlocks(b, next)
		batch.SetCaret(doc.NewPosition(b, offset))
	})
	return err == nil
}

func (ed *Editor) moveHorizontal(dir int) bool {
	b, offset, ok := ed.caret()
	if !ok {
		return false
	}

	target := offset + dir
	if target >= 0 && target <= b.Length() {
		ed.engine.SetCursor(doc.Collapsed(doc.NewPosition(b, target)))
		return true
	}
	if dir < 0 {
		if prev := ed.engine.Document().EffectivePrev(b); prev != nil {
			ed.engine.SetCursor(doc.Collapsed(doc.TailOf(prev)))
			return true
		}
		return false
	}
	if next := b.Next(); next != nil {
		ed.engine.SetCursor(doc.Collapsed(doc.HeadOf(next)))
		return true
	}
	return false
}

// moveVertical moves block to block; intra-block visual lines are a
// layout concern the host does not model.
func (ed *Editor) moveVertical(dir int) bool {
	b, offset, ok := ed.caret()
	if !ok {
		return false
	}

	var target *doc.Block
	if dir < 0 {
		target = ed.engine.Document().EffectivePrev(b)
	} else {
		target = b.Next()
	}
	if target == nil {
		return false
	}

	if offset > target.Length() {
		offset = target.Length()
	}
	ed.engine.SetCursor(doc.Collapsed(doc.NewPosition(target, offset)))
	return true
}
