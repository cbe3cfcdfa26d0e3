package command

import (
	"github.com/dshills/inkwell/internal/doc"
	"github.com/dshills/inkwell/internal/doc/mutate"
)

// handleEnter: pressing enter at the very start of a heading opens a blank
// paragraph above it instead of splitting the heading text. Anything else
// is the host's default split behavior.
func handleEnter(ctx *Context) Result {
	r := ctx.Range
	if !r.IsCollapsed() || r.Head.Offset != 0 {
		return NotHandled()
	}

	b := ctx.HeadBlock()
	if b == nil || b.Kind() != doc.KindHeading {
		return NotHandled()
	}

	err := ctx.Exec.Run(func(batch *mutate.Batch) {
		batch.InsertBlockBefore(doc.NewParagraph(), b)
		// The caret stays on the heading.
		batch.SetCaret(doc.HeadOf(b))
	})
	if err != nil {
		return Error(err)
	}
	return Handled().WithScroll()
}

// handleCardEditMeta: META+ENTER puts the selected card into edit mode.
func handleCardEditMeta(ctx *Context) Result {
	return editSelectedCard(ctx)
}

// handleCardEditCtrl: CTRL+ENTER does the same, but only on Windows; on
// other platforms the chord keeps its default binding.
func handleCardEditCtrl(ctx *Context) Result {
	if !ctx.Platform.IsWindows() {
		return NotHandled()
	}
	return editSelectedCard(ctx)
}

func editSelectedCard(ctx *Context) Result {
	if ctx.Cards == nil || ctx.Cards.Selected() == nil {
		return NotHandled()
	}
	if err := ctx.Cards.EditSelected(); err != nil {
		return Error(err)
	}
	return Handled()
}

// handleSoftReturn: SHIFT+ENTER inserts a soft line break inside the
// block. Not handled for non-text blocks.
func handleSoftReturn(ctx *Context) Result {
	r := ctx.Range
	b := ctx.HeadBlock()
	if b == nil || !b.IsText() {
		return NotHandled()
	}

	offset := r.Head.Offset
	err := ctx.Exec.Run(func(batch *mutate.Batch) {
		batch.InsertBreak(b, offset)
		batch.SetCaret(doc.NewPosition(b, offset+1))
	})
	if err != nil {
		return Error(err)
	}
	return Handled()
}
