package command

import (
	"github.com/dshills/inkwell/internal/doc"
	"github.com/dshills/inkwell/internal/doc/mutate"
	"github.com/dshills/inkwell/internal/event"
)

// handleUp emits a top-exit notification when the caret cannot move any
// higher: collapsed at offset 0 (or on a card) with no effective previous
// sibling. List items defer to their list container for the check.
func handleUp(ctx *Context) Result {
	if atDocumentTop(ctx) {
		ctx.Notify(event.TopicCursorExitedTop, ctx.Range)
		return Handled()
	}
	return NotHandled()
}

// handleLeft behaves like handleUp at the top of the document. It also
// smooths the exit from a selected card: one press lands the caret at the
// tail of the previous block instead of its head, which would take a
// second press to traverse.
func handleLeft(ctx *Context) Result {
	if atDocumentTop(ctx) {
		ctx.Notify(event.TopicCursorExitedTop, ctx.Range)
		return Handled()
	}

	c := ctx.Cards.Selected()
	b := ctx.HeadBlock()
	if c == nil || b == nil || c != b {
		return NotHandled()
	}
	prev := ctx.Doc.EffectivePrev(c)
	if prev == nil {
		return NotHandled()
	}

	err := ctx.Exec.Run(func(batch *mutate.Batch) {
		batch.SetCaret(doc.TailOf(prev))
	})
	if err != nil {
		return Error(err)
	}
	ctx.Cards.Deselect()
	return Handled()
}

// atDocumentTop reports whether the caret sits on the document's first
// block with nowhere above to go.
func atDocumentTop(ctx *Context) bool {
	r := ctx.Range
	b := ctx.HeadBlock()
	if b == nil {
		return false
	}
	atStart := r.IsCollapsed() && r.Head.Offset == 0
	if !atStart && b.Kind() != doc.KindCard {
		return false
	}
	return ctx.Doc.EffectivePrev(b) == nil
}
