package command

import (
	"github.com/dshills/inkwell/internal/card"
	"github.com/dshills/inkwell/internal/doc"
	"github.com/dshills/inkwell/internal/doc/mutate"
)

// handleForwardDelete: DEL deletes a selected card, or the card directly
// after the caret at end-of-block. Everything else is the host's default
// forward deletion.
func handleForwardDelete(ctx *Context) Result {
	// A selected card is deleted; when another card directly follows, the
	// selection moves onto it, otherwise no card ends up selected.
	if c := ctx.Cards.Selected(); c != nil {
		next := c.Next()
		res := deleteSelectedCard(ctx, c, cursorBefore)
		if res.Status != StatusHandled {
			return res
		}
		if follower := card.CardFromBlock(next); follower != nil {
			if err := ctx.Cards.Select(follower); err != nil {
				return Error(err)
			}
		}
		return res
	}

	r := ctx.Range
	b := ctx.HeadBlock()
	if b == nil || !r.IsCollapsed() || b.IsBlank() {
		return NotHandled()
	}
	if r.Head.Offset != b.Length() {
		return NotHandled()
	}

	next := b.Next()
	if next == nil || next.Kind() != doc.KindCard {
		return NotHandled()
	}

	offset := r.Head.Offset
	err := ctx.Exec.Run(func(batch *mutate.Batch) {
		batch.RemoveBlock(next)
		// Immediately before the deletion point.
		batch.SetCaret(doc.NewPosition(b, offset))
	})
	if err != nil {
		return Error(err)
	}
	return Handled()
}
