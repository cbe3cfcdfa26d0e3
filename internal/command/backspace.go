package command

import (
	"unicode/utf8"

	"github.com/dshills/inkwell/internal/doc"
	"github.com/dshills/inkwell/internal/doc/mutate"
)

// handleBackspace runs the ordered backspace guards; the first matching
// guard wins and consumes the event. When none match, the host's default
// single-character deletion applies.
func handleBackspace(ctx *Context) Result {
	// 1. A selected card is deleted outright.
	if c := ctx.Cards.Selected(); c != nil {
		return deleteSelectedCard(ctx, c, cursorBeforeUnlessFirst)
	}

	r := ctx.Range
	b := ctx.HeadBlock()
	if b == nil || !r.IsCollapsed() {
		return NotHandled()
	}

	if r.Head.Offset == 0 {
		if res := backspaceAtBlockStart(ctx, b); res.IsHandled() {
			return res
		}
	}

	// 5. Special-markup un-expansion applies at any collapsed offset.
	return handleBackspaceExpansion(ctx)
}

// backspaceAtBlockStart runs the offset-0 guards (2-4).
func backspaceAtBlockStart(ctx *Context, b *doc.Block) Result {
	// 2. Backspace on the leading blank block removes it, shedding any
	// residual inline formatting state. The document never drops to zero
	// blocks: with no next block a fresh paragraph takes its place.
	if b.Prev() == nil && b.IsBlank() && b.Parent() != nil {
		next := b.Next()
		err := ctx.Exec.Run(func(batch *mutate.Batch) {
			batch.RemoveBlock(b)
			if next != nil {
				batch.SetCaret(doc.HeadOf(next))
				return
			}
			fresh := doc.NewParagraph()
			batch.AppendBlock(fresh)
			batch.SetCaret(doc.TailOf(fresh))
		})
		if err != nil {
			return Error(err)
		}
		return Handled()
	}

	prev := b.Prev()

	// 3. Backspacing a non-blank block into a preceding card deletes the
	// card, never merges into it.
	if !b.IsBlank() && prev != nil && prev.Kind() == doc.KindCard {
		err := ctx.Exec.Run(func(batch *mutate.Batch) {
			batch.RemoveBlock(prev)
			batch.SetCaret(doc.HeadOf(b))
		})
		if err != nil {
			return Error(err)
		}
		return Handled()
	}

	// 4. A blank paragraph directly above a heading is cleanup debris.
	if b.Kind() == doc.KindHeading && prev != nil &&
		prev.Kind() == doc.KindParagraph && prev.IsBlank() {
		err := ctx.Exec.Run(func(batch *mutate.Batch) {
			batch.RemoveBlock(prev)
			batch.SetCaret(doc.HeadOf(b))
		})
		if err != nil {
			return Error(err)
		}
		return Handled()
	}

	return NotHandled()
}

// handleBackspaceExpansion reverses a typed special-markup shorthand: at
// the trailing edge of a code/strike run, one backspace re-materializes
// the literal delimiters, clears the markup, and removes the one character
// the key press was for — instead of trapping the caret inside styled
// text. At most one markup is reversed per press, in table order.
func handleBackspaceExpansion(ctx *Context) Result {
	r := ctx.Range
	b := ctx.HeadBlock()
	if b == nil || !r.IsCollapsed() || !b.IsText() || ctx.Expansions == nil {
		return NotHandled()
	}

	offset := r.Head.Offset
	run, start := b.RunEndingAt(offset)
	if run == nil {
		return NotHandled()
	}

	for _, entry := range ctx.Expansions.Entries() {
		if !run.Markups.Has(entry.Markup) {
			continue
		}

		delim := entry.Delimiter
		dl := utf8.RuneCountInString(delim)
		end := offset + 2*dl // trailing edge after both delimiters go in

		err := ctx.Exec.Run(func(batch *mutate.Batch) {
			batch.InsertText(b, start, delim)
			batch.InsertText(b, offset+dl, delim)
			batch.RemoveMarkup(b, start, end, entry.Markup)
			batch.DeleteText(b, end-1, 1)
			batch.SetCaret(doc.NewPosition(b, end-1))
		})
		if err != nil {
			return Error(err)
		}
		return Handled()
	}

	return NotHandled()
}

type cardCursorHint uint8

const (
	// cursorBeforeUnlessFirst places the cursor before the deleted card
	// (tail of the previous block) unless the card had no previous
	// sibling, in which case it lands after (head of the next block).
	cursorBeforeUnlessFirst cardCursorHint = iota

	// cursorBefore always places the cursor before the deletion point.
	cursorBefore
)

// deleteSelectedCard removes a selected card and resolves the resulting
// cursor. Deleting the document's sole block leaves a fresh blank
// paragraph, never an empty document.
func deleteSelectedCard(ctx *Context, c *doc.Block, hint cardCursorHint) Result {
	prev := c.Prev()
	next := c.Next()

	err := ctx.Exec.Run(func(batch *mutate.Batch) {
		batch.RemoveBlock(c)
		switch {
		case hint == cursorBeforeUnlessFirst && prev == nil && next != nil:
			batch.SetCaret(doc.HeadOf(next))
		case prev != nil:
			batch.SetCaret(doc.TailOf(prev))
		case next != nil:
			batch.SetCaret(doc.HeadOf(next))
		default:
			fresh := doc.NewParagraph()
			batch.AppendBlock(fresh)
			batch.SetCaret(doc.TailOf(fresh))
		}
	})
	if err != nil {
		return Error(err)
	}

	ctx.Cards.Deselect()
	return Handled()
}
