package command

import (
	"github.com/dshills/inkwell/internal/card"
	"github.com/dshills/inkwell/internal/doc"
	"github.com/dshills/inkwell/internal/doc/mutate"
	"github.com/dshills/inkwell/internal/event"
	"github.com/dshills/inkwell/internal/markup"
	"github.com/dshills/inkwell/internal/platform"
)

// Context is the explicit per-dispatch context handed to every handler:
// the current range plus the engine's collaborators. Handlers never reach
// for ambient state.
type Context struct {
	// Range is the cursor/selection at the time of the key event.
	Range doc.Range

	// Doc is the document model. Read-only for handlers; mutation goes
	// through Exec.
	Doc *doc.Document

	// Cards is the card selection state cell.
	Cards *card.Selection

	// Exec applies mutation batches.
	Exec *mutate.Executor

	// Events delivers out-of-band notifications.
	Events *event.Notifier

	// Platform is the injected host platform value.
	Platform platform.Platform

	// Expansions is the special-markup table.
	Expansions *markup.Table
}

// Notify emits a notification if a notifier is wired.
func (ctx *Context) Notify(topic event.Topic, payload any) {
	if ctx.Events != nil {
		ctx.Events.Notify(topic, payload)
	}
}

// HeadBlock returns the block at the range head, nil if the range is
// unset.
func (ctx *Context) HeadBlock() *doc.Block {
	return ctx.Range.Head.Block
}
