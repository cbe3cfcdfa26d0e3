package command

import "github.com/dshills/inkwell/internal/event"

// handleEditLinkMeta opens the link editor for the current range on every
// platform.
func handleEditLinkMeta(ctx *Context) Result {
	ctx.Notify(event.TopicEditLink, ctx.Range)
	return Handled()
}

// handleEditLinkCtrl opens the link editor on Windows only. Elsewhere
// Ctrl+K keeps its native delete-to-end-of-line meaning.
func handleEditLinkCtrl(ctx *Context) Result {
	if !ctx.Platform.IsWindows() {
		return NotHandled()
	}
	return handleEditLinkMeta(ctx)
}
