package command

// Handler processes a key event dispatched for its chord.
type Handler interface {
	// Handle executes against the current dispatch context.
	Handle(ctx *Context) Result
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx *Context) Result

// Handle implements Handler.
func (f HandlerFunc) Handle(ctx *Context) Result {
	if f == nil {
		return Errorf("command: nil handler function")
	}
	return f(ctx)
}
