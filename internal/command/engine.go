package command

import (
	"sync"

	"github.com/dshills/inkwell/internal/card"
	"github.com/dshills/inkwell/internal/doc"
	"github.com/dshills/inkwell/internal/doc/mutate"
	"github.com/dshills/inkwell/internal/event"
	"github.com/dshills/inkwell/internal/input/key"
	"github.com/dshills/inkwell/internal/markup"
	"github.com/dshills/inkwell/internal/platform"
)

// Engine owns the registry and collaborators and dispatches key events.
type Engine struct {
	mu sync.Mutex

	registry *Registry
	doc      *doc.Document
	cards    *card.Selection
	exec     *mutate.Executor
	events   *event.Notifier
	platform platform.Platform
	table    *markup.Table

	cursor doc.Range
	scroll func()
}

// Option configures an Engine.
type Option func(*Engine)

// WithPlatform injects the host platform value.
func WithPlatform(p platform.Platform) Option {
	return func(e *Engine) { e.platform = p }
}

// WithExpansions sets the special-markup table.
func WithExpansions(t *markup.Table) Option {
	return func(e *Engine) { e.table = t }
}

// WithNotifier sets the notifier collaborators subscribe to.
func WithNotifier(n *event.Notifier) Option {
	return func(e *Engine) { e.events = n }
}

// WithScrollFunc sets the host's scroll-cursor-into-view signal.
// Fire-and-forget; the engine consumes no return value.
func WithScrollFunc(fn func()) Option {
	return func(e *Engine) { e.scroll = fn }
}

// New creates an engine over a document. Defaults: detected platform, the
// built-in special-markup table, a fresh notifier and card selection.
func New(d *doc.Document, opts ...Option) (*Engine, error) {
	e := &Engine{
		registry: NewRegistry(),
		doc:      d,
		cards:    card.NewSelection(),
		platform: platform.Detect(),
		table:    markup.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.events == nil {
		e.events = event.NewNotifier()
	}

	exec, err := mutate.New(d, mutate.CursorFunc(e.setCursor))
	if err != nil {
		return nil, err
	}
	exec.SetCursorSource(func() doc.Range { return e.cursor })
	e.exec = exec
	return e, nil
}

// setCursor is the executor's cursor sink.
func (e *Engine) setCursor(r doc.Range) {
	e.cursor = r
}

// Cursor returns the current range.
func (e *Engine) Cursor() doc.Range {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cursor
}

// SetCursor sets the current range (host-driven caret placement).
func (e *Engine) SetCursor(r doc.Range) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursor = r
}

// Registry returns the chord registry.
func (e *Engine) Registry() *Registry { return e.registry }

// Register adds a handler for a chord specification.
func (e *Engine) Register(spec string, h Handler) error {
	return e.registry.Register(spec, h)
}

// Document returns the document model.
func (e *Engine) Document() *doc.Document { return e.doc }

// Cards returns the card selection cell.
func (e *Engine) Cards() *card.Selection { return e.cards }

// Executor returns the mutation executor.
func (e *Engine) Executor() *mutate.Executor { return e.exec }

// Notifier returns the notifier.
func (e *Engine) Notifier() *event.Notifier { return e.events }

// Expansions returns the current special-markup table.
func (e *Engine) Expansions() *markup.Table {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.table
}

// SetExpansions swaps the special-markup table (config reload). The table
// itself stays immutable; the engine only exchanges the reference between
// dispatches.
func (e *Engine) SetExpansions(t *markup.Table) {
	if t == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.table = t
}

// HandleKey dispatches a key event to the handler registered for its
// chord. Events are processed one at a time, each to completion. Returns
// NotHandled if no handler is registered or the handler declined.
func (e *Engine) HandleKey(ev key.Event) Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	h := e.registry.Lookup(ev.Chord())
	if h == nil {
		return NotHandled()
	}

	ctx := &Context{
		Range:      e.cursor,
		Doc:        e.doc,
		Cards:      e.cards,
		Exec:       e.exec,
		Events:     e.events,
		Platform:   e.platform,
		Expansions: e.table,
	}

	result := h.Handle(ctx)
	if result.ScrollIntoView && e.scroll != nil {
		e.scroll()
	}
	return result
}

// RegisterDefaults installs the built-in key commands.
func (e *Engine) RegisterDefaults() error {
	bindings := []struct {
		chord string
		fn    HandlerFunc
	}{
		{"ENTER", handleEnter},
		{"META+ENTER", handleCardEditMeta},
		{"CTRL+ENTER", handleCardEditCtrl},
		{"SHIFT+ENTER", handleSoftReturn},
		{"BACKSPACE", handleBackspace},
		{"DEL", handleForwardDelete},
		{"UP", handleUp},
		{"LEFT", handleLeft},
		{"META+K", handleEditLinkMeta},
		{"CTRL+K", handleEditLinkCtrl},
	}

	for _, b := range bindings {
		if err := e.registry.Register(b.chord, b.fn); err != nil {
			return err
		}
	}
	return nil
}
