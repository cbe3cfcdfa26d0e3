package term

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/inkwell/internal/command"
	"github.com/dshills/inkwell/internal/input/key"
)

// Host runs the terminal session: event loop, dispatch, default editing,
// rendering.
type Host struct {
	screen   tcell.Screen
	engine   *command.Engine
	editor   *Editor
	renderer *Renderer

	mu      sync.Mutex
	stopped bool
}

// NewHost creates a host over a new terminal screen.
func NewHost(engine *command.Engine) (*Host, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: %w", err)
	}
	return newHost(engine, screen), nil
}

// NewHostWithScreen creates a host over an existing screen. Used with
// tcell's simulation screen in tests.
func NewHostWithScreen(engine *command.Engine, screen tcell.Screen) *Host {
	return newHost(engine, screen)
}

func newHost(engine *command.Engine, screen tcell.Screen) *Host {
	return &Host{
		screen:   screen,
		engine:   engine,
		editor:   NewEditor(engine),
		renderer: NewRenderer(screen),
	}
}

// Engine returns the command engine.
func (h *Host) Engine() *command.Engine { return h.engine }

// Run initializes the screen and processes events until Stop or Ctrl+Q.
func (h *Host) Run() error {
	if err := h.screen.Init(); err != nil {
		return fmt.Errorf("term: %w", err)
	}
	defer h.screen.Fini()

	h.render()

	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if !h.HandleEvent(ev) {
			return nil
		}
	}
}

// HandleEvent processes one terminal event and redraws. Returns false when
// the event ends the session (interrupt or Ctrl+Q).
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventInterrupt:
		return false

	case *tcell.EventResize:
		h.screen.Sync()
		h.render()

	case *tcell.EventKey:
		kev, ok := Translate(e)
		if !ok {
			return true
		}
		if kev.Matches("CTRL+Q") {
			return false
		}
		h.handle(kev)
		h.render()
	}
	return true
}

// handle dispatches one key event, falling back to default editing when
// no chord handler consumes it.
func (h *Host) handle(ev key.Event) {
	res := h.engine.HandleKey(ev)
	if res.Status == command.StatusNotHandled {
		h.editor.Apply(ev)
	}
}

// Stop wakes the event loop and ends Run. Safe to call from any
// goroutine.
func (h *Host) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped {
		return
	}
	h.stopped = true
	_ = h.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

func (h *Host) render() {
	h.renderer.Draw(h.engine.Document(), h.engine.Cursor(), h.engine.Cards())
}
