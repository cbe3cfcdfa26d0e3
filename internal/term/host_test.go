package term_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/inkwell/internal/command"
	"github.com/dshills/inkwell/internal/doc"
	"github.com/dshills/inkwell/internal/term"
)

// sessionHost builds a host over a simulation screen, wired the way the
// binary wires it: defaults registered, caret at the tail of the last block.
func sessionHost(t *testing.T, d *doc.Document) (*term.Host, *command.Engine) {
	t.Helper()
	e, err := command.New(d)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := e.RegisterDefaults(); err != nil {
		t.Fatalf("RegisterDefaults: %v", err)
	}
	e.SetCursor(doc.Collapsed(doc.TailOf(d.Last())))
	return term.NewHostWithScreen(e, simScreen(t)), e
}

func TestHostFirstKeypressEdits(t *testing.T) {
	p := doc.NewParagraph()
	d := doc.NewWithBlocks(
		doc.NewHeading(1, doc.NewMarker("Untitled", doc.MarkupNone)),
		p,
	)
	h, e := sessionHost(t, d)

	if !h.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)) {
		t.Fatal("rune event should not end the session")
	}
	if got := p.Text(); got != "a" {
		t.Errorf("paragraph text = %q, want %q", got, "a")
	}
	if cur := e.Cursor(); cur.Head.Block != p || cur.Head.Offset != 1 {
		t.Errorf("cursor = %v, want caret after the inserted rune", cur)
	}
}

func TestHostEndOfSessionEvents(t *testing.T) {
	d := doc.NewWithBlocks(doc.NewParagraph())
	h, _ := sessionHost(t, d)

	if h.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlQ, 'q', tcell.ModCtrl)) {
		t.Error("Ctrl+Q should end the session")
	}
	if h.HandleEvent(tcell.NewEventInterrupt(nil)) {
		t.Error("interrupt should end the session")
	}
}
