package term_test

import (
	"testing"

	"github.com/dshills/inkwell/internal/command"
	"github.com/dshills/inkwell/internal/doc"
	"github.com/dshills/inkwell/internal/input/key"
	"github.com/dshills/inkwell/internal/platform"
	"github.com/dshills/inkwell/internal/term"
)

func newEditor(t *testing.T, blocks ...*doc.Block) (*command.Engine, *term.Editor) {
	t.Helper()
	d := doc.NewWithBlocks(blocks...)
	e, err := command.New(d, command.WithPlatform(platform.Other()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e, term.NewEditor(e)
}

func caretAt(e *command.Engine, b *doc.Block, offset int) {
	e.SetCursor(doc.Collapsed(doc.NewPosition(b, offset)))
}

func TestEditorInsertRune(t *testing.T) {
	p := doc.NewParagraph(doc.NewMarker("ac", 0))
	e, ed := newEditor(t, p)
	caretAt(e, p, 1)

	if !ed.Apply(key.NewRuneEvent('b', key.ModNone)) {
		t.Fatal("Apply declined")
	}
	if got := p.Text(); got != "abc" {
		t.Fatalf("text = %q, want %q", got, "abc")
	}
	if r := e.Cursor(); r.Head.Offset != 2 {
		t.Fatalf("caret offset = %d, want 2", r.Head.Offset)
	}
}

func TestEditorInsertDeclinesOnCard(t *testing.T) {
	c := doc.NewCard("image")
	e, ed := newEditor(t, c)
	caretAt(e, c, 0)
	if ed.Apply(key.NewRuneEvent('x', key.ModNone)) {
		t.Fatal("Apply inserted into a card")
	}
}

func TestEditorSplitBlock(t *testing.T) {
	p := doc.NewParagraph(
		doc.NewMarker("hello ", 0),
		doc.NewMarker("world", doc.MarkupBold),
	)
	e, ed := newEditor(t, p)
	caretAt(e, p, 8)

	if !ed.Apply(key.NewSpecialEvent(key.KeyEnter, key.ModNone)) {
		t.Fatal("Apply declined")
	}

	d := e.Document()
	if d.Len() != 2 {
		t.Fatalf("block count = %d, want 2", d.Len())
	}
	if got := p.Text(); got != "hello wo" {
		t.Fatalf("head text = %q, want %q", got, "hello wo")
	}
	tail := d.Last()
	if got := tail.Text(); got != "rld" {
		t.Fatalf("tail text = %q, want %q", got, "rld")
	}
	if ms := tail.Markers(); len(ms) != 1 || !ms[0].Markups.Has(doc.MarkupBold) {
		t.Fatalf("tail markers = %v, want one bold run", ms)
	}
	if r := e.Cursor(); r.Head.Block != tail || r.Head.Offset != 0 {
		t.Fatalf("caret = %v, want head of tail block", r)
	}
}

func TestEditorBackspaceInBlock(t *testing.T) {
	p := doc.NewParagraph(doc.NewMarker("abc", 0))
	e, ed := newEditor(t, p)
	caretAt(e, p, 2)

	if !ed.Apply(key.NewSpecialEvent(key.KeyBackspace, key.ModNone)) {
		t.Fatal("Apply declined")
	}
	if got := p.Text(); got != "ac" {
		t.Fatalf("text = %q, want %q", got, "ac")
	}
	if r := e.Cursor(); r.Head.Offset != 1 {
		t.Fatalf("caret offset = %d, want 1", r.Head.Offset)
	}
}

func TestEditorBackspaceMergesBlocks(t *testing.T) {
	a := doc.NewParagraph(doc.NewMarker("one", 0))
	b := doc.NewParagraph(doc.NewMarker("two", doc.MarkupItalic))
	e, ed := newEditor(t, a, b)
	caretAt(e, b, 0)

	if !ed.Apply(key.NewSpecialEvent(key.KeyBackspace, key.ModNone)) {
		t.Fatal("Apply declined")
	}
	d := e.Document()
	if d.Len() != 1 || d.First() != a {
		t.Fatalf("blocks = %v, want merged paragraph", d.Blocks())
	}
	if got := a.Text(); got != "onetwo" {
		t.Fatalf("text = %q, want %q", got, "onetwo")
	}
	if r := e.Cursor(); r.Head.Block != a || r.Head.Offset != 3 {
		t.Fatalf("caret = %v, want join point", r)
	}
}

func TestEditorForwardDeleteMergesBlocks(t *testing.T) {
	a := doc.NewParagraph(doc.NewMarker("one", 0))
	b := doc.NewParagraph(doc.NewMarker("two", 0))
	e, ed := newEditor(t, a, b)
	caretAt(e, a, 3)

	if !ed.Apply(key.NewSpecialEvent(key.KeyDelete, key.ModNone)) {
		t.Fatal("Apply declined")
	}
	if got := a.Text(); got != "onetwo" {
		t.Fatalf("text = %q, want %q", got, "onetwo")
	}
	if e.Document().Len() != 1 {
		t.Fatalf("block count = %d, want 1", e.Document().Len())
	}
}

func TestEditorHorizontalMovementCrossesBlocks(t *testing.T) {
	a := doc.NewParagraph(doc.NewMarker("ab", 0))
	b := doc.NewParagraph(doc.NewMarker("cd", 0))
	e, ed := newEditor(t, a, b)

	caretAt(e, b, 0)
	if !ed.Apply(key.NewSpecialEvent(key.KeyLeft, key.ModNone)) {
		t.Fatal("left declined")
	}
	if r := e.Cursor(); r.Head.Block != a || r.Head.Offset != 2 {
		t.Fatalf("caret = %v, want tail of first block", r)
	}

	if !ed.Apply(key.NewSpecialEvent(key.KeyRight, key.ModNone)) {
		t.Fatal("right declined")
	}
	if r := e.Cursor(); r.Head.Block != b || r.Head.Offset != 0 {
		t.Fatalf("caret = %v, want head of second block", r)
	}
}

func TestEditorVerticalMovementClampsOffset(t *testing.T) {
	a := doc.NewParagraph(doc.NewMarker("a", 0))
	b := doc.NewParagraph(doc.NewMarker("longer", 0))
	e, ed := newEditor(t, a, b)
	caretAt(e, b, 5)

	if !ed.Apply(key.NewSpecialEvent(key.KeyUp, key.ModNone)) {
		t.Fatal("up declined")
	}
	if r := e.Cursor(); r.Head.Block != a || r.Head.Offset != 1 {
		t.Fatalf("caret = %v, want clamped to first block tail", r)
	}
}

func TestEditorDeclinesAtDocumentEdges(t *testing.T) {
	p := doc.NewParagraph(doc.NewMarker("x", 0))
	e, ed := newEditor(t, p)

	caretAt(e, p, 0)
	if ed.Apply(key.NewSpecialEvent(key.KeyLeft, key.ModNone)) {
		t.Error("left moved past document start")
	}
	caretAt(e, p, 1)
	if ed.Apply(key.NewSpecialEvent(key.KeyRight, key.ModNone)) {
		t.Error("right moved past document end")
	}
}
