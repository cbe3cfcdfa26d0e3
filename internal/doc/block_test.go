package doc_test

import (
	"testing"

	"github.com/dshills/inkwell/internal/doc"
)

func TestBlockTagName(t *testing.T) {
	tests := []struct {
		name  string
		block *doc.Block
		want  string
	}{
		{"paragraph", doc.NewParagraph(), "p"},
		{"heading 1", doc.NewHeading(1), "h1"},
		{"heading 3", doc.NewHeading(3), "h3"},
		{"heading clamped high", doc.NewHeading(9), "h6"},
		{"heading clamped low", doc.NewHeading(0), "h1"},
		{"list item", doc.NewListItem(), "li"},
		{"card", doc.NewCard("image"), ""},
		{"list", doc.NewList(), ""},
	}

	for _, tt := range tests {
		if got := tt.block.TagName(); got != tt.want {
			t.Errorf("%s: TagName() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestBlockIsBlank(t *testing.T) {
	if !doc.NewParagraph().IsBlank() {
		t.Error("empty paragraph should be blank")
	}
	if doc.NewParagraph(doc.NewMarker("x", doc.MarkupNone)).IsBlank() {
		t.Error("paragraph with text should not be blank")
	}
	if doc.NewCard("image").IsBlank() {
		t.Error("card should never be blank")
	}
	if !doc.NewParagraph(doc.NewMarker("", doc.MarkupNone)).IsBlank() {
		t.Error("paragraph with only an empty run should be blank")
	}
}

func TestBlockLength(t *testing.T) {
	b := doc.NewParagraph(
		doc.NewMarker("hello", doc.MarkupNone),
		doc.NewBreakMarker(),
		doc.NewMarker("wörld", doc.MarkupBold),
	)
	// 5 + 1 (break) + 5 runes.
	if got := b.Length(); got != 11 {
		t.Errorf("Length() = %d, want 11", got)
	}
	if got := doc.NewCard("image").Length(); got != 0 {
		t.Errorf("card Length() = %d, want 0", got)
	}
}

func TestBlockSiblings(t *testing.T) {
	a := doc.NewParagraph()
	b := doc.NewHeading(2)
	c := doc.NewCard("hr")
	d := doc.NewWithBlocks(a, b, c)

	if a.Prev() != nil {
		t.Error("first block should have no Prev")
	}
	if a.Next() != b || b.Next() != c || c.Next() != nil {
		t.Error("Next chain broken")
	}
	if c.Prev() != b || b.Prev() != a {
		t.Error("Prev chain broken")
	}
	if d.First() != a || d.Last() != c {
		t.Error("First/Last mismatch")
	}
}

func TestDocumentInsertRemove(t *testing.T) {
	a := doc.NewParagraph()
	c := doc.NewParagraph()
	d := doc.NewWithBlocks(a, c)

	b := doc.NewHeading(1)
	if err := d.InsertBefore(b, c); err != nil {
		t.Fatalf("InsertBefore: %v", err)
	}
	if got := d.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
	if a.Next() != b || b.Next() != c {
		t.Error("InsertBefore placed block incorrectly")
	}

	if err := d.Remove(b); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if b.Parent() != nil {
		t.Error("removed block should be detached")
	}
	if a.Next() != c {
		t.Error("siblings not rejoined after Remove")
	}

	if err := d.Remove(b); err == nil {
		t.Error("removing a detached block should fail")
	}
}

func TestEffectivePrev(t *testing.T) {
	para := doc.NewParagraph(doc.NewMarker("intro", doc.MarkupNone))
	item1 := doc.NewListItem(doc.NewMarker("one", doc.MarkupNone))
	item2 := doc.NewListItem(doc.NewMarker("two", doc.MarkupNone))
	list := doc.NewList(item1, item2)
	d := doc.NewWithBlocks(para, list)

	if got := d.EffectivePrev(item2); got != item1 {
		t.Errorf("EffectivePrev(item2) = %v, want item1", got)
	}
	// First item in the list defers to the list container's sibling.
	if got := d.EffectivePrev(item1); got != para {
		t.Errorf("EffectivePrev(item1) = %v, want the leading paragraph", got)
	}
	if got := d.EffectivePrev(para); got != nil {
		t.Errorf("EffectivePrev(para) = %v, want nil", got)
	}

	// A list at the very top of the document: its first item has no
	// effective previous sibling at all.
	d2 := doc.NewWithBlocks(doc.NewList(doc.NewListItem()))
	first := d2.First().Items().First()
	if got := d2.EffectivePrev(first); got != nil {
		t.Errorf("EffectivePrev(top list item) = %v, want nil", got)
	}
}

func TestDocumentCloneIsolation(t *testing.T) {
	p := doc.NewParagraph(doc.NewMarker("text", doc.MarkupNone))
	d := doc.NewWithBlocks(p)

	snap := d.Clone()
	if err := p.InsertText(4, "!"); err != nil {
		t.Fatalf("InsertText: %v", err)
	}

	if got := snap.First().Text(); got != "text" {
		t.Errorf("snapshot text = %q, want %q", got, "text")
	}
	if snap.First().ID() != p.ID() {
		t.Error("clone should keep block IDs")
	}
	if d.BlockByID(p.ID()) != p {
		t.Error("BlockByID should find the live block")
	}

	d.Restore(snap)
	if got := d.First().Text(); got != "text" {
		t.Errorf("restored text = %q, want %q", got, "text")
	}
}
