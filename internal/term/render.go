package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/inkwell/internal/card"
	"github.com/dshills/inkwell/internal/doc"
)

// Renderer draws the document one block per row. Soft breaks render as a
// return glyph; scrolling is by block row.
type Renderer struct {
	screen tcell.Screen

	// top is the first visible block row.
	top int
}

// NewRenderer creates a renderer over a screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// visualRune is one drawable cell of a block's content.
type visualRune struct {
	r     rune
	style tcell.Style
}

// Draw renders the document and places the terminal cursor at the caret.
func (rd *Renderer) Draw(d *doc.Document, cursor doc.Range, cards *card.Selection) {
	rd.screen.Clear()
	_, height := rd.screen.Size()

	rows := flatten(d)
	rd.scrollTo(rows, cursor, height)

	cursorX, cursorY := -1, -1
	y := 0
	for i := rd.top; i < len(rows) && y < height; i, y = i+1, y+1 {
		b := rows[i]
		x := rd.drawPrefix(b, y, cards)

		if b.Kind() == doc.KindCard {
			if cursor.IsCollapsed() && cursor.Head.Block == b {
				cursorX, cursorY = 0, y
			}
			continue
		}

		cells := blockCells(b)
		for col, vc := range cells {
			if cursor.IsCollapsed() && cursor.Head.Block == b && cursor.Head.Offset == col {
				cursorX, cursorY = x, y
			}
			rd.screen.SetContent(x, y, vc.r, nil, vc.style)
			x++
		}
		if cursor.IsCollapsed() && cursor.Head.Block == b && cursor.Head.Offset == len(cells) {
			cursorX, cursorY = x, y
		}
	}

	if cursorX >= 0 {
		rd.screen.ShowCursor(cursorX, cursorY)
	} else {
		rd.screen.HideCursor()
	}
	rd.screen.Show()
}

// flatten lists drawable blocks in document order, list items in place of
// their containers.
func flatten(d *doc.Document) []*doc.Block {
	var rows []*doc.Block
	for _, b := range d.Blocks() {
		if b.Kind() == doc.KindList {
			rows = append(rows, b.Items().Blocks()...)
			continue
		}
		rows = append(rows, b)
	}
	return rows
}

// scrollTo keeps the cursor's row inside the viewport.
func (rd *Renderer) scrollTo(rows []*doc.Block, cursor doc.Range, height int) {
	if cursor.Head.Block == nil || height <= 0 {
		return
	}
	row := -1
	for i, b := range rows {
		if b == cursor.Head.Block {
			row = i
			break
		}
	}
	if row < 0 {
		return
	}
	if row < rd.top {
		rd.top = row
	}
	if row >= rd.top+height {
		rd.top = row - height + 1
	}
}

// drawPrefix draws the block's leading decoration and returns the column
// content starts at.
func (rd *Renderer) drawPrefix(b *doc.Block, y int, cards *card.Selection) int {
	style := tcell.StyleDefault.Dim(true)

	switch b.Kind() {
	case doc.KindHeading:
		prefix := ""
		for i := 0; i < b.Level(); i++ {
			prefix += "#"
		}
		prefix += " "
		return rd.drawString(0, y, prefix, tcell.StyleDefault.Bold(true))

	case doc.KindListItem:
		return rd.drawString(0, y, "• ", style)

	case doc.KindCard:
		label := fmt.Sprintf("[%s]", b.CardName())
		cardStyle := tcell.StyleDefault.Dim(true)
		if cards != nil && cards.Selected() == b {
			cardStyle = tcell.StyleDefault.Reverse(true)
			if cards.IsEditing() {
				cardStyle = cardStyle.Bold(true)
			}
		}
		return rd.drawString(0, y, label, cardStyle)
	}

	return 0
}

func (rd *Renderer) drawString(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		rd.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// blockCells expands a text block's markers into styled cells, one per
// rune offset.
func blockCells(b *doc.Block) []visualRune {
	var cells []visualRune
	base := tcell.StyleDefault
	if b.Kind() == doc.KindHeading {
		base = base.Bold(true)
	}

	for _, m := range b.Markers() {
		if m.IsBreak() {
			cells = append(cells, visualRune{r: '⏎', style: base.Dim(true)})
			continue
		}
		style := markupStyle(base, m.Markups)
		for _, r := range m.Text {
			cells = append(cells, visualRune{r: r, style: style})
		}
	}
	return cells
}

func markupStyle(base tcell.Style, m doc.Markup) tcell.Style {
	style := base
	if m.Has(doc.MarkupBold) {
		style = style.Bold(true)
	}
	if m.Has(doc.MarkupItalic) {
		style = style.Italic(true)
	}
	if m.Has(doc.MarkupStrike) {
		style = style.StrikeThrough(true)
	}
	if m.Has(doc.MarkupUnderline) || m.Has(doc.MarkupLink) {
		style = style.Underline(true)
	}
	if m.Has(doc.MarkupCode) {
		style = style.Reverse(true)
	}
	return style
}
