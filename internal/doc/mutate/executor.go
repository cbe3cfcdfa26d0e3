package mutate

import (
	"fmt"
	"sync"

	"github.com/dshills/inkwell/internal/doc"
)

// CursorSink receives the cursor placement of a successful batch.
type CursorSink interface {
	SetCursor(r doc.Range)
}

// CursorFunc adapts a function to CursorSink.
type CursorFunc func(r doc.Range)

// SetCursor implements CursorSink.
func (f CursorFunc) SetCursor(r doc.Range) { f(r) }

// Executor applies mutation batches to a document. Batches are serialized:
// one runs to completion before the next starts.
type Executor struct {
	mu     sync.Mutex
	doc    *doc.Document
	sink   CursorSink
	source func() doc.Range
}

// New creates an executor for the given document. sink may be nil if no
// collaborator consumes cursor placements.
func New(d *doc.Document, sink CursorSink) (*Executor, error) {
	if d == nil {
		return nil, ErrNoDocument
	}
	return &Executor{doc: d, sink: sink}, nil
}

// Document returns the document this executor mutates.
func (e *Executor) Document() *doc.Document {
	return e.doc
}

// SetCursorSource registers where the executor reads the collaborator's
// current range when a batch has to be rolled back.
func (e *Executor) SetCursorSource(fn func() doc.Range) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.source = fn
}

// Run stages a batch via fn and applies it atomically. On any operation
// error the document is restored from a pre-batch snapshot, the batch's
// cursor placement is not delivered, and the error is returned wrapped
// with the failing op's name. Restore swaps in snapshot blocks, so the
// collaborator's current range is re-resolved by block ID onto the
// restored tree and delivered through the sink.
func (e *Executor) Run(fn func(b *Batch)) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	b := &Batch{}
	fn(b)
	if b.IsEmpty() {
		return ErrEmptyBatch
	}

	snapshot := e.doc.Clone()
	for _, o := range b.ops {
		if err := o.apply(e.doc); err != nil {
			e.doc.Restore(snapshot)
			e.rescueCursor()
			return fmt.Errorf("mutate: op %s: %w", o.name, err)
		}
	}

	if b.cursor != nil && e.sink != nil {
		e.sink.SetCursor(*b.cursor)
	}
	return nil
}

// rescueCursor maps the collaborator's range onto the restored tree so it
// never references detached blocks.
func (e *Executor) rescueCursor() {
	if e.sink == nil || e.source == nil {
		return
	}
	if r, ok := rebaseRange(e.doc, e.source()); ok {
		e.sink.SetCursor(r)
	}
}

func rebaseRange(d *doc.Document, r doc.Range) (doc.Range, bool) {
	head, ok := rebasePosition(d, r.Head)
	if !ok {
		return doc.Range{}, false
	}
	tail, ok := rebasePosition(d, r.Tail)
	if !ok {
		return doc.Range{}, false
	}
	return doc.NewRange(head, tail), true
}

func rebasePosition(d *doc.Document, p doc.Position) (doc.Position, bool) {
	if p.Block == nil {
		return doc.Position{}, false
	}
	live := d.BlockByID(p.Block.ID())
	if live == nil {
		return doc.Position{}, false
	}
	offset := p.Offset
	if max := live.Length(); offset > max {
		offset = max
	}
	return doc.NewPosition(live, offset), true
}
