// Package doc provides the in-memory rich-document model: ordered content
// blocks (paragraphs, headings, list items, cards), inline text runs with
// markups, and positions/ranges over them.
//
// Offsets are rune offsets within a block's text. A soft line break counts
// one toward a block's length. Markers are contiguous and non-overlapping;
// the text primitives keep them normalized (adjacent runs with identical
// markup sets are merged, empty runs dropped).
//
// The model carries no locking. Mutation goes through the mutate package,
// which serializes batches; everything else only reads.
package doc
