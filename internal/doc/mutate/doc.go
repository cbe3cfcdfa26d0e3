// Package mutate applies structural edits to a document as atomic batches.
//
// A handler stages operations on a Batch; Run snapshots the document,
// applies the operations in order, and restores the snapshot if any
// operation fails, so a batch either applies completely (including the
// final cursor placement) or not at all. Batches never interleave.
package mutate
