// Package lua hosts user key-binding scripts.
//
// Scripts run in a sandboxed gopher-lua state: no io, os, debug, or
// package library, and no file loading primitives. The only surface is
// the global `inkwell` table, whose bind(chord, fn) registers a chord
// handler. When the chord fires, fn receives a context table describing
// the current block and range; any truthy return value consumes the
// event, everything else defers to the default behavior.
package lua
