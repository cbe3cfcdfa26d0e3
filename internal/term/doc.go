// Package term is the tcell terminal host: it translates terminal key
// events into chord events, feeds them to the command engine, supplies
// the default text-editing behavior for events no handler consumes, and
// renders the document.
package term
