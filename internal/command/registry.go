package command

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/inkwell/internal/input/key"
)

// Registry maps canonical chord descriptors to handlers. Registration
// order is preserved: when a chord is registered more than once, dispatch
// invokes the first registered handler and nothing else — there is no
// fallthrough between handlers.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string][]Handler)}
}

// Register adds a handler for a chord specification. The spec is
// normalized (any accepted spelling, any modifier order); malformed specs
// are rejected.
func (r *Registry) Register(spec string, h Handler) error {
	if h == nil {
		return fmt.Errorf("command: nil handler for chord %q", spec)
	}
	chord, err := key.NormalizeChord(spec)
	if err != nil {
		return fmt.Errorf("command: chord %q: %w", spec, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[chord] = append(r.handlers[chord], h)
	return nil
}

// RegisterFunc adds a handler function for a chord specification.
func (r *Registry) RegisterFunc(spec string, fn func(ctx *Context) Result) error {
	return r.Register(spec, HandlerFunc(fn))
}

// Unregister removes all handlers for a chord.
func (r *Registry) Unregister(spec string) {
	chord, err := key.NormalizeChord(spec)
	if err != nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.handlers, chord)
}

// Lookup returns the first registered handler for an already-normalized
// chord. Returns nil if no handler is registered.
func (r *Registry) Lookup(chord string) Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handlers := r.handlers[chord]
	if len(handlers) == 0 {
		return nil
	}
	return handlers[0]
}

// Has returns true if a handler is registered for the chord spec.
func (r *Registry) Has(spec string) bool {
	chord, err := key.NormalizeChord(spec)
	if err != nil {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers[chord]) > 0
}

// Chords returns all registered chords, sorted.
func (r *Registry) Chords() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	chords := make([]string, 0, len(r.handlers))
	for chord := range r.handlers {
		chords = append(chords, chord)
	}
	sort.Strings(chords)
	return chords
}
