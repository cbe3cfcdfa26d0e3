// Package event delivers the engine's out-of-band notifications to host
// collaborators: signals that carry no reply and cause no mutation.
//
// Delivery is synchronous, on the caller's goroutine, in subscription
// order. The engine dispatches one key event at a time, so handlers never
// run concurrently.
package event

import (
	"sync"

	"github.com/google/uuid"
)

// Topic identifies a notification kind.
type Topic string

const (
	// TopicCursorExitedTop is emitted when UP or LEFT is pressed at the
	// true start of the document. Payload: the current doc.Range.
	TopicCursorExitedTop Topic = "cursor.exitedTop"

	// TopicEditLink is emitted when the edit-link chord fires.
	// Payload: the current doc.Range.
	TopicEditLink Topic = "link.edit"
)

// Handler receives a notification.
type Handler func(topic Topic, payload any)

// Subscription identifies a registered handler.
type Subscription struct {
	id    uuid.UUID
	topic Topic
}

// ID returns the subscription's unique identifier.
func (s Subscription) ID() uuid.UUID { return s.id }

// Topic returns the subscribed topic.
func (s Subscription) Topic() Topic { return s.topic }

type entry struct {
	id uuid.UUID
	fn Handler
}

// Notifier fans notifications out to subscribers.
type Notifier struct {
	mu   sync.RWMutex
	subs map[Topic][]entry
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[Topic][]entry)}
}

// Subscribe registers a handler for a topic.
func (n *Notifier) Subscribe(topic Topic, fn Handler) Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := uuid.New()
	n.subs[topic] = append(n.subs[topic], entry{id: id, fn: fn})
	return Subscription{id: id, topic: topic}
}

// Unsubscribe removes a previously registered handler.
func (n *Notifier) Unsubscribe(sub Subscription) {
	n.mu.Lock()
	defer n.mu.Unlock()

	entries := n.subs[sub.topic]
	for i, e := range entries {
		if e.id == sub.id {
			n.subs[sub.topic] = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}

// Notify delivers a notification to all subscribers of the topic, in
// subscription order, on the caller's goroutine.
func (n *Notifier) Notify(topic Topic, payload any) {
	n.mu.RLock()
	entries := make([]entry, len(n.subs[topic]))
	copy(entries, n.subs[topic])
	n.mu.RUnlock()

	for _, e := range entries {
		e.fn(topic, payload)
	}
}
