package event_test

import (
	"testing"

	"github.com/dshills/inkwell/internal/event"
)

func TestNotifyDeliversInOrder(t *testing.T) {
	n := event.NewNotifier()

	var order []int
	n.Subscribe(event.TopicEditLink, func(event.Topic, any) { order = append(order, 1) })
	n.Subscribe(event.TopicEditLink, func(event.Topic, any) { order = append(order, 2) })

	n.Notify(event.TopicEditLink, nil)

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("delivery order = %v, want [1 2]", order)
	}
}

func TestNotifyPayloadAndTopicFilter(t *testing.T) {
	n := event.NewNotifier()

	var got any
	calls := 0
	n.Subscribe(event.TopicCursorExitedTop, func(topic event.Topic, payload any) {
		if topic != event.TopicCursorExitedTop {
			t.Errorf("topic = %v, want cursor.exitedTop", topic)
		}
		got = payload
		calls++
	})

	n.Notify(event.TopicCursorExitedTop, "payload")
	n.Notify(event.TopicEditLink, "other")

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if got != "payload" {
		t.Errorf("payload = %v, want %q", got, "payload")
	}
}

func TestUnsubscribe(t *testing.T) {
	n := event.NewNotifier()

	calls := 0
	sub := n.Subscribe(event.TopicEditLink, func(event.Topic, any) { calls++ })
	n.Subscribe(event.TopicEditLink, func(event.Topic, any) {})

	n.Unsubscribe(sub)
	n.Notify(event.TopicEditLink, nil)

	if calls != 0 {
		t.Errorf("unsubscribed handler called %d times", calls)
	}
}
