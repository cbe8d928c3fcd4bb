package eventbus

import "testing"

func TestPublishReachesAllSubscribers(t *testing.T) {
	b := New[int]()
	first := b.Subscribe()
	second := b.Subscribe()

	b.Publish(42)

	if got := <-first; got != 42 {
		t.Fatalf("first subscriber got %d", got)
	}
	if got := <-second; got != 42 {
		t.Fatalf("second subscriber got %d", got)
	}
}

func TestPublishSkipsFullSubscriber(t *testing.T) {
	b := New[int]()
	slow := b.Subscribe()

	// Fill the buffer, then one more. The extra event is dropped rather than
	// blocking the publisher.
	for i := 0; i < cap(slow)+1; i++ {
		b.Publish(i)
	}

	if got := len(slow); got != cap(slow) {
		t.Fatalf("buffered %d events, want %d", got, cap(slow))
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	b := New[string]()
	sub := b.Subscribe()
	b.Unsubscribe(sub)

	if _, ok := <-sub; ok {
		t.Fatalf("channel should be closed after unsubscribe")
	}

	// Publishing afterwards must not panic.
	b.Publish("late")
}

func TestCloseDrainsCleanly(t *testing.T) {
	b := New[int]()
	sub := b.Subscribe()
	b.Publish(1)
	b.Close()

	if got, ok := <-sub; !ok || got != 1 {
		t.Fatalf("buffered event lost on close: %d %v", got, ok)
	}
	if _, ok := <-sub; ok {
		t.Fatalf("channel should be closed")
	}

	// Close is idempotent and post-close use is inert.
	b.Close()
	b.Publish(2)
	if late := b.Subscribe(); func() bool { _, ok := <-late; return ok }() {
		t.Fatalf("post-close subscription must be closed immediately")
	}
}
