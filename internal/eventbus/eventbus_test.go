package eventbus

import "testing"

func TestBusPublishSubscribe(t *testing.T) {
	bus := New()
	ch := bus.Subscribe()
	bus.Publish("hello")
	v := <-ch
	if v != "hello" {
		t.Fatalf("expected hello got %v", v)
	}
	bus.Unsubscribe(ch)
}

func TestBusClose(t *testing.T) {
	bus := New()
	ch1 := bus.Subscribe()
	ch2 := bus.Subscribe()
	bus.Close()
	if _, ok := <-ch1; ok {
		t.Fatalf("expected ch1 closed")
	}
	if _, ok := <-ch2; ok {
		t.Fatalf("expected ch2 closed")
	}
	// Publishing after close must not panic.
	bus.Publish("late")
	if ch := bus.Subscribe(); ch == nil {
		t.Fatalf("expected closed channel, got nil")
	}
}

func TestBusSlowSubscriberDropsEvents(t *testing.T) {
	bus := New()
	ch := bus.Subscribe()
	for i := 0; i < 100; i++ {
		bus.Publish(i)
	}
	// The buffer holds 16; the rest are dropped, not blocked on.
	if len(ch) != 16 {
		t.Fatalf("expected full buffer of 16, got %d", len(ch))
	}
	bus.Unsubscribe(ch)
}
