package hudstream

import "testing"

func TestRegistry_ConnectDisconnect(t *testing.T) {
	r := NewRegistry()

	sub := r.Connect(0)
	if sub.ID() == "" {
		t.Fatal("subscriber should get an id")
	}
	if got := r.Stats().Subscribers; got != 1 {
		t.Errorf("subscribers = %d, want 1", got)
	}

	r.Disconnect(sub.ID())
	if got := r.Stats().Subscribers; got != 0 {
		t.Errorf("subscribers = %d, want 0", got)
	}

	// Unknown id is a no-op, not a negative count.
	r.Disconnect("nope")
	if got := r.Stats().Subscribers; got != 0 {
		t.Errorf("subscribers = %d after bogus disconnect, want 0", got)
	}
}

func TestRegistry_PublishFanOut(t *testing.T) {
	r := NewRegistry()
	a := r.Connect(0)
	b := r.Connect(10)

	r.Publish([]byte("frame"), 1000)

	for name, sub := range map[string]*Subscriber{"a": a, "b": b} {
		select {
		case msg := <-sub.Frames():
			if string(msg.JPEG) != "frame" || msg.TS != 1000 {
				t.Errorf("%s received wrong frame: %q ts=%d", name, msg.JPEG, msg.TS)
			}
		default:
			t.Errorf("%s received nothing", name)
		}
	}
}

func TestRegistry_QueueFullDropsSilently(t *testing.T) {
	r := NewRegistry()
	slow := r.Connect(0)

	// A stalled subscriber holds every frame up to capacity, then drops.
	for ts := int64(1); ts <= QueueDepth+3; ts++ {
		r.Publish([]byte("f"), ts)
	}

	if got := len(slow.Frames()); got != QueueDepth {
		t.Errorf("queued = %d, want %d", got, QueueDepth)
	}
	if got := r.Stats().FramesDropped; got != 3 {
		t.Errorf("dropped = %d, want 3", got)
	}

	// The frames that survived are the oldest, in order.
	for want := int64(1); want <= QueueDepth; want++ {
		msg := <-slow.Frames()
		if msg.TS != want {
			t.Fatalf("frame ts = %d, want %d", msg.TS, want)
		}
	}
}

func TestRegistry_DropIsPerSubscriber(t *testing.T) {
	r := NewRegistry()
	slow := r.Connect(0)
	fast := r.Connect(0)

	for ts := int64(1); ts <= QueueDepth+1; ts++ {
		r.Publish([]byte("f"), ts)
		// Fast consumer keeps up.
		<-fast.Frames()
	}

	if got := len(slow.Frames()); got != QueueDepth {
		t.Errorf("slow queued = %d, want %d", got, QueueDepth)
	}
	if got := len(fast.Frames()); got != 0 {
		t.Errorf("fast should have consumed everything, %d left", got)
	}
	if got := r.Stats().FramesDropped; got != 1 {
		t.Errorf("dropped = %d, want 1 (slow subscriber only)", got)
	}
}

func TestRegistry_PublishWithNoSubscribers(t *testing.T) {
	r := NewRegistry()
	r.Publish([]byte("f"), 1)
	if got := r.Stats().FramesPublished; got != 1 {
		t.Errorf("published = %d, want 1", got)
	}
}
