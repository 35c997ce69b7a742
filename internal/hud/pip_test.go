package hud

import (
	"testing"
	"time"
)

// fakeClock steps time manually for the state machine tests.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestPIPController_DetectionShowsAnnotated(t *testing.T) {
	clk := newFakeClock()
	p := NewPIPController(3*time.Second, clk.now)

	if got := p.Observe(true); got != PIPAnnotated {
		t.Errorf("mode = %v, want PIPAnnotated", got)
	}
}

func TestPIPController_HoldKeepsLiveThenHides(t *testing.T) {
	clk := newFakeClock()
	p := NewPIPController(3*time.Second, clk.now)

	p.Observe(true)

	// Within the hold window the inset stays up without annotation.
	for _, d := range []time.Duration{100 * time.Millisecond, time.Second, 2999 * time.Millisecond} {
		clk.t = newFakeClock().t.Add(d)
		if got := p.Observe(false); got != PIPLive {
			t.Errorf("at +%v: mode = %v, want PIPLive", d, got)
		}
	}

	// First cycle at exactly the hold boundary hides it.
	clk.t = newFakeClock().t.Add(3 * time.Second)
	if got := p.Observe(false); got != PIPHidden {
		t.Errorf("at hold boundary: mode = %v, want PIPHidden", got)
	}
}

func TestPIPController_HiddenBeforeFirstDetection(t *testing.T) {
	clk := newFakeClock()
	p := NewPIPController(3*time.Second, clk.now)
	if got := p.Observe(false); got != PIPHidden {
		t.Errorf("mode = %v, want PIPHidden before any detection", got)
	}
}

func TestPIPController_NewDetectionReArmsHold(t *testing.T) {
	clk := newFakeClock()
	p := NewPIPController(3*time.Second, clk.now)

	p.Observe(true)
	clk.advance(2 * time.Second)
	p.Observe(true)
	clk.advance(2 * time.Second)
	// 4s after the first detection but 2s after the second: still live.
	if got := p.Observe(false); got != PIPLive {
		t.Errorf("mode = %v, want PIPLive after re-arm", got)
	}
}
