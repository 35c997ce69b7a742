package hud

import (
	"time"

	"github.com/aipex-labs/hudlink/internal/detect"
)

// Side identifies a directional alert.
type Side int

const (
	Left Side = iota
	Right
)

// Alert timing defaults. A trigger keeps its side active for the hold
// window; while active the arrow flashes with a 50% duty cycle.
const (
	DefaultAlertHold   = 3 * time.Second
	DefaultBlinkPeriod = 600 * time.Millisecond
	DefaultDeadband    = 0.05
)

// Alerts is the left/right directional alert state machine. Each side is
// independent: a rear detection whose horizontal centre falls outside the
// deadband around mid-frame re-arms that side's hold window. Owned by the
// render loop; no synchronisation.
type Alerts struct {
	hold        time.Duration
	blinkPeriod time.Duration
	deadband    float64
	now         func() time.Time

	lastTrigger [2]time.Time
}

// NewAlerts creates the state machine with default timing where zero values
// are given. now may be nil to use the wall clock.
func NewAlerts(hold, blinkPeriod time.Duration, deadband float64, now func() time.Time) *Alerts {
	if hold <= 0 {
		hold = DefaultAlertHold
	}
	if blinkPeriod <= 0 {
		blinkPeriod = DefaultBlinkPeriod
	}
	if deadband <= 0 {
		deadband = DefaultDeadband
	}
	if now == nil {
		now = time.Now
	}
	return &Alerts{hold: hold, blinkPeriod: blinkPeriod, deadband: deadband, now: now}
}

// Observe evaluates one rear detection. Centres inside the deadband trigger
// neither side.
func (a *Alerts) Observe(centerNorm float64) {
	t := a.now()
	switch {
	case centerNorm < 0.5-a.deadband:
		a.lastTrigger[Left] = t
	case centerNorm > 0.5+a.deadband:
		a.lastTrigger[Right] = t
	}
}

// ObserveResult evaluates every renderable detection in a rear result.
// Detections with degenerate boxes are ignored, matching the renderer.
func (a *Alerts) ObserveResult(dets []detect.Detection) {
	for _, d := range dets {
		b := d.Box
		if b.XMax <= b.XMin || b.YMax <= b.YMin || b.XMin < 0 || b.YMin < 0 || b.XMax > 1 || b.YMax > 1 {
			continue
		}
		a.Observe(b.CenterX())
	}
}

// Active reports whether the side is within its hold window.
func (a *Alerts) Active(s Side) bool {
	last := a.lastTrigger[s]
	return !last.IsZero() && a.now().Sub(last) < a.hold
}

// DrawOn reports whether the side's arrow should be painted this cycle:
// active, and in the first half of the blink period.
func (a *Alerts) DrawOn(s Side) bool {
	last := a.lastTrigger[s]
	if last.IsZero() {
		return false
	}
	age := a.now().Sub(last)
	if age >= a.hold {
		return false
	}
	return age%a.blinkPeriod < a.blinkPeriod/2
}
