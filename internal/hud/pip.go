package hud

import "time"

// PIPMode is the per-cycle rendering decision for the rear inset.
type PIPMode int

const (
	// PIPHidden draws no inset this cycle.
	PIPHidden PIPMode = iota
	// PIPLive draws the live rear frame without annotation.
	PIPLive
	// PIPAnnotated draws the rear frame with detection boxes and an alert
	// border.
	PIPAnnotated
)

// DefaultPIPHold is how long the inset stays visible after the last rear
// detection. The hold bridges single-frame detection dropouts so the inset
// does not flicker.
const DefaultPIPHold = 3 * time.Second

// PIPController decides the inset mode once per render cycle. It is owned by
// the render loop and needs no synchronisation.
type PIPController struct {
	hold          time.Duration
	now           func() time.Time
	lastDetection time.Time
}

// NewPIPController creates a controller with the given hold window. A zero
// hold selects DefaultPIPHold; now may be nil to use the wall clock.
func NewPIPController(hold time.Duration, now func() time.Time) *PIPController {
	if hold <= 0 {
		hold = DefaultPIPHold
	}
	if now == nil {
		now = time.Now
	}
	return &PIPController{hold: hold, now: now}
}

// Observe advances the controller by one cycle and returns the mode to
// render. detected reports whether the current rear result carries any
// detections.
func (p *PIPController) Observe(detected bool) PIPMode {
	t := p.now()
	if detected {
		p.lastDetection = t
		return PIPAnnotated
	}
	if !p.lastDetection.IsZero() && t.Sub(p.lastDetection) < p.hold {
		return PIPLive
	}
	return PIPHidden
}
