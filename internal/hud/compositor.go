package hud

import (
	"image"
	"image/draw"

	"github.com/aipex-labs/hudlink/internal/detect"
	"github.com/aipex-labs/hudlink/internal/nav"
	"github.com/aipex-labs/hudlink/internal/overlay"
)

// Screen and inset geometry. The rear inset is the rear camera's 4:3 frame
// fitted to the screen and scaled down by PIPScale.
const (
	ScreenW = 800
	ScreenH = 480

	rearFullH = ScreenH
	rearFullW = rearFullH * 4 / 3

	// A third of the fitted rear frame, truncated: 640*0.33 and 480*0.33.
	PIPW = 211
	PIPH = 158
	PIPX = 10
	PIPY = 10
)

// pipBoxStyle annotates detections inside the small inset with thin boxes.
var pipBoxStyle = overlay.BoxStyle{Thickness: 2}

// Inputs is everything the compositor needs for one cycle. Front may be nil
// when the front camera has no frame yet; Rear is nil whenever the rear
// camera is absent or has not produced a frame.
type Inputs struct {
	Front       *image.RGBA
	FrontResult detect.Result
	Rear        *image.RGBA
	RearResult  detect.Result
	Nav         nav.State
	Battery     *int
}

// Canvases is the pair of composed outputs for one cycle. Display is the
// degraded-content canvas for the HUD glass (detections on black); Network
// carries the live camera background for remote subscribers. Both have
// already received the mount transform.
type Canvases struct {
	Display *image.RGBA
	Network *image.RGBA
}

// Compositor produces both canvases once per render cycle. It owns the PIP
// and alert state machines; Render must be called from a single goroutine.
type Compositor struct {
	PIP    *PIPController
	Alerts *Alerts
}

// NewCompositor builds a compositor with default hold and blink timing.
func NewCompositor() *Compositor {
	return &Compositor{
		PIP:    NewPIPController(0, nil),
		Alerts: NewAlerts(0, 0, 0, nil),
	}
}

// Render composes one cycle. Overlay order is fixed: background, front
// detections, battery, heading tape, nav text, rear inset, alert arrows. The
// arrows go last so nothing occludes them. Both canvases end with the same
// mount transform.
func (c *Compositor) Render(in Inputs) Canvases {
	display := c.renderDisplayBase(in.FrontResult)
	network := c.renderNetworkBase(in.Front, in.FrontResult)

	both := [2]*image.RGBA{display, network}
	for _, canvas := range both {
		overlay.DrawBattery(canvas, in.Battery)
		overlay.DrawHeadingTape(canvas, in.Nav.HeadingDeg)
		overlay.DrawNavInfo(canvas, overlay.NavInfo{
			Instruction:       in.Nav.Instruction,
			RemainingDistance: in.Nav.RemainingDistance,
			Speed:             in.Nav.Speed,
			ETA:               in.Nav.ETA,
		})
	}

	c.composeInset(both, in)

	// Alert arrows fire on rear detections whether or not the inset is
	// showing, and paint over everything else.
	c.Alerts.ObserveResult(in.RearResult.Detections)
	for _, canvas := range both {
		c.drawAlertArrows(canvas)
	}

	return Canvases{
		Display: overlay.MountTransform(display),
		Network: overlay.MountTransform(network),
	}
}

// renderDisplayBase draws the front detections on black at the result's
// native canvas size, then fits the screen.
func (c *Compositor) renderDisplayBase(res detect.Result) *image.RGBA {
	black := image.NewRGBA(image.Rect(0, 0, res.Width, res.Height))
	overlay.FillRect(black, black.Bounds(), overlay.Black)
	overlay.DrawDetections(black, res.Detections, overlay.DisplayBoxStyle)
	return overlay.Resize(black, ScreenW, ScreenH)
}

// renderNetworkBase copies the live front frame (black when absent) and
// annotates detections directly at screen scale.
func (c *Compositor) renderNetworkBase(front *image.RGBA, res detect.Result) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, ScreenW, ScreenH))
	if front != nil {
		fitted := overlay.Resize(front, ScreenW, ScreenH)
		draw.Draw(canvas, canvas.Bounds(), fitted, fitted.Bounds().Min, draw.Src)
	} else {
		overlay.FillRect(canvas, canvas.Bounds(), overlay.Black)
	}
	overlay.DrawDetections(canvas, res.Detections, overlay.StreamBoxStyle)
	return canvas
}

// composeInset runs the PIP state machine and pastes the inset on both
// canvases when visible. A missing rear frame counts as no detection so the
// hold window still decays.
func (c *Compositor) composeInset(canvases [2]*image.RGBA, in Inputs) {
	detected := in.Rear != nil && len(in.RearResult.Detections) > 0
	mode := c.PIP.Observe(detected)
	if mode == PIPHidden || in.Rear == nil {
		return
	}

	inset := overlay.Resize(in.Rear, PIPW, PIPH)
	if inset == in.Rear {
		// Resize may alias the source; the annotations below must not
		// write into the stored frame.
		clone := image.NewRGBA(inset.Bounds())
		copy(clone.Pix, inset.Pix)
		inset = clone
	}
	if mode == PIPAnnotated {
		overlay.StrokeRect(inset, inset.Bounds(), overlay.Red, 2)
		overlay.DrawDetections(inset, in.RearResult.Detections, pipBoxStyle)
	}

	// Paste clipped to the screen.
	dst := image.Rect(PIPX, PIPY, PIPX+PIPW, PIPY+PIPH)
	for _, canvas := range canvases {
		draw.Draw(canvas, dst.Intersect(canvas.Bounds()), inset, image.Point{}, draw.Src)
	}
}

// drawAlertArrows paints the blinking directional triangles at mid-screen
// height near each margin.
func (c *Compositor) drawAlertArrows(canvas *image.RGBA) {
	b := canvas.Bounds()
	w, h := b.Dx(), b.Dy()
	midY := h / 2

	side := w
	if h < side {
		side = h
	}
	arrowLen := int(float64(side) * 0.18)
	halfW := arrowLen / 2
	halfH := arrowLen / 3
	const margin = 20
	const thick = 4

	if c.Alerts.DrawOn(Left) {
		cx := margin + halfW
		overlay.StrokeTriangle(canvas,
			image.Point{X: cx + halfW, Y: midY - halfH},
			image.Point{X: cx + halfW, Y: midY + halfH},
			image.Point{X: cx - halfW, Y: midY},
			overlay.Red, thick)
	}
	if c.Alerts.DrawOn(Right) {
		cx := w - margin - halfW
		overlay.StrokeTriangle(canvas,
			image.Point{X: cx - halfW, Y: midY - halfH},
			image.Point{X: cx - halfW, Y: midY + halfH},
			image.Point{X: cx + halfW, Y: midY},
			overlay.Red, thick)
	}
}
