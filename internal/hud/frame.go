// Package hud holds the stateful heart of the display pipeline: the shared
// snapshot store fed by the capture goroutines, the picture-in-picture hold
// logic, the directional alert state machine and the dual-canvas compositor.
// Everything except the store is single-goroutine and owned by the render
// loop.
package hud

import (
	"image"
	"time"
)

// Frame is one captured video frame. Frames are immutable once stored:
// producers hand over a fresh buffer and never touch it again.
type Frame struct {
	Image      *image.RGBA
	CapturedAt time.Time
}

// Clone returns a deep copy of the frame's pixels.
func (f *Frame) Clone() *Frame {
	if f == nil {
		return nil
	}
	img := image.NewRGBA(f.Image.Bounds())
	copy(img.Pix, f.Image.Pix)
	return &Frame{Image: img, CapturedAt: f.CapturedAt}
}
