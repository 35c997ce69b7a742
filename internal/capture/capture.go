// Package capture adapts the camera hardware to the render loop. Each
// camera produces frames into a latest-frame mailbox: a new frame replaces
// the previous one and a slow consumer never queues stale video.
package capture

import (
	"image"
	"sync"

	"github.com/aipex-labs/hudlink/internal/overlay"
)

// Camera is the adapter the render loop consumes. Capture returns the most
// recent frame, or false when none has been produced yet. Implementations
// own the returned image; callers must not mutate it.
type Camera interface {
	Capture() (*image.RGBA, bool)
	Close() error
}

// FrontDisplayOrientation corrects the front camera's mounting for on-screen
// use: the module is installed upside down.
func FrontDisplayOrientation(src *image.RGBA) *image.RGBA {
	return overlay.Rotate180(src)
}

// RearInsetOrientation corrects the rear camera for the inset: upside-down
// mounting plus a mirror so the inset reads like a rear-view mirror.
func RearInsetOrientation(src *image.RGBA) *image.RGBA {
	return overlay.FlipHorizontal(overlay.Rotate180(src))
}

// StaticCamera serves a fixed frame. It stands in for absent hardware and
// keeps the pipeline renderable in bench setups.
type StaticCamera struct {
	mu     sync.Mutex
	frame  *image.RGBA
	closed bool
}

// NewStaticCamera creates a camera that always returns frame. A nil frame
// produces a camera that never has a frame.
func NewStaticCamera(frame *image.RGBA) *StaticCamera {
	return &StaticCamera{frame: frame}
}

// SetFrame replaces the served frame.
func (c *StaticCamera) SetFrame(frame *image.RGBA) {
	c.mu.Lock()
	c.frame = frame
	c.mu.Unlock()
}

// Capture returns the fixed frame.
func (c *StaticCamera) Capture() (*image.RGBA, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.frame == nil {
		return nil, false
	}
	return c.frame, true
}

// Close marks the camera closed; later captures report no frame.
func (c *StaticCamera) Close() error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	return nil
}
