package hud

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/aipex-labs/hudlink/internal/detect"
	"github.com/aipex-labs/hudlink/internal/overlay"
)

func testCompositor(clk *fakeClock) *Compositor {
	return &Compositor{
		PIP:    NewPIPController(3*time.Second, clk.now),
		Alerts: NewAlerts(3*time.Second, 600*time.Millisecond, 0.05, clk.now),
	}
}

func solidFrame(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	overlay.FillRect(img, img.Bounds(), c)
	return img
}

// The mount transform is a vertical flip, so a pre-transform pixel (x,y)
// lands at (x, ScreenH-1-y).
func flipped(y int) int { return ScreenH - 1 - y }

func TestRender_CanvasDimensions(t *testing.T) {
	c := testCompositor(newFakeClock())
	out := c.Render(Inputs{FrontResult: detect.Result{Width: 640, Height: 640}})

	for name, img := range map[string]*image.RGBA{"display": out.Display, "network": out.Network} {
		b := img.Bounds()
		if b.Dx() != ScreenW || b.Dy() != ScreenH {
			t.Errorf("%s canvas is %dx%d, want %dx%d", name, b.Dx(), b.Dy(), ScreenW, ScreenH)
		}
	}
}

func TestRender_DisplayIsDetectionsOnBlack(t *testing.T) {
	c := testCompositor(newFakeClock())
	gray := color.RGBA{R: 100, G: 100, B: 100, A: 255}
	out := c.Render(Inputs{
		Front:       solidFrame(ScreenW, ScreenH, gray),
		FrontResult: detect.Result{Width: 640, Height: 640},
	})

	// Screen centre is clear of every overlay: display stays black while
	// the network canvas shows the live background.
	dp := out.Display.RGBAAt(400, flipped(240))
	if dp.R != 0 || dp.G != 0 || dp.B != 0 {
		t.Errorf("display centre should be black, got %v", dp)
	}
	np := out.Network.RGBAAt(400, flipped(240))
	if np.R < 80 || np.R > 120 {
		t.Errorf("network centre should carry the live background, got %v", np)
	}
}

func TestRender_FrontDetectionAppearsOnBothCanvases(t *testing.T) {
	c := testCompositor(newFakeClock())
	out := c.Render(Inputs{
		Front: solidFrame(ScreenW, ScreenH, color.RGBA{A: 255}),
		FrontResult: detect.Result{
			Width: 640, Height: 640,
			Detections: []detect.Detection{
				{Class: "car", Score: 0.91, Box: detect.BBox{XMin: 0.1, YMin: 0.2, XMax: 0.4, YMax: 0.6}},
			},
		},
	})

	// The box's top edge midpoint: source (160,130) scales to (200,97) on
	// the display canvas; on the network canvas the box draws at screen
	// scale with its top edge at rows 96-99.
	if p := out.Display.RGBAAt(200, flipped(97)); p.G < 80 {
		t.Errorf("display box edge not green: %v", p)
	}
	if p := out.Network.RGBAAt(200, flipped(97)); p.G != 255 {
		t.Errorf("network box edge not green: %v", p)
	}
}

func TestRender_InsetAnnotatedOnDetection(t *testing.T) {
	clk := newFakeClock()
	c := testCompositor(clk)
	blue := color.RGBA{B: 255, A: 255}

	out := c.Render(Inputs{
		FrontResult: detect.Result{Width: 640, Height: 640},
		Rear:        solidFrame(640, 480, blue),
		RearResult: detect.Result{
			Width: 640, Height: 480,
			Detections: []detect.Detection{
				{Class: "car", Score: 0.8, Box: detect.BBox{XMin: 0.4, YMin: 0.4, XMax: 0.6, YMax: 0.6}},
			},
		},
	})

	// Red alert border on the inset edge at (11,11).
	if p := out.Display.RGBAAt(11, flipped(11)); p.R != 255 || p.G != 0 {
		t.Errorf("annotated inset border should be red, got %v", p)
	}
	// Inset interior away from border and box stays rear-camera blue.
	if p := out.Display.RGBAAt(20, flipped(150)); p.B < 200 {
		t.Errorf("inset interior should show the rear frame, got %v", p)
	}
	// Both canvases carry the inset.
	if p := out.Network.RGBAAt(20, flipped(150)); p.B < 200 {
		t.Errorf("network inset missing, got %v", p)
	}
}

func TestRender_InsetLiveDuringHold(t *testing.T) {
	clk := newFakeClock()
	c := testCompositor(clk)
	blue := color.RGBA{B: 255, A: 255}
	rear := solidFrame(640, 480, blue)

	det := detect.Result{
		Width: 640, Height: 480,
		Detections: []detect.Detection{
			{Class: "car", Score: 0.8, Box: detect.BBox{XMin: 0.4, YMin: 0.4, XMax: 0.6, YMax: 0.6}},
		},
	}
	c.Render(Inputs{FrontResult: detect.Result{Width: 640, Height: 640}, Rear: rear, RearResult: det})

	clk.advance(time.Second)
	out := c.Render(Inputs{
		FrontResult: detect.Result{Width: 640, Height: 640},
		Rear:        rear,
		RearResult:  detect.Result{Width: 640, Height: 480},
	})

	// Live passthrough: inset present, no red border.
	if p := out.Display.RGBAAt(11, flipped(11)); p.R == 255 {
		t.Errorf("live inset must not carry the alert border, got %v", p)
	}
	if p := out.Display.RGBAAt(20, flipped(150)); p.B < 200 {
		t.Errorf("inset should stay visible inside the hold window, got %v", p)
	}
}

func TestRender_InsetHiddenAfterHold(t *testing.T) {
	clk := newFakeClock()
	c := testCompositor(clk)
	rear := solidFrame(640, 480, color.RGBA{B: 255, A: 255})

	det := detect.Result{
		Width: 640, Height: 480,
		Detections: []detect.Detection{
			{Class: "car", Score: 0.8, Box: detect.BBox{XMin: 0.4, YMin: 0.4, XMax: 0.6, YMax: 0.6}},
		},
	}
	c.Render(Inputs{FrontResult: detect.Result{Width: 640, Height: 640}, Rear: rear, RearResult: det})

	clk.advance(3 * time.Second)
	out := c.Render(Inputs{
		FrontResult: detect.Result{Width: 640, Height: 640},
		Rear:        rear,
		RearResult:  detect.Result{Width: 640, Height: 480},
	})

	if p := out.Display.RGBAAt(20, flipped(150)); p.B > 100 {
		t.Errorf("inset should be hidden after the hold expires, got %v", p)
	}
}

func TestRender_AlertArrowIndependentOfInset(t *testing.T) {
	clk := newFakeClock()
	c := testCompositor(clk)

	// A left-side rear detection with no rear frame: no inset can be
	// drawn, but the alert arrow still fires.
	out := c.Render(Inputs{
		FrontResult: detect.Result{Width: 640, Height: 640},
		RearResult: detect.Result{
			Width: 640, Height: 480,
			Detections: []detect.Detection{
				{Class: "car", Score: 0.8, Box: detect.BBox{XMin: 0.1, YMin: 0.4, XMax: 0.3, YMax: 0.6}},
			},
		},
	})

	// Left arrow tip at pre-transform (20,240); the vertical stroke sits
	// at x = 20 + 2*halfW = 106. Probe the tip.
	if p := out.Display.RGBAAt(20, flipped(240)); p.R != 255 {
		t.Errorf("left alert arrow missing, got %v", p)
	}
	if p := out.Network.RGBAAt(20, flipped(240)); p.R != 255 {
		t.Errorf("left alert arrow missing on network canvas, got %v", p)
	}
}

func TestRender_DoesNotMutateRearFrame(t *testing.T) {
	clk := newFakeClock()
	c := testCompositor(clk)

	// Rear frame already at inset size exercises the aliasing guard.
	rear := solidFrame(PIPW, PIPH, color.RGBA{B: 255, A: 255})
	c.Render(Inputs{
		FrontResult: detect.Result{Width: 640, Height: 640},
		Rear:        rear,
		RearResult: detect.Result{
			Detections: []detect.Detection{
				{Class: "car", Score: 0.8, Box: detect.BBox{XMin: 0.4, YMin: 0.4, XMax: 0.6, YMax: 0.6}},
			},
		},
	})

	if p := rear.RGBAAt(1, 1); p.R != 0 || p.B != 255 {
		t.Errorf("stored rear frame was mutated: %v", p)
	}
}
