package overlay

import (
	"fmt"
	"image"

	"github.com/aipex-labs/hudlink/internal/detect"
)

// BoxStyle controls how detection boxes are annotated. The HUD glass canvas
// uses plain thick boxes; the network canvas adds a translucent highlight
// and label plates for legibility over live video.
type BoxStyle struct {
	Thickness  int
	Highlight  bool
	LabelPlate bool
}

// DisplayBoxStyle is the style used on the driver-facing canvas.
var DisplayBoxStyle = BoxStyle{Thickness: 4}

// StreamBoxStyle is the style used on the subscriber canvas.
var StreamBoxStyle = BoxStyle{Thickness: 4, Highlight: true, LabelPlate: true}

// DrawDetections annotates every renderable detection on img. Boxes that
// fail validation against the canvas are skipped. The class label is centred
// above the box and the score below it, both clamped to the canvas.
func DrawDetections(img *image.RGBA, dets []detect.Detection, style BoxStyle) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if style.Thickness < 1 {
		style.Thickness = 1
	}

	for _, det := range dets {
		r, ok := det.Box.PixelRect(w, h)
		if !ok {
			continue
		}

		if style.Highlight {
			BlendRect(img, r, Green, 0.2)
		}
		StrokeRect(img, r, Green, style.Thickness)

		cx := (r.Min.X + r.Max.X) / 2

		class := det.Class
		if class == "" {
			class = "obj"
		}
		drawBoxLabel(img, class, cx, r.Min.Y-5, style.LabelPlate)

		score := fmt.Sprintf("%.2f", det.Score)
		th := TextHeight(labelFace)
		drawBoxLabel(img, score, cx, r.Max.Y+th+5, style.LabelPlate)
	}
}

// drawBoxLabel draws s centred on cx with its baseline at y, clamped so the
// text stays inside the canvas.
func drawBoxLabel(img *image.RGBA, s string, cx, y int, plate bool) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	tw := TextWidth(labelFace, s)
	th := TextHeight(labelFace)

	x := cx - tw/2
	if x < 0 {
		x = 0
	}
	if x > w-tw {
		x = w - tw
	}
	if y < th {
		y = th
	}
	if y > h-1 {
		y = h - 1
	}

	if plate {
		BlendRect(img, image.Rect(x-2, y-th-2, x+tw+2, y+4), Black, 0.6)
	}
	DrawText(img, s, x, y, Green, labelFace)
}
