package overlay

import (
	"fmt"
	"image"
	"math"
)

// Heading tape geometry. The tape is a fixed-width band near the bottom of
// the canvas: 4 pixels per degree, ticks every 5 degrees, labelled ticks
// every 10, with a filled triangle marking the current heading at centre.
const (
	headingBandHeight   = 16
	headingPxPerDeg     = 4
	headingBottomMargin = 20
	headingTriHalfBase  = 6
	headingTriHeight    = 10
)

// DrawHeadingTape draws the scrolling compass tape. headingDeg is the current
// heading in degrees; any real value is accepted and wrapped to [0,360).
func DrawHeadingTape(img *image.RGBA, headingDeg float64) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	sideMargin := int(float64(w) * 0.30)
	leftBound := sideMargin
	rightBound := w - sideMargin
	centerX := w / 2
	y0 := h - headingBandHeight - headingBottomMargin

	usableW := rightBound - leftBound
	maxOffset := usableW/2/headingPxPerDeg + 2

	for offset := -maxOffset; offset <= maxOffset; offset++ {
		deg := math.Mod(headingDeg+float64(offset), 360)
		if deg < 0 {
			deg += 360
		}
		x := centerX + offset*headingPxPerDeg
		if x < leftBound || x >= rightBound {
			continue
		}

		dInt := int(math.Round(deg)) % 360
		drawTick := false
		length := headingBandHeight - 16
		if dInt%5 == 0 {
			length = headingBandHeight - 14
			drawTick = true
		}
		if dInt%10 == 0 {
			length = headingBandHeight - 10
			drawTick = true
		}
		if !drawTick {
			continue
		}

		VLine(img, x, y0, y0+length, Green, 1)
		if dInt%10 == 0 {
			label := fmt.Sprintf("%d", dInt)
			tw := TextWidth(tickFace, label)
			th := TextHeight(tickFace)
			DrawText(img, label, x-tw/2, y0+length+th+2, Green, tickFace)
		}
	}

	// Centre marker: downward-pointing triangle above the tape.
	const offsetAboveScale = 8
	baseY := y0 - offsetAboveScale - headingTriHeight
	if baseY < 0 {
		baseY = 0
	}
	tipY := baseY + headingTriHeight
	FillTriangle(img,
		image.Point{X: centerX - headingTriHalfBase, Y: baseY},
		image.Point{X: centerX + headingTriHalfBase, Y: baseY},
		image.Point{X: centerX, Y: tipY},
		Green)

	// Current heading numeral above the marker.
	cur := int(math.Round(headingDeg)) % 360
	if cur < 0 {
		cur += 360
	}
	curLabel := fmt.Sprintf("%d", cur)
	tw := TextWidth(labelFace, curLabel)
	th := TextHeight(labelFace)
	ty := baseY - 6
	if ty < th+2 {
		ty = th + 2
	}
	DrawTextStroke(img, curLabel, centerX-tw/2, ty, Green, labelFace)
}
