package overlay

import (
	"fmt"
	"image"
)

// Battery gauge geometry, anchored to the top-right corner of the canvas.
const (
	battWidth       = 70
	battHeight      = 18
	battMargin      = 8
	battHeadWidth   = 5
	battInnerMargin = 3
	battCells       = 4
)

// DrawBattery draws the battery gauge in the top-right corner. level is the
// charge percentage; nil means the reading is unavailable and the gauge is
// drawn empty with a "--%" label.
func DrawBattery(img *image.RGBA, level *int) {
	w := img.Bounds().Dx()

	percentText := "--%"
	levelVal := 0
	if level != nil {
		levelVal = *level
		if levelVal < 0 {
			levelVal = 0
		}
		if levelVal > 100 {
			levelVal = 100
		}
		percentText = fmt.Sprintf("%d%%", levelVal)
	}

	x2 := w - battMargin
	x1 := x2 - battWidth
	y1 := battMargin
	y2 := y1 + battHeight

	// Body outline and the positive terminal head.
	StrokeRect(img, image.Rect(x1, y1, x2, y2), Green, 2)
	FillRect(img, image.Rect(x2, y1+battHeight/4, x2+battHeadWidth, y2-battHeight/4), Green)

	// White inner well, then the green fill proportional to charge.
	ix1 := x1 + battInnerMargin
	ix2 := x2 - battInnerMargin
	iy1 := y1 + battInnerMargin
	iy2 := y2 - battInnerMargin
	FillRect(img, image.Rect(ix1, iy1, ix2, iy2), White)

	innerWidth := ix2 - ix1
	fillW := innerWidth * levelVal / 100
	if fillW > 0 {
		FillRect(img, image.Rect(ix1, iy1, ix1+fillW, iy2), Green)
	}

	// Cell separators.
	for i := 1; i < battCells; i++ {
		x := ix1 + innerWidth*i/battCells
		VLine(img, x, iy1, iy2-1, Black, 1)
	}

	// Percentage label to the left of the gauge.
	tw := TextWidth(labelFace, percentText)
	th := TextHeight(labelFace)
	textX := x1 - tw - 8
	textY := y1 + th + 2
	DrawTextStroke(img, percentText, textX, textY, Green, labelFace)
}
