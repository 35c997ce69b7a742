// Package overlay implements the stateless HUD drawing routines: battery
// gauge, heading tape, navigation text block and detection annotation. All
// routines draw in place on an *image.RGBA canvas.
package overlay

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// HUD palette. The display is a monochrome-green HUD with red alerts.
var (
	Green = color.RGBA{G: 255, A: 255}
	Red   = color.RGBA{R: 255, A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black = color.RGBA{A: 255}
)

// Text faces roughly matching the three label sizes the HUD uses: tick
// labels on the heading tape, box/gauge labels, and the nav text lines.
var (
	tickFace  font.Face
	labelFace font.Face
	navFace   font.Face
)

func init() {
	ttf, err := opentype.Parse(goregular.TTF)
	if err != nil {
		panic("overlay: parse embedded font: " + err.Error())
	}
	mk := func(size float64) font.Face {
		f, err := opentype.NewFace(ttf, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			panic("overlay: build font face: " + err.Error())
		}
		return f
	}
	tickFace = mk(10)
	labelFace = mk(14)
	navFace = mk(22)
}

// FillRect fills r (clipped to the canvas) with c.
func FillRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	draw.Draw(img, r.Intersect(img.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
}

// BlendRect alpha-blends c over r with the given opacity in [0,1].
func BlendRect(img *image.RGBA, r image.Rectangle, c color.RGBA, opacity float64) {
	if opacity <= 0 {
		return
	}
	if opacity > 1 {
		opacity = 1
	}
	// color.RGBA is alpha-premultiplied, so every channel scales by the
	// opacity, not just alpha.
	over := color.RGBA{
		R: uint8(float64(c.R)*opacity + 0.5),
		G: uint8(float64(c.G)*opacity + 0.5),
		B: uint8(float64(c.B)*opacity + 0.5),
		A: uint8(float64(c.A)*opacity + 0.5),
	}
	draw.Draw(img, r.Intersect(img.Bounds()), image.NewUniform(over), image.Point{}, draw.Over)
}

// StrokeRect draws the outline of r with the given stroke thickness. The
// stroke grows inward from the rectangle edge.
func StrokeRect(img *image.RGBA, r image.Rectangle, c color.RGBA, thickness int) {
	if thickness < 1 {
		thickness = 1
	}
	// Top, bottom, left, right bands.
	FillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+thickness), c)
	FillRect(img, image.Rect(r.Min.X, r.Max.Y-thickness, r.Max.X, r.Max.Y), c)
	FillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+thickness, r.Max.Y), c)
	FillRect(img, image.Rect(r.Max.X-thickness, r.Min.Y, r.Max.X, r.Max.Y), c)
}

// VLine draws a vertical line segment from (x,y1) to (x,y2) inclusive.
func VLine(img *image.RGBA, x, y1, y2 int, c color.RGBA, thickness int) {
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	FillRect(img, image.Rect(x, y1, x+thickness, y2+1), c)
}

// Line draws a straight segment between two points using integer stepping,
// stamping a thickness×thickness square at each step.
func Line(img *image.RGBA, p0, p1 image.Point, c color.RGBA, thickness int) {
	if thickness < 1 {
		thickness = 1
	}
	dx := abs(p1.X - p0.X)
	dy := abs(p1.Y - p0.Y)
	steps := dx
	if dy > steps {
		steps = dy
	}
	if steps == 0 {
		stamp(img, p0, c, thickness)
		return
	}
	for i := 0; i <= steps; i++ {
		x := p0.X + (p1.X-p0.X)*i/steps
		y := p0.Y + (p1.Y-p0.Y)*i/steps
		stamp(img, image.Point{X: x, Y: y}, c, thickness)
	}
}

func stamp(img *image.RGBA, p image.Point, c color.RGBA, thickness int) {
	half := thickness / 2
	FillRect(img, image.Rect(p.X-half, p.Y-half, p.X-half+thickness, p.Y-half+thickness), c)
}

// FillTriangle fills the triangle p0-p1-p2 using an edge-function test over
// its bounding box.
func FillTriangle(img *image.RGBA, p0, p1, p2 image.Point, c color.RGBA) {
	minX := min3(p0.X, p1.X, p2.X)
	maxX := max3(p0.X, p1.X, p2.X)
	minY := min3(p0.Y, p1.Y, p2.Y)
	maxY := max3(p0.Y, p1.Y, p2.Y)

	b := img.Bounds()
	if minX < b.Min.X {
		minX = b.Min.X
	}
	if minY < b.Min.Y {
		minY = b.Min.Y
	}
	if maxX > b.Max.X-1 {
		maxX = b.Max.X - 1
	}
	if maxY > b.Max.Y-1 {
		maxY = b.Max.Y - 1
	}

	edge := func(ax, ay, bx, by, px, py int) int {
		return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
	}
	area := edge(p0.X, p0.Y, p1.X, p1.Y, p2.X, p2.Y)
	if area == 0 {
		return
	}
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edge(p0.X, p0.Y, p1.X, p1.Y, x, y)
			w1 := edge(p1.X, p1.Y, p2.X, p2.Y, x, y)
			w2 := edge(p2.X, p2.Y, p0.X, p0.Y, x, y)
			if area > 0 {
				if w0 >= 0 && w1 >= 0 && w2 >= 0 {
					img.SetRGBA(x, y, c)
				}
			} else {
				if w0 <= 0 && w1 <= 0 && w2 <= 0 {
					img.SetRGBA(x, y, c)
				}
			}
		}
	}
}

// StrokeTriangle draws the closed outline of the triangle p0-p1-p2.
func StrokeTriangle(img *image.RGBA, p0, p1, p2 image.Point, c color.RGBA, thickness int) {
	Line(img, p0, p1, c, thickness)
	Line(img, p1, p2, c, thickness)
	Line(img, p2, p0, c, thickness)
}

// DrawText draws s with its baseline origin at (x,y).
func DrawText(img *image.RGBA, s string, x, y int, c color.RGBA, face font.Face) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// DrawTextStroke draws s with a one-pixel black outline for contrast against
// arbitrary backgrounds, then the text itself in c.
func DrawTextStroke(img *image.RGBA, s string, x, y int, c color.RGBA, face font.Face) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			DrawText(img, s, x+dx, y+dy, Black, face)
		}
	}
	DrawText(img, s, x, y, c, face)
}

// TextWidth returns the advance width of s in pixels for the given face.
func TextWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// TextHeight returns the ascent of the face in pixels, which the layout code
// uses as the nominal text height above the baseline.
func TextHeight(face font.Face) int {
	return face.Metrics().Ascent.Ceil()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}
