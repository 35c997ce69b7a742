package overlay

import (
	"image"
	"image/color"
	"testing"
)

func newCanvas(w, h int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

// countColor counts pixels exactly matching c.
func countColor(img *image.RGBA, c [4]uint8) int {
	b := img.Bounds()
	n := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p := img.RGBAAt(x, y)
			if p.R == c[0] && p.G == c[1] && p.B == c[2] && p.A == c[3] {
				n++
			}
		}
	}
	return n
}

func TestFillRect_Clips(t *testing.T) {
	img := newCanvas(10, 10)
	FillRect(img, image.Rect(-5, -5, 5, 5), Green)
	if got := countColor(img, [4]uint8{0, 255, 0, 255}); got != 25 {
		t.Errorf("filled %d pixels, want 25", got)
	}
}

func TestStrokeRect_GrowsInward(t *testing.T) {
	img := newCanvas(20, 20)
	StrokeRect(img, image.Rect(2, 2, 18, 18), Green, 2)

	// The stroke band must be inside the rectangle.
	if p := img.RGBAAt(2, 2); p.G != 255 {
		t.Error("corner pixel not stroked")
	}
	if p := img.RGBAAt(3, 3); p.G != 255 {
		t.Error("second stroke ring not painted")
	}
	if p := img.RGBAAt(4, 4); p.G != 0 {
		t.Error("interior pixel painted")
	}
	if p := img.RGBAAt(1, 1); p.G != 0 {
		t.Error("stroke escaped the rectangle")
	}
}

func TestVLine(t *testing.T) {
	img := newCanvas(10, 10)
	VLine(img, 3, 2, 7, Green, 1)
	for y := 2; y <= 7; y++ {
		if img.RGBAAt(3, y).G != 255 {
			t.Fatalf("pixel (3,%d) not painted", y)
		}
	}
	if img.RGBAAt(3, 1).G != 0 || img.RGBAAt(3, 8).G != 0 {
		t.Error("line overshot its endpoints")
	}
}

func TestFillTriangle_BothWindings(t *testing.T) {
	a := image.Point{X: 2, Y: 2}
	b := image.Point{X: 12, Y: 2}
	c := image.Point{X: 7, Y: 10}

	ccw := newCanvas(16, 16)
	FillTriangle(ccw, a, b, c, Green)
	cw := newCanvas(16, 16)
	FillTriangle(cw, b, a, c, Green)

	nCCW := countColor(ccw, [4]uint8{0, 255, 0, 255})
	nCW := countColor(cw, [4]uint8{0, 255, 0, 255})
	if nCCW == 0 {
		t.Fatal("triangle filled no pixels")
	}
	if nCCW != nCW {
		t.Errorf("winding changed coverage: ccw=%d cw=%d", nCCW, nCW)
	}
	// Apex pixel between the base corners must be inside.
	if ccw.RGBAAt(7, 5).G != 255 {
		t.Error("interior pixel not filled")
	}
}

func TestBlendRect_PartialOpacity(t *testing.T) {
	// 20% green over black is exactly the premultiplied source: G=51.
	img := newCanvas(4, 4)
	FillRect(img, img.Bounds(), Black)
	BlendRect(img, img.Bounds(), Green, 0.2)
	p := img.RGBAAt(1, 1)
	if p.G != 51 || p.R != 0 || p.B != 0 || p.A != 255 {
		t.Errorf("blend over black = %v, want {0 51 0 255}", p)
	}
}

func TestBlendRect_PreservesBackground(t *testing.T) {
	// A 20% tint must leave 80% of the background showing through:
	// 51 + 100*(255-51)/255 = 131 on the green channel, 80 on the rest.
	img := newCanvas(4, 4)
	FillRect(img, img.Bounds(), color.RGBA{R: 100, G: 100, B: 100, A: 255})
	BlendRect(img, img.Bounds(), Green, 0.2)
	p := img.RGBAAt(2, 2)
	if p.G != 131 {
		t.Errorf("green channel = %d, want 131", p.G)
	}
	if p.R != 80 || p.B != 80 {
		t.Errorf("background channels = (%d,%d), want (80,80)", p.R, p.B)
	}
}

func TestDrawText_PaintsPixels(t *testing.T) {
	img := newCanvas(100, 40)
	DrawText(img, "123", 5, 30, Green, navFace)
	if countColor(img, [4]uint8{0, 255, 0, 255}) == 0 {
		t.Error("text painted no pixels")
	}
}

func TestDrawTextStroke_AddsOutline(t *testing.T) {
	img := newCanvas(100, 40)
	DrawTextStroke(img, "123", 5, 30, Green, navFace)
	if countColor(img, [4]uint8{0, 0, 0, 255}) == 0 {
		t.Error("stroke painted no black outline pixels")
	}
	if countColor(img, [4]uint8{0, 255, 0, 255}) == 0 {
		t.Error("stroke painted no body pixels")
	}
}
