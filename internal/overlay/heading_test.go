package overlay

import "testing"

// On an 800x480 canvas the tape band starts at y0 = 480-16-20 = 444, the
// centre column is x=400 and the visible window is [240,560).

func TestDrawHeadingTape_CentreMarker(t *testing.T) {
	img := newCanvas(800, 480)
	DrawHeadingTape(img, 90)

	// Triangle: base at y=426, tip at y=436, centred on x=400.
	if img.RGBAAt(400, 430).G != 255 {
		t.Error("centre marker triangle not filled")
	}
}

func TestDrawHeadingTape_MajorTickAtCentre(t *testing.T) {
	img := newCanvas(800, 480)
	DrawHeadingTape(img, 90)

	// Heading 90 is a major tick: a 6px column at x=400 from y0.
	for y := 444; y <= 450; y++ {
		if img.RGBAAt(400, y).G != 255 {
			t.Fatalf("major tick missing at (400,%d)", y)
		}
	}
}

func TestDrawHeadingTape_TickSpacing(t *testing.T) {
	img := newCanvas(800, 480)
	DrawHeadingTape(img, 90)

	// Minor ticks every 5 degrees = every 20 px. Degree 95 at x=420.
	if img.RGBAAt(420, 444).G != 255 {
		t.Error("minor tick missing at +5 degrees")
	}
	// Degree 93 at x=412 is not a tick position.
	if img.RGBAAt(412, 444).G != 0 {
		t.Error("unexpected tick between 5-degree marks")
	}
}

func TestDrawHeadingTape_ClipsToWindow(t *testing.T) {
	img := newCanvas(800, 480)
	DrawHeadingTape(img, 90)

	// Nothing on the band row outside [240,560).
	for _, x := range []int{100, 239, 560, 700} {
		if img.RGBAAt(x, 444).G != 0 {
			t.Errorf("tick drawn outside tape window at x=%d", x)
		}
	}
}

func TestDrawHeadingTape_WrapsAroundNorth(t *testing.T) {
	img := newCanvas(800, 480)
	// Near north the tape shows 350..10 without panicking, and 0 is a
	// major tick 20px left of centre when heading is 5.
	DrawHeadingTape(img, 5)
	if img.RGBAAt(380, 444).G != 255 {
		t.Error("tick for wrapped degree 0 missing")
	}
}

func TestDrawHeadingTape_NegativeHeading(t *testing.T) {
	img := newCanvas(800, 480)
	DrawHeadingTape(img, -10) // equivalent to 350
	if img.RGBAAt(400, 444).G != 255 {
		t.Error("major tick missing for normalised negative heading")
	}
}
