package detect

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseResult_Full(t *testing.T) {
	payload := `{
		"width": 640, "height": 640,
		"detections": [
			{"class": "car", "score": 0.91,
			 "bbox": {"x_min": 0.1, "y_min": 0.2, "x_max": 0.4, "y_max": 0.6}}
		],
		"heading_deg": 123.5,
		"instruction": "Turn left",
		"remaining_distance": 950,
		"speed": 22.5,
		"eta": 125
	}`

	got, err := ParseResult([]byte(payload))
	if err != nil {
		t.Fatalf("ParseResult failed: %v", err)
	}

	heading := 123.5
	instruction := "Turn left"
	dist := 950.0
	speed := 22.5
	eta := 125.0
	want := Result{
		Width:  640,
		Height: 640,
		Detections: []Detection{
			{Class: "car", Score: 0.91, Box: BBox{XMin: 0.1, YMin: 0.2, XMax: 0.4, YMax: 0.6}},
		},
		Heading:           &heading,
		Instruction:       &instruction,
		RemainingDistance: &dist,
		Speed:             &speed,
		ETA:               &eta,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestParseResult_DefaultsAndEmpty(t *testing.T) {
	got, err := ParseResult([]byte(`{}`))
	if err != nil {
		t.Fatalf("ParseResult failed: %v", err)
	}
	if got.Width != 640 || got.Height != 640 {
		t.Errorf("expected 640x640 defaults, got %dx%d", got.Width, got.Height)
	}
	if len(got.Detections) != 0 {
		t.Errorf("expected no detections, got %d", len(got.Detections))
	}
	if got.Heading != nil {
		t.Error("expected nil heading")
	}
}

func TestParseResult_HeadingFallback(t *testing.T) {
	got, err := ParseResult([]byte(`{"heading": 42}`))
	if err != nil {
		t.Fatalf("ParseResult failed: %v", err)
	}
	if got.Heading == nil || *got.Heading != 42 {
		t.Errorf("expected heading 42, got %v", got.Heading)
	}

	// heading_deg wins over heading.
	got, err = ParseResult([]byte(`{"heading": 42, "heading_deg": 99}`))
	if err != nil {
		t.Fatalf("ParseResult failed: %v", err)
	}
	if got.Heading == nil || *got.Heading != 99 {
		t.Errorf("expected heading 99, got %v", got.Heading)
	}
}

func TestParseResult_Malformed(t *testing.T) {
	if _, err := ParseResult([]byte(`not json`)); err == nil {
		t.Error("expected error for malformed payload")
	}
}

func TestBBox_PixelRect(t *testing.T) {
	tests := []struct {
		name  string
		box   BBox
		valid bool
	}{
		{"normal", BBox{0.1, 0.2, 0.4, 0.6}, true},
		{"full frame", BBox{0, 0, 1, 1}, true},
		{"zero width", BBox{0.5, 0.2, 0.5, 0.6}, false},
		{"inverted x", BBox{0.6, 0.2, 0.4, 0.6}, false},
		{"inverted y", BBox{0.1, 0.8, 0.4, 0.6}, false},
		{"negative min", BBox{-0.1, 0.2, 0.4, 0.6}, false},
		{"overflow max", BBox{0.1, 0.2, 1.4, 0.6}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := tt.box.PixelRect(640, 640)
			if ok != tt.valid {
				t.Fatalf("valid=%v, want %v", ok, tt.valid)
			}
			if ok && (r.Dx() <= 0 || r.Dy() <= 0) {
				t.Errorf("valid box produced empty rect %v", r)
			}
		})
	}
}

func TestBBox_PixelRect_ScalesToCanvas(t *testing.T) {
	r, ok := BBox{XMin: 0.1, YMin: 0.2, XMax: 0.4, YMax: 0.6}.PixelRect(640, 640)
	if !ok {
		t.Fatal("expected valid box")
	}
	if r.Min.X != 64 || r.Min.Y != 128 || r.Max.X != 256 || r.Max.Y != 384 {
		t.Errorf("expected (64,128)-(256,384), got %v", r)
	}
}

func TestBBox_CenterX(t *testing.T) {
	if c := (BBox{XMin: 0.25, XMax: 0.75}).CenterX(); c != 0.5 {
		t.Errorf("expected 0.5, got %f", c)
	}
	// Binary fractions keep midpoints exact; decimal ones don't, so allow
	// for float error.
	c := BBox{XMin: 0.2, XMax: 0.4}.CenterX()
	if math.Abs(c-0.3) > 1e-9 {
		t.Errorf("expected 0.3, got %f", c)
	}
}
