// Package detect defines the detection records received from the remote
// inference collaborator and the boundary parsing that validates them. The
// payload is mapping-shaped with optional keys; everything is normalised
// into explicit records here so downstream code never re-checks shape.
package detect

import (
	"encoding/json"
	"fmt"
	"image"
)

// BBox is a normalised bounding box with coordinates as fractions of the
// frame width/height in [0,1].
type BBox struct {
	XMin float64 `json:"x_min"`
	YMin float64 `json:"y_min"`
	XMax float64 `json:"x_max"`
	YMax float64 `json:"y_max"`
}

// CenterX returns the normalised horizontal centre of the box.
func (b BBox) CenterX() float64 {
	return (b.XMin + b.XMax) / 2
}

// PixelRect scales the box to a w×h canvas. The second return reports
// whether the box is renderable: it must have positive extent in both axes
// and lie entirely within the canvas after scaling. Invalid boxes are
// silently skipped by the renderer.
func (b BBox) PixelRect(w, h int) (image.Rectangle, bool) {
	x1 := int(b.XMin * float64(w))
	y1 := int(b.YMin * float64(h))
	x2 := int(b.XMax * float64(w))
	y2 := int(b.YMax * float64(h))
	if x2 <= x1 || y2 <= y1 || x1 < 0 || y1 < 0 || x2 > w || y2 > h {
		return image.Rectangle{}, false
	}
	return image.Rect(x1, y1, x2, y2), true
}

// Detection is one detected object.
type Detection struct {
	Class string  `json:"class"`
	Score float64 `json:"score"`
	Box   BBox    `json:"bbox"`
}

// Result is one detection cycle from the inference collaborator. Width and
// Height are the canvas dimensions the boxes are normalised against. The
// optional navigation fields are fallbacks used when the app link carries no
// fresher values.
type Result struct {
	Width      int
	Height     int
	Detections []Detection

	Heading           *float64
	Instruction       *string
	RemainingDistance *float64
	Speed             *float64
	ETA               *float64
}

// defaultCanvas is assumed when the payload omits its canvas dimensions.
const defaultCanvas = 640

// wireResult mirrors the collaborator's JSON shape with every key optional.
type wireResult struct {
	Width      *int        `json:"width"`
	Height     *int        `json:"height"`
	Detections []Detection `json:"detections"`

	Heading           *float64 `json:"heading"`
	HeadingDeg        *float64 `json:"heading_deg"`
	Instruction       *string  `json:"instruction"`
	RemainingDistance *float64 `json:"remaining_distance"`
	Speed             *float64 `json:"speed"`
	ETA               *float64 `json:"eta"`
}

// ParseResult validates a raw collaborator payload into a Result. Missing
// canvas dimensions default to 640. heading_deg wins over heading when both
// are present.
func ParseResult(data []byte) (Result, error) {
	var w wireResult
	if err := json.Unmarshal(data, &w); err != nil {
		return Result{}, fmt.Errorf("parse detection result: %w", err)
	}
	res := Result{
		Width:             defaultCanvas,
		Height:            defaultCanvas,
		Detections:        w.Detections,
		Instruction:       w.Instruction,
		RemainingDistance: w.RemainingDistance,
		Speed:             w.Speed,
		ETA:               w.ETA,
	}
	if w.Width != nil && *w.Width > 0 {
		res.Width = *w.Width
	}
	if w.Height != nil && *w.Height > 0 {
		res.Height = *w.Height
	}
	switch {
	case w.HeadingDeg != nil:
		res.Heading = w.HeadingDeg
	case w.Heading != nil:
		res.Heading = w.Heading
	}
	return res, nil
}

// Provider is the consumed inference collaborator. DetectionResult returns
// the most recent result and whether one has ever been received; callers
// treat a false return as an empty result.
type Provider interface {
	DetectionResult() (Result, bool)
}
