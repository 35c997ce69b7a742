// Package nav resolves the navigation state shown on the HUD. Values arrive
// from two sources: the phone app link (preferred) and the inference
// collaborator's detection result (fallback). Heading is sticky: once a
// heading has been seen it persists until a newer one arrives.
package nav

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/aipex-labs/hudlink/internal/detect"
)

// Payload is the app link navigation message. Every field is optional.
type Payload struct {
	Heading           *float64 `json:"heading"`
	HeadingDeg        *float64 `json:"heading_deg"`
	Instruction       *string  `json:"instruction"`
	RemainingDistance *float64 `json:"remaining_distance"`
	Speed             *float64 `json:"speed"`
	ETA               *float64 `json:"eta"`
}

// ParsePayload decodes an app link message. Malformed text returns an error;
// the caller logs it and keeps the previous state.
func ParsePayload(data []byte) (Payload, error) {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return Payload{}, fmt.Errorf("parse nav payload: %w", err)
	}
	return p, nil
}

// NormalizeHeading wraps any real heading into [0,360).
func NormalizeHeading(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// State is the resolved navigation state for one render cycle.
type State struct {
	HeadingDeg        float64
	Instruction       *string
	RemainingDistance *float64
	Speed             *float64
	ETA               *float64
}

// Resolver merges app payloads and detection results into a State, keeping
// the last known heading across cycles where neither source carries one.
type Resolver struct {
	heading float64
}

// Resolve computes the state for one cycle. Heading precedence is app
// payload heading, then payload heading_deg, then the detection result, then
// the previously resolved heading. Every other field prefers the payload and
// falls back to the detection result.
func (r *Resolver) Resolve(p Payload, det detect.Result) State {
	switch {
	case p.Heading != nil:
		r.heading = NormalizeHeading(*p.Heading)
	case p.HeadingDeg != nil:
		r.heading = NormalizeHeading(*p.HeadingDeg)
	case det.Heading != nil:
		r.heading = NormalizeHeading(*det.Heading)
	}

	st := State{
		HeadingDeg:        r.heading,
		Instruction:       p.Instruction,
		RemainingDistance: p.RemainingDistance,
		Speed:             p.Speed,
		ETA:               p.ETA,
	}
	if st.Instruction == nil {
		st.Instruction = det.Instruction
	}
	if st.RemainingDistance == nil {
		st.RemainingDistance = det.RemainingDistance
	}
	if st.Speed == nil {
		st.Speed = det.Speed
	}
	if st.ETA == nil {
		st.ETA = det.ETA
	}
	return st
}

// Heading returns the last resolved heading in degrees.
func (r *Resolver) Heading() float64 {
	return r.heading
}
