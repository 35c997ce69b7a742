package overlay

import "image"

// Nav text block geometry. Two lines on each side of the lower canvas, kept
// above the heading tape by the larger bottom margin.
const (
	navLineHeight   = 40
	navSideMargin   = 12
	navBottomMargin = 60
)

// navInstructionMax is the longest instruction rendered verbatim; anything
// longer is truncated with an ellipsis so it cannot collide with the left
// column.
const navInstructionMax = 40

// NavInfo is the resolved navigation state drawn by DrawNavInfo. Nil fields
// render as "--" (or empty, for the instruction).
type NavInfo struct {
	Instruction       *string
	RemainingDistance *float64
	Speed             *float64
	ETA               *float64
}

// DrawNavInfo draws the four navigation text lines: distance and ETA bottom
// left, instruction and speed bottom right.
func DrawNavInfo(img *image.RGBA, nav NavInfo) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	y2 := h - navBottomMargin
	y1 := y2 - navLineHeight

	leftLine1 := "DIST: " + FormatDistance(nav.RemainingDistance)
	leftLine2 := "ETA : " + FormatETA(nav.ETA)
	DrawTextStroke(img, leftLine1, navSideMargin, y1, Green, navFace)
	DrawTextStroke(img, leftLine2, navSideMargin, y2, Green, navFace)

	instruction := ""
	if nav.Instruction != nil {
		instruction = truncateInstruction(*nav.Instruction)
	}

	rightLine1 := instruction
	rightLine2 := "SPD : " + FormatSpeed(nav.Speed)

	x1 := w - navSideMargin - TextWidth(navFace, rightLine1)
	x2 := w - navSideMargin - TextWidth(navFace, rightLine2)
	DrawTextStroke(img, rightLine1, x1, y1, Green, navFace)
	DrawTextStroke(img, rightLine2, x2, y2, Green, navFace)
}

// truncateInstruction caps an instruction at navInstructionMax runes. The
// count is in runes, not bytes: app instructions carry multi-byte characters
// and a byte slice could cut one in half.
func truncateInstruction(s string) string {
	r := []rune(s)
	if len(r) <= navInstructionMax {
		return s
	}
	return string(r[:navInstructionMax-3]) + "..."
}
