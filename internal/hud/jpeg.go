package hud

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
)

// jpegQuality matches the quality the subscribers were tuned against.
const jpegQuality = 85

// EncodeJPEG encodes the canvas for network distribution.
func EncodeJPEG(img *image.RGBA) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode hud frame: %w", err)
	}
	return buf.Bytes(), nil
}
