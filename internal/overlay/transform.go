package overlay

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// FlipHorizontal returns a new image mirrored around the vertical axis.
func FlipHorizontal(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.SetRGBA(b.Dx()-1-x, y, src.RGBAAt(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}

// Rotate180 returns a new image rotated by 180 degrees.
func Rotate180(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.SetRGBA(b.Dx()-1-x, b.Dy()-1-y, src.RGBAAt(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}

// Resize scales src to w×h with bilinear interpolation. When the size
// already matches, src is returned unchanged.
func Resize(src *image.RGBA, w, h int) *image.RGBA {
	b := src.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

// MountTransform applies the physical mount correction for the HUD glass: a
// horizontal mirror followed by a 180 degree rotation. Both output canvases
// receive the same transform so viewers see the same picture the driver does.
func MountTransform(src *image.RGBA) *image.RGBA {
	return Rotate180(FlipHorizontal(src))
}
