package capture

import (
	"image"
	"image/color"
	"testing"
)

func TestStaticCamera(t *testing.T) {
	cam := NewStaticCamera(nil)
	if _, ok := cam.Capture(); ok {
		t.Error("camera without a frame should report none")
	}

	frame := image.NewRGBA(image.Rect(0, 0, 4, 4))
	cam.SetFrame(frame)
	got, ok := cam.Capture()
	if !ok || got != frame {
		t.Error("camera should return the set frame")
	}

	if err := cam.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if _, ok := cam.Capture(); ok {
		t.Error("closed camera should report no frame")
	}
}

func TestFrontDisplayOrientation(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 2))
	src.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})

	dst := FrontDisplayOrientation(src)
	if dst.RGBAAt(3, 1).R != 255 {
		t.Error("pixel (0,0) should land at (3,1) after 180 rotation")
	}
}

func TestRearInsetOrientation(t *testing.T) {
	// 180 rotation then mirror: (0,0) -> (3,1) -> (0,1).
	src := image.NewRGBA(image.Rect(0, 0, 4, 2))
	src.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})

	dst := RearInsetOrientation(src)
	if dst.RGBAAt(0, 1).R != 255 {
		t.Error("pixel (0,0) should land at (0,1) after rotate+mirror")
	}
}
