package extrude

import (
	"errors"
	"image/color"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

// darkPixels counts pixels darker than mid-gray.
func darkPixels(t *testing.T, curve *Polyline, size int) int {
	t.Helper()
	img, err := ProfilePreview(curve, size, 1e-6)
	if err != nil {
		t.Fatalf("ProfilePreview: %v", err)
	}
	if got := img.Bounds().Dx(); got != size {
		t.Fatalf("width = %d, want %d", got, size)
	}
	dark := 0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if g := color.GrayModel.Convert(img.At(x, y)).(color.Gray); g.Y < 128 {
				dark++
			}
		}
	}
	return dark
}

func TestProfilePreview_ClosedProfileFilled(t *testing.T) {
	const size = 64
	dark := darkPixels(t, unitSquare(), size)
	// The filled square covers the image minus the 10% margins:
	// roughly (0.8*size)^2 pixels.
	want := size * size * 64 / 100
	if dark < want*9/10 || dark > size*size {
		t.Errorf("filled pixels = %d, want about %d", dark, want)
	}
}

func TestProfilePreview_OpenProfileStroked(t *testing.T) {
	open := NewPolyline([]r3.Vec{{}, {X: 1}, {X: 1, Y: 1}}, false)
	dark := darkPixels(t, open, 64)
	if dark == 0 {
		t.Error("stroked preview is blank")
	}
	// A stroke covers far less than a fill.
	if dark > 64*64/4 {
		t.Errorf("stroked pixels = %d, expected a thin outline", dark)
	}
}

func TestProfilePreview_TiltedProfile(t *testing.T) {
	plane := NewPlane(r3.Vec{X: 1, Y: 2, Z: 3}, r3.Vec{X: 1, Y: 1, Z: 1})
	curve := BuildProfile(plane).Circle(0, 0, 1).Polyline()
	if dark := darkPixels(t, curve, 48); dark == 0 {
		t.Error("tilted circle preview is blank")
	}
}

func TestProfilePreview_Errors(t *testing.T) {
	zigzag := NewPolyline([]r3.Vec{
		{}, {X: 1, Z: 1}, {X: 1, Y: 1}, {Y: 1, Z: 1},
	}, true)
	if _, err := ProfilePreview(zigzag, 32, 1e-6); !errors.Is(err, ErrNotPlanar) {
		t.Errorf("err = %v, want ErrNotPlanar", err)
	}
	if _, err := ProfilePreview(nil, 32, 1e-6); !errors.Is(err, ErrPreviewFailed) {
		t.Errorf("nil curve err = %v, want ErrPreviewFailed", err)
	}
	if _, err := ProfilePreview(unitSquare(), 0, 1e-6); !errors.Is(err, ErrPreviewFailed) {
		t.Errorf("zero size err = %v, want ErrPreviewFailed", err)
	}
	degenerate := NewPolyline([]r3.Vec{{X: 1}, {X: 1}, {X: 1}}, false)
	if _, err := ProfilePreview(degenerate, 32, 1e-6); !errors.Is(err, ErrPreviewFailed) {
		t.Errorf("degenerate err = %v, want ErrPreviewFailed", err)
	}
}
