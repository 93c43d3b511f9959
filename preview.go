package extrude

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// ErrPreviewFailed reports that no preview could be rendered.
var ErrPreviewFailed = errors.New("extrude: preview failed")

// ProfilePreview renders a top-down thumbnail of the profile curve,
// projected into its own fitted plane. Closed profiles are filled,
// open profiles are stroked. The image is size x size pixels with the
// profile centered and scaled to fit.
func ProfilePreview(curve *Polyline, size int, tol float64) (image.Image, error) {
	if curve == nil || !curve.IsValid() || size <= 0 {
		return nil, ErrPreviewFailed
	}
	plane, ok := curve.FitPlane(tol)
	if !ok {
		return nil, ErrNotPlanar
	}

	pts := curve.Points()
	us := make([]float64, len(pts))
	vs := make([]float64, len(pts))
	minU, minV := math.Inf(1), math.Inf(1)
	maxU, maxV := math.Inf(-1), math.Inf(-1)
	for i, pt := range pts {
		us[i], vs[i] = plane.ClosestPoint(pt)
		minU, maxU = math.Min(minU, us[i]), math.Max(maxU, us[i])
		minV, maxV = math.Min(minV, vs[i]), math.Max(maxV, vs[i])
	}

	extent := math.Max(maxU-minU, maxV-minV)
	if extent < ZeroTolerance {
		return nil, ErrPreviewFailed
	}
	margin := 0.1 * float64(size)
	scale := (float64(size) - 2*margin) / extent
	// Center the profile; image v axis points down.
	toPx := func(u, v float64) (float32, float32) {
		x := margin + (u-minU)*scale + (float64(size)-2*margin-(maxU-minU)*scale)/2
		y := float64(size) - margin - (v-minV)*scale - (float64(size)-2*margin-(maxV-minV)*scale)/2
		return float32(x), float32(y)
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	ras := vector.NewRasterizer(size, size)
	if curve.IsClosed() {
		x, y := toPx(us[0], vs[0])
		ras.MoveTo(x, y)
		for i := 1; i < len(pts); i++ {
			x, y = toPx(us[i], vs[i])
			ras.LineTo(x, y)
		}
		ras.ClosePath()
	} else {
		strokeSegments(ras, us, vs, toPx, 1.5)
	}
	ras.Draw(dst, dst.Bounds(), image.NewUniform(color.Black), image.Point{})
	return dst, nil
}

// strokeSegments rasterizes each segment as a thin quad of the given
// half-width in pixels.
func strokeSegments(ras *vector.Rasterizer, us, vs []float64, toPx func(u, v float64) (float32, float32), halfWidth float32) {
	for i := 0; i+1 < len(us); i++ {
		x0, y0 := toPx(us[i], vs[i])
		x1, y1 := toPx(us[i+1], vs[i+1])
		dx, dy := x1-x0, y1-y0
		length := float32(math.Hypot(float64(dx), float64(dy)))
		if length == 0 {
			continue
		}
		// Perpendicular offset of halfWidth pixels.
		ox := -dy / length * halfWidth
		oy := dx / length * halfWidth
		ras.MoveTo(x0+ox, y0+oy)
		ras.LineTo(x1+ox, y1+oy)
		ras.LineTo(x1-ox, y1-oy)
		ras.LineTo(x0-ox, y0-oy)
		ras.ClosePath()
	}
}
