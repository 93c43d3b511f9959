// profile.go

package extrude

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultChordTolerance is the default maximum sagitta allowed when
// flattening arcs into polyline segments.
const DefaultChordTolerance = 1e-3

// ProfileBuilder provides a fluent interface for constructing planar
// profiles in 2D plane coordinates. Arcs and circles are flattened
// into polyline segments within a chord tolerance, so the emitted
// profile is always a polyline lying in the builder's plane.
// All methods return the builder for chaining.
type ProfileBuilder struct {
	plane    Plane
	chordTol float64
	pts      []point2
	closed   bool
}

type point2 struct {
	u, v float64
}

// BuildProfile starts a profile builder on the given plane.
func BuildProfile(plane Plane) *ProfileBuilder {
	return &ProfileBuilder{plane: plane, chordTol: DefaultChordTolerance}
}

// ChordTolerance sets the maximum deviation between a flattened arc
// and the true arc. The default is DefaultChordTolerance.
func (b *ProfileBuilder) ChordTolerance(tol float64) *ProfileBuilder {
	if tol > 0 {
		b.chordTol = tol
	}
	return b
}

// MoveTo starts the profile at plane coordinates (u, v). Calling it
// again restarts the profile.
func (b *ProfileBuilder) MoveTo(u, v float64) *ProfileBuilder {
	b.pts = b.pts[:0]
	b.closed = false
	b.pts = append(b.pts, point2{u, v})
	return b
}

// LineTo appends a straight segment to (u, v).
func (b *ProfileBuilder) LineTo(u, v float64) *ProfileBuilder {
	b.pts = append(b.pts, point2{u, v})
	return b
}

// Arc appends a circular arc around center (cu, cv) with radius r
// from angle a1 to a2 (radians, counter-clockwise), flattened within
// the chord tolerance. If the profile is empty the arc starts it;
// otherwise a segment connects the current point to the arc start.
func (b *ProfileBuilder) Arc(cu, cv, r, a1, a2 float64) *ProfileBuilder {
	if r <= 0 {
		return b
	}
	for a2 < a1 {
		a2 += 2 * math.Pi
	}
	steps := b.arcSteps(r, a2-a1)
	for i := 0; i <= steps; i++ {
		a := a1 + (a2-a1)*float64(i)/float64(steps)
		b.pts = append(b.pts, point2{cu + r*math.Cos(a), cv + r*math.Sin(a)})
	}
	return b
}

// arcSteps returns the segment count that keeps the sagitta of each
// chord under the chord tolerance.
func (b *ProfileBuilder) arcSteps(r, sweep float64) int {
	if b.chordTol >= r {
		return 1
	}
	maxStep := 2 * math.Acos(1-b.chordTol/r)
	steps := int(math.Ceil(sweep / maxStep))
	if steps < 1 {
		steps = 1
	}
	return steps
}

// Circle makes the profile a full closed circle around (cu, cv).
func (b *ProfileBuilder) Circle(cu, cv, r float64) *ProfileBuilder {
	b.pts = b.pts[:0]
	b.closed = false
	b.Arc(cu, cv, r, 0, 2*math.Pi)
	// The final flattened point repeats the first; Close drops it.
	return b.Close()
}

// Rect makes the profile a closed axis-aligned rectangle with corner
// (u, v), width w and height h, wound counter-clockwise.
func (b *ProfileBuilder) Rect(u, v, w, h float64) *ProfileBuilder {
	b.MoveTo(u, v)
	b.LineTo(u+w, v)
	b.LineTo(u+w, v+h)
	b.LineTo(u, v+h)
	return b.Close()
}

// Polygon makes the profile a closed regular polygon centered at
// (cu, cv), wound counter-clockwise starting at the top.
func (b *ProfileBuilder) Polygon(cu, cv, radius float64, sides int) *ProfileBuilder {
	if sides < 3 {
		return b
	}
	b.pts = b.pts[:0]
	b.closed = false
	angleStep := 2 * math.Pi / float64(sides)
	startAngle := math.Pi / 2 // start at top
	for i := 0; i < sides; i++ {
		a := startAngle + float64(i)*angleStep
		b.pts = append(b.pts, point2{cu + radius*math.Cos(a), cv + radius*math.Sin(a)})
	}
	return b.Close()
}

// Close marks the profile closed, dropping a trailing vertex that
// repeats the start.
func (b *ProfileBuilder) Close() *ProfileBuilder {
	if n := len(b.pts); n > 1 {
		first, last := b.pts[0], b.pts[n-1]
		if math.Hypot(last.u-first.u, last.v-first.v) < ZeroTolerance {
			b.pts = b.pts[:n-1]
		}
	}
	b.closed = true
	return b
}

// Polyline emits the profile as a polyline in world coordinates on
// the builder's plane.
func (b *ProfileBuilder) Polyline() *Polyline {
	pts := make([]r3.Vec, len(b.pts))
	for i, p := range b.pts {
		pts[i] = b.plane.PointAt(p.u, p.v)
	}
	return &Polyline{points: pts, closed: b.closed}
}
