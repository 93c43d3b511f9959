package extrude

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Polyline is an ordered run of 3D vertices. A closed polyline wraps
// from the last vertex back to the first without repeating it.
//
// Polyline is the profile type consumed by PlanarExtrude; curved
// profiles are flattened into polylines first (see ProfileBuilder).
type Polyline struct {
	points []r3.Vec
	closed bool
}

// NewPolyline creates a polyline from a vertex list. The slice is
// copied; the caller keeps ownership of points.
func NewPolyline(points []r3.Vec, closed bool) *Polyline {
	pts := make([]r3.Vec, len(points))
	copy(pts, points)
	return &Polyline{points: pts, closed: closed}
}

// Points returns the vertex list. The returned slice is the
// polyline's backing store; treat it as read-only.
func (p *Polyline) Points() []r3.Vec {
	return p.points
}

// IsClosed reports whether the polyline wraps back to its first
// vertex.
func (p *Polyline) IsClosed() bool {
	return p.closed
}

// IsValid reports whether the polyline has enough vertices to carry
// geometry: two for an open run, three for a closed loop.
func (p *Polyline) IsValid() bool {
	if p == nil {
		return false
	}
	if p.closed {
		return len(p.points) >= 3
	}
	return len(p.points) >= 2
}

// SegmentCount returns the number of segments, including the closing
// segment of a closed polyline.
func (p *Polyline) SegmentCount() int {
	if len(p.points) < 2 {
		return 0
	}
	if p.closed {
		return len(p.points)
	}
	return len(p.points) - 1
}

// Segment returns the endpoints of segment i.
func (p *Polyline) Segment(i int) (a, b r3.Vec) {
	return p.points[i], p.points[(i+1)%len(p.points)]
}

// Length returns the total length of the polyline.
func (p *Polyline) Length() float64 {
	total := 0.0
	for i := 0; i < p.SegmentCount(); i++ {
		a, b := p.Segment(i)
		total += r3.Norm(r3.Sub(b, a))
	}
	return total
}

// Centroid returns the average of the vertices.
func (p *Polyline) Centroid() r3.Vec {
	if len(p.points) == 0 {
		return r3.Vec{}
	}
	c := r3.Vec{}
	for _, pt := range p.points {
		c = r3.Add(c, pt)
	}
	return r3.Scale(1/float64(len(p.points)), c)
}

// Clone returns a deep copy of the polyline.
func (p *Polyline) Clone() *Polyline {
	return NewPolyline(p.points, p.closed)
}

// Translate returns a copy of the polyline moved by offset. The
// receiver is unchanged.
func (p *Polyline) Translate(offset r3.Vec) *Polyline {
	pts := make([]r3.Vec, len(p.points))
	for i, pt := range p.points {
		pts[i] = r3.Add(pt, offset)
	}
	return &Polyline{points: pts, closed: p.closed}
}

// Reverse returns a copy of the polyline with the vertex order
// reversed.
func (p *Polyline) Reverse() *Polyline {
	pts := make([]r3.Vec, len(p.points))
	for i, pt := range p.points {
		pts[len(pts)-1-i] = pt
	}
	return &Polyline{points: pts, closed: p.closed}
}

// FitPlane fits a plane through the polyline's vertices within the
// linear tolerance tol. ok is false when the polyline is not planar.
func (p *Polyline) FitPlane(tol float64) (Plane, bool) {
	return FitPlane(p.points, tol)
}
