package extrude

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Plane represents an oriented plane with an orthonormal basis.
// ZAxis is the plane normal; XAxis and YAxis span the plane and
// together with ZAxis form a right-handed frame.
type Plane struct {
	Origin r3.Vec
	XAxis  r3.Vec
	YAxis  r3.Vec
	ZAxis  r3.Vec
}

// WorldXY returns the world XY plane at the origin with normal +Z.
func WorldXY() Plane {
	return Plane{
		XAxis: r3.Vec{X: 1},
		YAxis: r3.Vec{Y: 1},
		ZAxis: r3.Vec{Z: 1},
	}
}

// NewPlane creates a plane from an origin and a normal. The in-plane
// axes are chosen arbitrarily but deterministically. A zero normal
// yields the world XY plane translated to origin.
func NewPlane(origin, normal r3.Vec) Plane {
	n := normal
	if r3.Norm(n) < ZeroTolerance {
		n = r3.Vec{Z: 1}
	}
	n = r3.Unit(n)
	x := perpendicular(n)
	y := r3.Cross(n, x)
	return Plane{Origin: origin, XAxis: x, YAxis: y, ZAxis: n}
}

// perpendicular returns a unit vector perpendicular to the unit
// vector n, picked against n's smallest component for stability.
func perpendicular(n r3.Vec) r3.Vec {
	ax, ay, az := math.Abs(n.X), math.Abs(n.Y), math.Abs(n.Z)
	var ref r3.Vec
	switch {
	case ax <= ay && ax <= az:
		ref = r3.Vec{X: 1}
	case ay <= az:
		ref = r3.Vec{Y: 1}
	default:
		ref = r3.Vec{Z: 1}
	}
	return r3.Unit(r3.Cross(n, ref))
}

// PointAt returns the world-space point at plane coordinates (u, v).
func (p Plane) PointAt(u, v float64) r3.Vec {
	return r3.Add(p.Origin, r3.Add(r3.Scale(u, p.XAxis), r3.Scale(v, p.YAxis)))
}

// ClosestPoint returns the plane coordinates (u, v) of the projection
// of the world-space point q onto the plane.
func (p Plane) ClosestPoint(q r3.Vec) (u, v float64) {
	d := r3.Sub(q, p.Origin)
	return r3.Dot(d, p.XAxis), r3.Dot(d, p.YAxis)
}

// DistanceTo returns the signed distance from q to the plane,
// positive on the normal side.
func (p Plane) DistanceTo(q r3.Vec) float64 {
	return r3.Dot(r3.Sub(q, p.Origin), p.ZAxis)
}

// Flipped returns the plane with its normal reversed. The X axis is
// kept so the frame stays right-handed.
func (p Plane) Flipped() Plane {
	return Plane{
		Origin: p.Origin,
		XAxis:  p.XAxis,
		YAxis:  r3.Scale(-1, p.YAxis),
		ZAxis:  r3.Scale(-1, p.ZAxis),
	}
}

// FitPlane fits a plane through a set of points. The normal comes
// from Newell's method over the implicit closed loop; degenerate
// inputs (collinear or coincident points) still fit, with an
// arbitrary but deterministic orientation, because such point sets
// lie in infinitely many planes. ok is false only when some point
// deviates from the fitted plane by more than tol.
func FitPlane(points []r3.Vec, tol float64) (Plane, bool) {
	if len(points) == 0 {
		return Plane{}, false
	}

	centroid := r3.Vec{}
	for _, pt := range points {
		centroid = r3.Add(centroid, pt)
	}
	centroid = r3.Scale(1/float64(len(points)), centroid)

	// Newell's method: sum of cross products around the loop.
	normal := r3.Vec{}
	for i := range points {
		a := points[i]
		b := points[(i+1)%len(points)]
		normal.X += (a.Y - b.Y) * (a.Z + b.Z)
		normal.Y += (a.Z - b.Z) * (a.X + b.X)
		normal.Z += (a.X - b.X) * (a.Y + b.Y)
	}

	if r3.Norm(normal) < ZeroTolerance {
		// Zero loop area: the points are collinear or coincident.
		// Pick a normal perpendicular to the dominant direction.
		dir := r3.Vec{}
		for _, pt := range points {
			d := r3.Sub(pt, centroid)
			if r3.Norm(d) > r3.Norm(dir) {
				dir = d
			}
		}
		if r3.Norm(dir) < ZeroTolerance {
			// All points coincide; any plane through them fits.
			return NewPlane(centroid, r3.Vec{Z: 1}), true
		}
		normal = r3.Cross(dir, perpendicular(r3.Unit(dir)))
	}

	plane := NewPlane(centroid, normal)

	maxDev := 0.0
	for _, pt := range points {
		if d := math.Abs(plane.DistanceTo(pt)); d > maxDev {
			maxDev = d
		}
	}
	if maxDev > tol {
		Logger().Debug("plane fit rejected",
			"max_deviation", maxDev, "tolerance", tol)
		return Plane{}, false
	}
	return plane, true
}
