package extrude

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Face is a brep face bounded by a single outer loop of vertices.
// Loop winding follows the right-hand rule: the face normal points
// out of the side from which the loop reads counter-clockwise.
type Face struct {
	Loop []r3.Vec
}

// Normal returns the face normal (unnormalized, Newell's method).
// Its length is twice the loop's enclosed area.
func (f Face) Normal() r3.Vec {
	n := r3.Vec{}
	for i := range f.Loop {
		a := f.Loop[i]
		b := f.Loop[(i+1)%len(f.Loop)]
		n.X += (a.Y - b.Y) * (a.Z + b.Z)
		n.Y += (a.Z - b.Z) * (a.X + b.X)
		n.Z += (a.X - b.X) * (a.Y + b.Y)
	}
	return n
}

// Area returns the enclosed area of the face loop.
func (f Face) Area() float64 {
	return r3.Norm(f.Normal()) / 2
}

// Reversed returns the face with its loop winding (and therefore its
// normal) reversed.
func (f Face) Reversed() Face {
	loop := make([]r3.Vec, len(f.Loop))
	for i, pt := range f.Loop {
		loop[len(loop)-1-i] = pt
	}
	return Face{Loop: loop}
}

// Triangulate splits the face into triangles that preserve the loop
// winding. Planar faces are ear-clipped, which handles non-convex
// loops; if clipping stalls (degenerate loops) the remainder is
// fanned.
func (f Face) Triangulate() [][3]r3.Vec {
	n := len(f.Loop)
	if n < 3 {
		return nil
	}
	if n == 3 {
		return [][3]r3.Vec{{f.Loop[0], f.Loop[1], f.Loop[2]}}
	}

	// Work in plane coordinates so ear tests are 2D.
	normal := f.Normal()
	plane := NewPlane(f.Loop[0], normal)
	us := make([]float64, n)
	vs := make([]float64, n)
	for i, pt := range f.Loop {
		us[i], vs[i] = plane.ClosestPoint(pt)
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	cross := func(ax, ay, bx, by, cx, cy float64) float64 {
		return (bx-ax)*(cy-ay) - (by-ay)*(cx-ax)
	}
	inTriangle := func(px, py, ax, ay, bx, by, cx, cy float64) bool {
		d1 := cross(ax, ay, bx, by, px, py)
		d2 := cross(bx, by, cx, cy, px, py)
		d3 := cross(cx, cy, ax, ay, px, py)
		hasNeg := d1 < 0 || d2 < 0 || d3 < 0
		hasPos := d1 > 0 || d2 > 0 || d3 > 0
		return !(hasNeg && hasPos)
	}

	var tris [][3]r3.Vec
	guard := 0
	for len(idx) > 3 && guard < n*n {
		guard++
		clipped := false
		for i := 0; i < len(idx); i++ {
			ia := idx[(i+len(idx)-1)%len(idx)]
			ib := idx[i]
			ic := idx[(i+1)%len(idx)]
			// Convex corner relative to the loop winding. The plane
			// basis is derived from the face normal, so CCW in (u,v)
			// means positive cross.
			if cross(us[ia], vs[ia], us[ib], vs[ib], us[ic], vs[ic]) <= 0 {
				continue
			}
			ear := true
			for _, j := range idx {
				if j == ia || j == ib || j == ic {
					continue
				}
				if inTriangle(us[j], vs[j], us[ia], vs[ia], us[ib], vs[ib], us[ic], vs[ic]) {
					ear = false
					break
				}
			}
			if !ear {
				continue
			}
			tris = append(tris, [3]r3.Vec{f.Loop[ia], f.Loop[ib], f.Loop[ic]})
			idx = append(idx[:i], idx[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			// Degenerate remainder: fall back to a fan.
			for i := 1; i+1 < len(idx); i++ {
				tris = append(tris, [3]r3.Vec{f.Loop[idx[0]], f.Loop[idx[i]], f.Loop[idx[i+1]]})
			}
			return tris
		}
	}
	if len(idx) == 3 {
		tris = append(tris, [3]r3.Vec{f.Loop[idx[0]], f.Loop[idx[1]], f.Loop[idx[2]]})
	}
	return tris
}

// SolidOrientation classifies a brep's face-normal convention.
type SolidOrientation int

const (
	// OrientationNone means the brep is not a closed solid.
	OrientationNone SolidOrientation = iota
	// OrientationOutward means face normals point out of the solid.
	OrientationOutward
	// OrientationInward means face normals point into the solid.
	OrientationInward
)

// String returns the orientation name.
func (o SolidOrientation) String() string {
	switch o {
	case OrientationOutward:
		return "outward"
	case OrientationInward:
		return "inward"
	default:
		return "none"
	}
}

// Brep is a boundary representation: a set of faces that together
// describe an open shell or a closed solid.
type Brep struct {
	Faces []Face
}

// edge is a directed edge between two exact vertex positions.
// Vertices of adjacent faces are produced from shared computations,
// so exact comparison is sufficient for topology queries.
type edge struct {
	a, b r3.Vec
}

// directedEdges returns every directed loop edge of every face.
func (b *Brep) directedEdges() []edge {
	var edges []edge
	for _, f := range b.Faces {
		for i := range f.Loop {
			edges = append(edges, edge{f.Loop[i], f.Loop[(i+1)%len(f.Loop)]})
		}
	}
	return edges
}

// IsSolid reports whether the brep is closed: every edge is shared by
// exactly two faces with opposite directions.
func (b *Brep) IsSolid() bool {
	if len(b.Faces) == 0 {
		return false
	}
	count := map[edge]int{}
	for _, e := range b.directedEdges() {
		// Seam edges (a face touching itself) cancel immediately.
		count[e]++
	}
	for e, c := range count {
		if c != count[edge{e.b, e.a}] {
			return false
		}
	}
	return true
}

// Volume returns the signed volume enclosed by the brep, positive
// when face normals point outward. Only meaningful for closed breps.
func (b *Brep) Volume() float64 {
	// Divergence theorem over a fan per face; exact for planar faces
	// regardless of convexity.
	vol := 0.0
	for _, f := range b.Faces {
		for i := 1; i+1 < len(f.Loop); i++ {
			p0, p1, p2 := f.Loop[0], f.Loop[i], f.Loop[i+1]
			vol += r3.Dot(p0, r3.Cross(p1, p2))
		}
	}
	return vol / 6
}

// SolidOrientation reports whether the brep is a closed solid and, if
// so, whether its face normals point outward or inward.
func (b *Brep) SolidOrientation() SolidOrientation {
	if !b.IsSolid() {
		return OrientationNone
	}
	if b.Volume() >= 0 {
		return OrientationOutward
	}
	return OrientationInward
}

// Flip reverses the winding of every face, turning an inward-oriented
// solid outward (and vice versa).
func (b *Brep) Flip() {
	for i, f := range b.Faces {
		b.Faces[i] = f.Reversed()
	}
}

// Area returns the total surface area of the brep.
func (b *Brep) Area() float64 {
	total := 0.0
	for _, f := range b.Faces {
		total += f.Area()
	}
	return total
}

// Vertices returns the distinct vertex positions of the brep.
func (b *Brep) Vertices() []r3.Vec {
	seen := map[r3.Vec]bool{}
	var verts []r3.Vec
	for _, f := range b.Faces {
		for _, pt := range f.Loop {
			if !seen[pt] {
				seen[pt] = true
				verts = append(verts, pt)
			}
		}
	}
	return verts
}

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max r3.Vec
}

// BoundingBox returns the axis-aligned bounding box of the brep.
func (b *Brep) BoundingBox() Box {
	box := Box{
		Min: r3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)},
		Max: r3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)},
	}
	for _, f := range b.Faces {
		for _, pt := range f.Loop {
			box.Min.X = math.Min(box.Min.X, pt.X)
			box.Min.Y = math.Min(box.Min.Y, pt.Y)
			box.Min.Z = math.Min(box.Min.Z, pt.Z)
			box.Max.X = math.Max(box.Max.X, pt.X)
			box.Max.Y = math.Max(box.Max.Y, pt.Y)
			box.Max.Z = math.Max(box.Max.Z, pt.Z)
		}
	}
	return box
}

// Size returns the box extents along each axis.
func (b Box) Size() r3.Vec {
	return r3.Sub(b.Max, b.Min)
}

// Center returns the box center.
func (b Box) Center() r3.Vec {
	return r3.Scale(0.5, r3.Add(b.Min, b.Max))
}
