package extrude

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Surface is the ruled lateral surface of a linear extrusion: a
// polyline profile swept along a direction vector.
type Surface struct {
	profile *Polyline
	dir     r3.Vec
}

// Extrusion sweeps curve along dir and returns the resulting surface.
// It returns nil when the input is degenerate: an invalid polyline, a
// profile of near-zero length, or a near-zero direction. Consecutive
// duplicate vertices are collapsed first.
func Extrusion(curve *Polyline, dir r3.Vec) *Surface {
	if curve == nil || r3.Norm(dir) < ZeroTolerance {
		return nil
	}
	pts := dedupe(curve.Points())
	profile := &Polyline{points: pts, closed: curve.IsClosed()}
	if !profile.IsValid() || profile.Length() < ZeroTolerance {
		return nil
	}
	return &Surface{profile: profile, dir: dir}
}

// dedupe removes consecutive duplicate vertices, including a
// duplicate of the first vertex at the end.
func dedupe(points []r3.Vec) []r3.Vec {
	out := make([]r3.Vec, 0, len(points))
	for _, pt := range points {
		if len(out) > 0 && r3.Norm(r3.Sub(pt, out[len(out)-1])) < ZeroTolerance {
			continue
		}
		out = append(out, pt)
	}
	if len(out) > 1 && r3.Norm(r3.Sub(out[len(out)-1], out[0])) < ZeroTolerance {
		out = out[:len(out)-1]
	}
	return out
}

// Profile returns the (deduplicated) driving profile.
func (s *Surface) Profile() *Polyline {
	return s.profile
}

// Direction returns the sweep vector.
func (s *Surface) Direction() r3.Vec {
	return s.dir
}

// ToBrep converts the surface into a brep with a single lateral strip
// face. For a closed profile the strip carries a seam at the first
// vertex, like an untrimmed cylinder. Tangency kinks at the profile
// vertices are still embedded in the strip; call
// [Brep.SplitKinkyFaces] to resolve them into planar sub-faces.
func (s *Surface) ToBrep() *Brep {
	bottom := s.profile.Points()
	n := len(bottom)
	top := make([]r3.Vec, n)
	for i, pt := range bottom {
		top[i] = r3.Add(pt, s.dir)
	}

	var loop []r3.Vec
	if s.profile.IsClosed() {
		// Bottom ring forward, seam up, top ring backward, seam down.
		loop = make([]r3.Vec, 0, 2*n+2)
		loop = append(loop, bottom...)
		loop = append(loop, bottom[0], top[0])
		for i := n - 1; i >= 1; i-- {
			loop = append(loop, top[i])
		}
		loop = append(loop, top[0])
	} else {
		loop = make([]r3.Vec, 0, 2*n)
		loop = append(loop, bottom...)
		for i := n - 1; i >= 0; i-- {
			loop = append(loop, top[i])
		}
	}
	return &Brep{Faces: []Face{{Loop: loop}}}
}

// stripRows recognizes a face produced by sweeping a vertex row along
// a constant vector: an even loop whose second half, reversed, is the
// first half translated by a constant offset. It returns the bottom
// row and the offset.
func stripRows(f Face) (bottom []r3.Vec, offset r3.Vec, ok bool) {
	n := len(f.Loop)
	if n < 4 || n%2 != 0 {
		return nil, r3.Vec{}, false
	}
	k := n / 2
	offset = r3.Sub(f.Loop[n-1], f.Loop[0])
	if r3.Norm(offset) < ZeroTolerance {
		return nil, r3.Vec{}, false
	}
	for i := 0; i < k; i++ {
		d := r3.Sub(f.Loop[n-1-i], f.Loop[i])
		if r3.Norm(r3.Sub(d, offset)) > ZeroTolerance {
			return nil, r3.Vec{}, false
		}
	}
	return f.Loop[:k], offset, true
}

// turnAngle returns the angle between the directions into and out of
// vertex i of row.
func turnAngle(row []r3.Vec, i int) float64 {
	d1 := r3.Sub(row[i], row[i-1])
	d2 := r3.Sub(row[i+1], row[i])
	return math.Atan2(r3.Norm(r3.Cross(d1, d2)), r3.Dot(d1, d2))
}

// SplitKinkyFaces returns a copy of the brep in which every swept
// strip face is split at profile vertices whose turn angle exceeds
// angleTol. Runs of vertices below the tolerance stay merged in one
// face. Faces that are not swept strips are kept as they are.
//
// Downstream consumers assume kink-free faces, so extrusions of
// piecewise-linear profiles must pass through here before capping or
// export.
func (b *Brep) SplitKinkyFaces(angleTol float64) *Brep {
	out := &Brep{}
	for _, f := range b.Faces {
		bottom, offset, ok := stripRows(f)
		if !ok {
			out.Faces = append(out.Faces, f)
			continue
		}
		top := make([]r3.Vec, len(bottom))
		for i, pt := range bottom {
			top[i] = r3.Add(pt, offset)
		}

		start := 0
		for i := 1; i < len(bottom); i++ {
			if i < len(bottom)-1 && turnAngle(bottom, i) <= angleTol {
				continue
			}
			out.Faces = append(out.Faces, stripFace(bottom, top, start, i))
			start = i
		}
	}
	return out
}

// stripFace builds the planar quad face covering bottom[i..j] and its
// translated top row.
func stripFace(bottom, top []r3.Vec, i, j int) Face {
	loop := make([]r3.Vec, 0, 2*(j-i+1))
	loop = append(loop, bottom[i:j+1]...)
	for k := j; k >= i; k-- {
		loop = append(loop, top[k])
	}
	return Face{Loop: loop}
}
