package extrude

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors returned by PlanarExtrude.
var (
	// ErrNotPlanar reports that no plane fits the input curve within
	// the linear tolerance.
	ErrNotPlanar = errors.New("extrude: curve is not planar")

	// ErrExtrusionFailed reports that the sweep produced no surface,
	// typically because the curve is degenerate.
	ErrExtrusionFailed = errors.New("extrude: extrusion failed")
)

// PlanarExtrude sweeps a planar curve along its plane normal into a
// brep. The result is an open shell resolved into kink-free lateral
// faces, or, for a closed curve with WithSolid, a closed solid with
// outward-facing normals.
//
// The input curve is never mutated. A nil or empty curve, or a
// distance below ZeroTolerance, is treated as absent input: the call
// returns (nil, nil) with no diagnostic. A non-planar curve returns
// ErrNotPlanar and a degenerate sweep returns ErrExtrusionFailed;
// both are also reported through the package logger. Capping failure
// is not an error: the open shell is returned instead.
//
// Every invocation is independent and idempotent; the function is
// safe for concurrent use.
func PlanarExtrude(curve *Polyline, opts ...Option) (*Brep, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Absent input is a silent no-op, unlike the failures below.
	if curve == nil || len(curve.Points()) == 0 {
		return nil, nil
	}
	distance := o.distance
	if math.Abs(distance) < ZeroTolerance {
		return nil, nil
	}

	plane, ok := curve.FitPlane(o.tolerance)
	if !ok {
		Logger().Warn("curve is not planar", "tolerance", o.tolerance)
		return nil, ErrNotPlanar
	}
	normal := r3.Unit(plane.ZAxis)

	// Keep the sweep pointing up the reference axis when requested.
	if o.up && r3.Dot(plane.ZAxis, o.upAxis) < -ZeroTolerance {
		normal = r3.Scale(-1, normal)
	}

	working := curve
	if o.bothSides {
		// Push a duplicate to the opposite extreme and sweep twice
		// the distance, so the result is symmetric about the
		// original plane.
		working = curve.Clone().Translate(r3.Scale(-distance, normal))
		distance *= 2
	}

	surface := Extrusion(working, r3.Scale(distance, normal))
	if surface == nil {
		Logger().Warn("extrusion failed")
		return nil, ErrExtrusionFailed
	}

	// The profile is piecewise linear, so the lateral strip carries a
	// tangency kink at every vertex; downstream consumers assume
	// kink-free faces.
	brep := surface.ToBrep().SplitKinkyFaces(o.angleTolerance)

	if curve.IsClosed() && o.solid {
		if capped := brep.CapPlanarHoles(o.tolerance); capped != nil {
			brep = capped
			// A clockwise profile winds the capped solid inward.
			if brep.SolidOrientation() == OrientationInward {
				brep.Flip()
			}
		} else {
			Logger().Debug("capping failed, keeping open shell")
		}
	}
	return brep, nil
}
