// Package extrude builds solid and open breps by extruding planar
// curves, in pure Go.
//
// # Overview
//
// extrude is a small solid-modeling library in the GoGPU ecosystem.
// Its central operation is [PlanarExtrude]: sweep a planar polyline
// along its plane normal to produce a boundary representation (brep),
// optionally mirrored about the profile plane and optionally capped
// into a closed, outward-oriented solid.
//
// # Quick Start
//
//	import "github.com/gogpu/extrude"
//
//	// A unit square in the world XY plane.
//	profile := extrude.NewPolyline([]r3.Vec{
//	    {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
//	}, true)
//
//	// Sweep it 2 units along the plane normal and cap the ends.
//	solid, err := extrude.PlanarExtrude(profile,
//	    extrude.WithDistance(2),
//	    extrude.WithSolid(),
//	)
//
// # Coordinate System
//
// Right-handed world coordinates with Z up. Profile planes carry an
// orthonormal basis; a counter-clockwise profile (seen from the plane
// normal side) extrudes into an outward-oriented solid, and clockwise
// profiles are reoriented automatically when capping.
//
// # Tolerances
//
// Every invocation takes a linear tolerance (plane fitting, capping)
// and an angle tolerance (kink-face splitting). Both are plain
// parameters, never cached; see [WithTolerance] and
// [WithAngleTolerance] for the defaults.
package extrude

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
