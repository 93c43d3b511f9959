package extrude

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Default tolerances. Callers embedded in a host document should pass
// the document tolerances instead via WithTolerance and
// WithAngleTolerance.
const (
	// DefaultTolerance is the default linear tolerance, used for
	// plane fitting and cap-loop planarity checks.
	DefaultTolerance = 1e-6

	// DefaultAngleTolerance is the default angle tolerance in
	// radians (one degree), used for kink-face splitting.
	DefaultAngleTolerance = math.Pi / 180

	// ZeroTolerance is the magnitude below which a scalar is treated
	// as zero. It absorbs floating-point noise: an extrusion distance
	// below this threshold is considered absent, not an error.
	ZeroTolerance = 1e-12
)

// Option configures a single PlanarExtrude invocation.
// Use functional options to customize the sweep.
//
// Example:
//
//	// Symmetric solid extrusion, 3 units each side:
//	brep, err := extrude.PlanarExtrude(curve,
//	    extrude.WithDistance(3),
//	    extrude.WithBothSides(),
//	    extrude.WithSolid(),
//	)
type Option func(*options)

// options holds the per-invocation configuration for PlanarExtrude.
// All fields are read-only during the call; invocations never share
// mutable state.
type options struct {
	distance       float64
	bothSides      bool
	solid          bool
	up             bool
	upAxis         r3.Vec
	tolerance      float64
	angleTolerance float64
}

// defaultOptions returns the default extrusion options.
func defaultOptions() options {
	return options{
		distance:       1.0,
		upAxis:         r3.Vec{Z: 1},
		tolerance:      DefaultTolerance,
		angleTolerance: DefaultAngleTolerance,
	}
}

// WithDistance sets the signed extrusion distance. The default is 1.
// A distance whose magnitude is below ZeroTolerance makes the
// invocation a silent no-op.
func WithDistance(d float64) Option {
	return func(o *options) {
		o.distance = d
	}
}

// WithBothSides makes the extrusion symmetric about the profile
// plane: the result extends the full distance on each side.
func WithBothSides() Option {
	return func(o *options) {
		o.bothSides = true
	}
}

// WithSolid requests capping of both ends into a closed solid. Only
// meaningful for closed profiles; capping failure degrades to the
// open shell rather than erroring.
func WithSolid() Option {
	return func(o *options) {
		o.solid = true
	}
}

// WithUpCorrection forces the extrusion normal to have a non-negative
// component along the reference up axis, reversing it if necessary.
// Without this option the profile plane's natural fitted normal is
// used unchanged.
func WithUpCorrection() Option {
	return func(o *options) {
		o.up = true
	}
}

// WithUpAxis sets the reference up axis used by WithUpCorrection.
// The default is world +Z.
func WithUpAxis(axis r3.Vec) Option {
	return func(o *options) {
		o.upAxis = axis
	}
}

// WithTolerance sets the linear tolerance used for plane fitting and
// planar-hole capping. The default is DefaultTolerance.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		o.tolerance = tol
	}
}

// WithAngleTolerance sets the angle tolerance in radians used to
// split lateral faces at profile kinks. The default is
// DefaultAngleTolerance.
func WithAngleTolerance(tol float64) Option {
	return func(o *options) {
		o.angleTolerance = tol
	}
}
