package extrude

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

// openTube extrudes the curve without capping.
func openTube(t *testing.T, curve *Polyline, dir r3.Vec) *Brep {
	t.Helper()
	surface := Extrusion(curve, dir)
	if surface == nil {
		t.Fatal("Extrusion() = nil")
	}
	return surface.ToBrep().SplitKinkyFaces(DefaultAngleTolerance)
}

func TestBoundaryLoops_ClosedTube(t *testing.T) {
	tube := openTube(t, unitSquare(), r3.Vec{Z: 1})
	loops, ok := tube.boundaryLoops()
	if !ok {
		t.Fatal("boundaryLoops failed on square tube")
	}
	if len(loops) != 2 {
		t.Fatalf("boundary loops = %d, want 2 (top and bottom rings)", len(loops))
	}
	for i, loop := range loops {
		if len(loop) != 4 {
			t.Errorf("loop %d has %d vertices, want 4", i, len(loop))
		}
	}
}

func TestBoundaryLoops_OpenStrip(t *testing.T) {
	// An open profile's shell boundary is one ring around the strip.
	strip := openTube(t, NewPolyline([]r3.Vec{{}, {X: 1}, {X: 1, Y: 1}}, false), r3.Vec{Z: 1})
	loops, ok := strip.boundaryLoops()
	if !ok {
		t.Fatal("boundaryLoops failed on open strip")
	}
	if len(loops) != 1 {
		t.Errorf("boundary loops = %d, want 1", len(loops))
	}
}

func TestBoundaryLoops_SolidHasNone(t *testing.T) {
	loops, ok := boxBrep(t, 1).boundaryLoops()
	if !ok {
		t.Fatal("boundaryLoops failed on solid")
	}
	if len(loops) != 0 {
		t.Errorf("solid has %d boundary loops, want 0", len(loops))
	}
}

func TestCapPlanarHoles_SquareTube(t *testing.T) {
	tube := openTube(t, unitSquare(), r3.Vec{Z: 2})
	capped := tube.CapPlanarHoles(1e-6)
	if capped == nil {
		t.Fatal("CapPlanarHoles() = nil, want capped brep")
	}
	if got := len(capped.Faces); got != 6 {
		t.Errorf("capped faces = %d, want 6 (4 lateral + 2 caps)", got)
	}
	if !capped.IsSolid() {
		t.Error("capped tube should be solid")
	}
	// CCW profile extruded along +Z caps into an outward solid.
	if got := capped.Volume(); math.Abs(got-2) > epsilon {
		t.Errorf("Volume() = %v, want 2", got)
	}
	// The original shell is untouched.
	if len(tube.Faces) != 4 {
		t.Error("CapPlanarHoles mutated its receiver")
	}
}

func TestCapPlanarHoles_ClockwiseProfileCapsInward(t *testing.T) {
	tube := openTube(t, unitSquare().Reverse(), r3.Vec{Z: 1})
	capped := tube.CapPlanarHoles(1e-6)
	if capped == nil {
		t.Fatal("CapPlanarHoles() = nil")
	}
	if got := capped.SolidOrientation(); got != OrientationInward {
		t.Errorf("clockwise-profile solid orientation = %v, want inward", got)
	}
}

func TestCapPlanarHoles_OpenStripFails(t *testing.T) {
	// The single boundary ring of an open strip bends around the
	// strip edges: not planar, so capping must fail.
	strip := openTube(t, NewPolyline([]r3.Vec{{}, {X: 1}, {X: 1, Y: 1}}, false), r3.Vec{Z: 1})
	if capped := strip.CapPlanarHoles(1e-6); capped != nil {
		t.Errorf("CapPlanarHoles() = %v, want nil for non-planar boundary", capped)
	}
}

func TestCapPlanarHoles_HexTube(t *testing.T) {
	tube := openTube(t, regularPolygon(6, 1), r3.Vec{Z: 1})
	capped := tube.CapPlanarHoles(1e-6)
	if capped == nil {
		t.Fatal("CapPlanarHoles() = nil")
	}
	if got := len(capped.Faces); got != 8 {
		t.Errorf("capped faces = %d, want 8", got)
	}
	// Regular hexagon area is 3*sqrt(3)/2 * r^2.
	want := 3 * math.Sqrt(3) / 2
	if got := capped.Volume(); math.Abs(got-want) > 1e-6 {
		t.Errorf("Volume() = %v, want %v", got, want)
	}
}
