package extrude

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestPolyline_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		points []r3.Vec
		closed bool
		want   bool
	}{
		{"nil", nil, false, false},
		{"one point open", []r3.Vec{{}}, false, false},
		{"two points open", []r3.Vec{{}, {X: 1}}, false, true},
		{"two points closed", []r3.Vec{{}, {X: 1}}, true, false},
		{"triangle closed", []r3.Vec{{}, {X: 1}, {Y: 1}}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPolyline(tt.points, tt.closed)
			if got := p.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPolyline_NilIsInvalid(t *testing.T) {
	var p *Polyline
	if p.IsValid() {
		t.Error("nil polyline should be invalid")
	}
}

func TestPolyline_SegmentCount(t *testing.T) {
	open := NewPolyline([]r3.Vec{{}, {X: 1}, {X: 1, Y: 1}}, false)
	if got := open.SegmentCount(); got != 2 {
		t.Errorf("open SegmentCount() = %d, want 2", got)
	}
	if got := unitSquare().SegmentCount(); got != 4 {
		t.Errorf("closed SegmentCount() = %d, want 4", got)
	}
}

func TestPolyline_Length(t *testing.T) {
	if got := unitSquare().Length(); math.Abs(got-4) > epsilon {
		t.Errorf("square Length() = %v, want 4", got)
	}
	open := NewPolyline([]r3.Vec{{}, {X: 3}, {X: 3, Y: 4}}, false)
	if got := open.Length(); math.Abs(got-7) > epsilon {
		t.Errorf("open Length() = %v, want 7", got)
	}
}

func TestPolyline_CloneIndependent(t *testing.T) {
	orig := unitSquare()
	clone := orig.Clone()
	clone.Points()[0] = r3.Vec{X: 99}
	if orig.Points()[0].X == 99 {
		t.Error("mutating clone changed original")
	}
	if clone.IsClosed() != orig.IsClosed() {
		t.Error("clone lost closed flag")
	}
}

func TestPolyline_TranslateDoesNotMutate(t *testing.T) {
	orig := unitSquare()
	moved := orig.Translate(r3.Vec{Z: 5})
	if !vecsEqual(orig.Points()[0], r3.Vec{}, epsilon) {
		t.Error("Translate mutated the receiver")
	}
	if !vecsEqual(moved.Points()[0], r3.Vec{Z: 5}, epsilon) {
		t.Errorf("moved first point = %v, want (0,0,5)", moved.Points()[0])
	}
	if moved.Length() != orig.Length() {
		t.Error("translation changed length")
	}
}

func TestPolyline_Reverse(t *testing.T) {
	p := NewPolyline([]r3.Vec{{}, {X: 1}, {X: 2}}, false)
	r := p.Reverse()
	if !vecsEqual(r.Points()[0], r3.Vec{X: 2}, epsilon) {
		t.Errorf("Reverse first point = %v, want (2,0,0)", r.Points()[0])
	}
	if !vecsEqual(p.Points()[0], r3.Vec{}, epsilon) {
		t.Error("Reverse mutated the receiver")
	}
}

func TestPolyline_Centroid(t *testing.T) {
	got := unitSquare().Centroid()
	if !vecsEqual(got, r3.Vec{X: 0.5, Y: 0.5}, epsilon) {
		t.Errorf("Centroid() = %v, want (0.5, 0.5, 0)", got)
	}
}

func TestPolyline_NewPolylineCopiesInput(t *testing.T) {
	pts := []r3.Vec{{}, {X: 1}}
	p := NewPolyline(pts, false)
	pts[0] = r3.Vec{X: -1}
	if !vecsEqual(p.Points()[0], r3.Vec{}, epsilon) {
		t.Error("NewPolyline aliased the caller's slice")
	}
}
