package extrude

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// boundaryLoops chains the brep's naked edges (directed edges whose
// reverse is not used by any face) into closed vertex loops. The
// second result is false when a chain cannot be closed, which means
// the shell's boundary is not a set of simple rings.
func (b *Brep) boundaryLoops() ([][]r3.Vec, bool) {
	use := map[edge]int{}
	for _, e := range b.directedEdges() {
		use[e]++
	}

	// next maps a loop vertex to the target of its outgoing naked
	// edge. A well-formed shell boundary has exactly one per vertex.
	next := map[r3.Vec]r3.Vec{}
	for e, c := range use {
		naked := c - use[edge{e.b, e.a}]
		if naked < 0 {
			naked = 0
		}
		if naked == 0 {
			continue
		}
		if naked > 1 {
			return nil, false
		}
		if _, dup := next[e.a]; dup {
			return nil, false
		}
		next[e.a] = e.b
	}

	var loops [][]r3.Vec
	for len(next) > 0 {
		var start r3.Vec
		for v := range next {
			start = v
			break
		}
		loop := []r3.Vec{start}
		at := start
		for {
			to, ok := next[at]
			if !ok {
				return nil, false // open chain
			}
			delete(next, at)
			if to == start {
				break
			}
			loop = append(loop, to)
			at = to
			if len(loop) > len(use) {
				return nil, false
			}
		}
		if len(loop) < 3 {
			return nil, false
		}
		loops = append(loops, loop)
	}
	return loops, true
}

// CapPlanarHoles closes the brep's naked boundary loops with planar
// faces. Each loop must chain into a simple ring and lie in a plane
// within tol. On success it returns a new, capped brep; on any
// failure it returns nil and the caller keeps the open shell.
func (b *Brep) CapPlanarHoles(tol float64) *Brep {
	loops, ok := b.boundaryLoops()
	if !ok || len(loops) == 0 {
		return nil
	}

	capped := &Brep{Faces: make([]Face, len(b.Faces), len(b.Faces)+len(loops))}
	copy(capped.Faces, b.Faces)
	for _, loop := range loops {
		if _, planar := FitPlane(loop, tol); !planar {
			Logger().Debug("cap rejected: boundary loop not planar",
				"vertices", len(loop), "tolerance", tol)
			return nil
		}
		// The chain runs along the naked edges in the direction the
		// shell faces use them; the cap must use each edge reversed
		// to keep the solid consistently oriented.
		capped.Faces = append(capped.Faces, Face{Loop: loop}.Reversed())
	}
	return capped
}
