package extrude

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrEmptyBrep reports an export of a brep with no faces.
var ErrEmptyBrep = errors.New("extrude: brep has no faces")

// Triangles returns the brep's faces triangulated for export, with
// per-triangle unit normals following the face winding.
func (b *Brep) Triangles() ([][3]r3.Vec, []r3.Vec) {
	var tris [][3]r3.Vec
	var normals []r3.Vec
	for _, f := range b.Faces {
		for _, tri := range f.Triangulate() {
			n := r3.Cross(r3.Sub(tri[1], tri[0]), r3.Sub(tri[2], tri[0]))
			if r3.Norm(n) < ZeroTolerance {
				continue // zero-area sliver
			}
			tris = append(tris, tri)
			normals = append(normals, r3.Unit(n))
		}
	}
	return tris, normals
}

// WriteBinarySTL writes the brep as a binary STL mesh.
func WriteBinarySTL(w io.Writer, b *Brep) error {
	if b == nil || len(b.Faces) == 0 {
		return ErrEmptyBrep
	}
	tris, normals := b.Triangles()

	var header [80]byte
	copy(header[:], "extrude "+Version)
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return fmt.Errorf("extrude: stl header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(tris))); err != nil {
		return fmt.Errorf("extrude: stl count: %w", err)
	}

	buf := make([]float32, 12)
	for i, tri := range tris {
		n := normals[i]
		buf[0], buf[1], buf[2] = float32(n.X), float32(n.Y), float32(n.Z)
		for j, pt := range tri {
			buf[3+3*j] = float32(pt.X)
			buf[4+3*j] = float32(pt.Y)
			buf[5+3*j] = float32(pt.Z)
		}
		if err := binary.Write(w, binary.LittleEndian, buf); err != nil {
			return fmt.Errorf("extrude: stl triangle: %w", err)
		}
		if err := binary.Write(w, binary.LittleEndian, uint16(0)); err != nil {
			return fmt.Errorf("extrude: stl attribute: %w", err)
		}
	}
	return nil
}

// WriteSTL writes the brep as an ASCII STL mesh named name.
func WriteSTL(w io.Writer, b *Brep, name string) error {
	if b == nil || len(b.Faces) == 0 {
		return ErrEmptyBrep
	}
	tris, normals := b.Triangles()

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "solid %s\n", name)
	for i, tri := range tris {
		n := normals[i]
		fmt.Fprintf(bw, "  facet normal %g %g %g\n", n.X, n.Y, n.Z)
		fmt.Fprintf(bw, "    outer loop\n")
		for _, pt := range tri {
			fmt.Fprintf(bw, "      vertex %g %g %g\n", pt.X, pt.Y, pt.Z)
		}
		fmt.Fprintf(bw, "    endloop\n")
		fmt.Fprintf(bw, "  endfacet\n")
	}
	fmt.Fprintf(bw, "endsolid %s\n", name)
	return bw.Flush()
}
