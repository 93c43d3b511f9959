package main

import (
	"fmt"
	"math"
	"os"

	"github.com/gogpu/extrude"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

// document is the on-disk profile description. Tolerances stand in
// for the host document tolerances and apply to the whole invocation.
type document struct {
	// Tolerance is the linear tolerance; zero means the library default.
	Tolerance float64 `yaml:"tolerance"`
	// AngleToleranceDegrees is the kink-split tolerance in degrees;
	// zero means the library default.
	AngleToleranceDegrees float64     `yaml:"angle_tolerance_degrees"`
	Profile               profileSpec `yaml:"profile"`
}

// profileSpec describes the profile curve. Exactly one of Points,
// Rectangle or Circle must be set; Rectangle and Circle are placed on
// the plane (world XY when omitted).
type profileSpec struct {
	Points    [][]float64 `yaml:"points"`
	Closed    bool        `yaml:"closed"`
	Rectangle *rectSpec   `yaml:"rectangle"`
	Circle    *circleSpec `yaml:"circle"`
	Plane     *planeSpec  `yaml:"plane"`
}

type rectSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type circleSpec struct {
	Radius float64 `yaml:"radius"`
	// ChordTolerance bounds the flattening error; zero means the
	// library default.
	ChordTolerance float64 `yaml:"chord_tolerance"`
}

type planeSpec struct {
	Origin []float64 `yaml:"origin"`
	Normal []float64 `yaml:"normal"`
}

func loadDocument(path string) (*document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &doc, nil
}

func (d *document) tolerance() float64 {
	if d.Tolerance > 0 {
		return d.Tolerance
	}
	return extrude.DefaultTolerance
}

func (d *document) angleTolerance() float64 {
	if d.AngleToleranceDegrees > 0 {
		return d.AngleToleranceDegrees * math.Pi / 180
	}
	return extrude.DefaultAngleTolerance
}

// curve builds the profile polyline from the document.
func (d *document) curve() (*extrude.Polyline, error) {
	spec := d.Profile
	set := 0
	if len(spec.Points) > 0 {
		set++
	}
	if spec.Rectangle != nil {
		set++
	}
	if spec.Circle != nil {
		set++
	}
	if set != 1 {
		return nil, fmt.Errorf("profile needs exactly one of points, rectangle or circle")
	}

	if len(spec.Points) > 0 {
		pts := make([]r3.Vec, len(spec.Points))
		for i, p := range spec.Points {
			if len(p) != 3 {
				return nil, fmt.Errorf("point %d has %d coordinates, want 3", i, len(p))
			}
			pts[i] = r3.Vec{X: p[0], Y: p[1], Z: p[2]}
		}
		return extrude.NewPolyline(pts, spec.Closed), nil
	}

	plane, err := spec.plane()
	if err != nil {
		return nil, err
	}
	if spec.Rectangle != nil {
		r := spec.Rectangle
		if r.Width <= 0 || r.Height <= 0 {
			return nil, fmt.Errorf("rectangle needs positive width and height")
		}
		return extrude.BuildProfile(plane).
			Rect(-r.Width/2, -r.Height/2, r.Width, r.Height).
			Polyline(), nil
	}

	c := spec.Circle
	if c.Radius <= 0 {
		return nil, fmt.Errorf("circle needs a positive radius")
	}
	b := extrude.BuildProfile(plane)
	if c.ChordTolerance > 0 {
		b.ChordTolerance(c.ChordTolerance)
	}
	return b.Circle(0, 0, c.Radius).Polyline(), nil
}

func (s profileSpec) plane() (extrude.Plane, error) {
	if s.Plane == nil {
		return extrude.WorldXY(), nil
	}
	origin, err := vec3(s.Plane.Origin, "plane origin")
	if err != nil {
		return extrude.Plane{}, err
	}
	normal, err := vec3(s.Plane.Normal, "plane normal")
	if err != nil {
		return extrude.Plane{}, err
	}
	if r3.Norm(normal) < extrude.ZeroTolerance {
		return extrude.Plane{}, fmt.Errorf("plane normal must be non-zero")
	}
	return extrude.NewPlane(origin, normal), nil
}

func vec3(v []float64, what string) (r3.Vec, error) {
	if v == nil {
		return r3.Vec{}, nil
	}
	if len(v) != 3 {
		return r3.Vec{}, fmt.Errorf("%s has %d coordinates, want 3", what, len(v))
	}
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}, nil
}
