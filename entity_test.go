/*
Copyright © 2026 the geoshape authors.
This file is part of geoshape.

geoshape is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

geoshape is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with geoshape.  If not, see <http://www.gnu.org/licenses/>.
*/

package geoshape

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/kr/pretty"
	"github.com/spatialmodel/geoshape/planar"
	"gonum.org/v1/gonum/floats"
)

func TestNewEntityInvalid(t *testing.T) {
	tests := []struct {
		name   string
		coords [][]float64
		check  func(error) bool
	}{
		{
			name:   "ragged",
			coords: [][]float64{{0, 0, 0}, {1, 1}},
			check: func(err error) bool {
				var e *DimensionMismatchError
				return errors.As(err, &e) && *e == DimensionMismatchError{Index: 1, Want: 3, Have: 2}
			},
		},
		{
			name:   "one component",
			coords: [][]float64{{0}, {1}},
			check: func(err error) bool {
				var e *DimensionMismatchError
				return errors.As(err, &e) && *e == DimensionMismatchError{Index: 0, Have: 1}
			},
		},
		{
			name:   "four components",
			coords: [][]float64{{0, 0, 0, 0}, {1, 1, 1, 1}},
			check: func(err error) bool {
				var e *DimensionMismatchError
				return errors.As(err, &e)
			},
		},
		{
			name:   "short",
			coords: [][]float64{{0, 0}},
			check:  func(err error) bool { return err == ErrShortPolyline },
		},
		{
			name:   "nan",
			coords: [][]float64{{0, 0}, {math.NaN(), 1}},
			check: func(err error) bool {
				var e *ProjectionError
				return errors.As(err, &e)
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewPolyline(test.coords, nil, true)
			if !test.check(err) {
				t.Errorf("unexpected error %v", err)
			}
		})
	}

	t.Run("geodetic without projector", func(t *testing.T) {
		_, err := NewPoint([]float64{-100, 45}, nil, false)
		var e *InvalidCRSError
		if !errors.As(err, &e) {
			t.Errorf("want InvalidCRSError, got %v", err)
		}
	})
}

func TestProjections(t *testing.T) {
	e, err := NewPolyline([][]float64{{1, 2, 3}, {4, 5, 6}}, nil, true)
	if err != nil {
		t.Fatal(err)
	}
	want := map[Plane][]planar.Vertex{
		XY: {planar.V(1, 2, 3), planar.V(4, 5, 6)},
		XZ: {planar.V(1, 3, 2), planar.V(4, 6, 5)},
		YZ: {planar.V(2, 3, 1), planar.V(5, 6, 4)},
	}
	for _, p := range Planes {
		proj, ok := e.Projection(p)
		if !ok {
			t.Fatalf("missing %v projection", p)
		}
		if proj.Plane != p {
			t.Errorf("projection plane %v, want %v", proj.Plane, p)
		}
		if have := proj.Vertices(); !reflect.DeepEqual(have, want[p]) {
			t.Errorf("%v: %v", p, pretty.Diff(have, want[p]))
		}
	}
	if e.Kind() != PolylineKind || e.Dims() != 3 {
		t.Errorf("kind %v dims %d", e.Kind(), e.Dims())
	}
	b := e.Bounds()
	if b.Min.X != 1 || b.Min.Y != 2 || b.Max.X != 4 || b.Max.Y != 5 {
		t.Errorf("bounds %+v", b)
	}

	flat, err := NewPoint([]float64{1, 2}, nil, true)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []Plane{XZ, YZ} {
		if _, ok := flat.Projection(p); ok {
			t.Errorf("2D entity has a %v projection", p)
		}
	}
	if _, ok := flat.Projection(XY); !ok {
		t.Error("2D entity has no XY projection")
	}
}

func TestPlanePermutation(t *testing.T) {
	c := Coordinate{X: 1, Y: 2, Z: 3}
	for _, p := range Planes {
		if have := p.restore(p.permute(c)); have != c {
			t.Errorf("%v: got %v", p, have)
		}
	}
}

func TestEntityImmutable(t *testing.T) {
	in := [][]float64{{0, 0}, {1, 1}}
	e, err := NewPolyline(in, nil, true)
	if err != nil {
		t.Fatal(err)
	}
	in[0][0] = 5
	c := e.Coordinates()
	c[1].X = 9
	want := []Coordinate{{X: 0, Y: 0}, {X: 1, Y: 1}}
	if have := e.Coordinates(); !reflect.DeepEqual(have, want) {
		t.Errorf("coordinates changed: %v", pretty.Diff(have, want))
	}
	if e.Geodetic() != nil {
		t.Error("planar entity has geodetic coordinates")
	}
}

func TestGeodeticEntity(t *testing.T) {
	p, err := DefaultProjector()
	if err != nil {
		t.Fatal(err)
	}
	e, err := NewPoint([]float64{-100, 45, 1000}, p, false)
	if err != nil {
		t.Fatal(err)
	}
	c := e.Coordinates()[0]
	if !floats.EqualWithinAbs(c.X, 0, 1e-6) || !floats.EqualWithinAbs(c.Y, 0, 1e-6) || c.Z != 1000 {
		t.Errorf("projected coordinate %v", c)
	}
	if have, want := e.Geodetic(), []Coordinate{{X: -100, Y: 45, Z: 1000}}; !reflect.DeepEqual(have, want) {
		t.Errorf("geodetic: %v", pretty.Diff(have, want))
	}
	if e.Projector() != p {
		t.Error("wrong projector")
	}

	_, err = NewPoint([]float64{-100, 91}, p, false)
	var projErr *ProjectionError
	if !errors.As(err, &projErr) {
		t.Errorf("want ProjectionError, got %v", err)
	}
}
