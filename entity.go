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
	"fmt"

	"github.com/ctessum/geom"
	"github.com/spatialmodel/geoshape/planar"
)

// Kind is the type of geometry an Entity holds.
type Kind int

const (
	// PointKind is a single coordinate.
	PointKind Kind = iota
	// PolylineKind is an open sequence of two or more coordinates.
	PolylineKind
)

func (k Kind) String() string {
	switch k {
	case PointKind:
		return "Point"
	case PolylineKind:
		return "Polyline"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Plane is one of the three orthogonal planes a three-dimensional entity is
// projected onto.
type Plane int

// The projection planes. In each plane the first two coordinates take part
// in the intersection test and the third is carried along.
const (
	XY Plane = iota // (x, y) carrying z
	XZ              // (x, z) carrying y
	YZ              // (y, z) carrying x
)

// Planes lists all projection planes.
var Planes = [3]Plane{XY, XZ, YZ}

func (p Plane) String() string {
	switch p {
	case XY:
		return "XY"
	case XZ:
		return "XZ"
	case YZ:
		return "YZ"
	default:
		return fmt.Sprintf("Plane(%d)", int(p))
	}
}

// permute re-orders c into the local order of plane p.
func (p Plane) permute(c Coordinate) planar.Vertex {
	switch p {
	case XZ:
		return planar.V(c.X, c.Z, c.Y)
	case YZ:
		return planar.V(c.Y, c.Z, c.X)
	default:
		return planar.V(c.X, c.Y, c.Z)
	}
}

// restore is the inverse of permute.
func (p Plane) restore(v planar.Vertex) Coordinate {
	switch p {
	case XZ:
		return Coordinate{X: v.X, Y: v.W, Z: v.Y}
	case YZ:
		return Coordinate{X: v.W, Y: v.X, Z: v.Y}
	default:
		return Coordinate{X: v.X, Y: v.Y, Z: v.W}
	}
}

// Projection is an entity projected onto a plane.
type Projection struct {
	Plane Plane
	path  *planar.Path
}

func newProjection(p Plane, c []Coordinate) *Projection {
	v := make([]planar.Vertex, len(c))
	for i, cc := range c {
		v[i] = p.permute(cc)
	}
	return &Projection{Plane: p, path: planar.NewPath(v...)}
}

// Vertices returns the vertices of the projection in plane-local order.
func (p *Projection) Vertices() []planar.Vertex { return p.path.Vertices() }

// spatialProjections holds the projections only three-dimensional entities
// have.
type spatialProjections struct {
	xz, yz *Projection
}

// Entity is an immutable point or polyline in planar coordinates, together
// with its projections onto the XY plane and, when it is
// three-dimensional, onto the XZ and YZ planes.
type Entity struct {
	kind      Kind
	dims      int
	coords    []Coordinate
	geodetic  []Coordinate
	projector *Projector

	xy      *Projection
	spatial *spatialProjections // nil for 2D entities
}

// NewPoint creates a point entity. If planar is false, coord is
// (longitude, latitude[, altitude]) and is projected with p; otherwise it
// is used as is and p may be nil.
func NewPoint(coord []float64, p *Projector, planar bool) (*Entity, error) {
	return newEntity(PointKind, [][]float64{coord}, p, planar)
}

// NewPolyline creates a polyline entity from two or more coordinates. See
// NewPoint for the meaning of p and planar.
func NewPolyline(coords [][]float64, p *Projector, planar bool) (*Entity, error) {
	if len(coords) < 2 {
		return nil, ErrShortPolyline
	}
	return newEntity(PolylineKind, coords, p, planar)
}

func newEntity(kind Kind, raw [][]float64, p *Projector, isPlanar bool) (*Entity, error) {
	dims := len(raw[0])
	if dims != 2 && dims != 3 {
		return nil, &DimensionMismatchError{Index: 0, Have: dims}
	}
	in := make([]Coordinate, len(raw))
	for i, r := range raw {
		if len(r) != dims {
			return nil, &DimensionMismatchError{Index: i, Want: dims, Have: len(r)}
		}
		in[i] = coordinateFromSlice(r)
		if !in[i].finite() {
			return nil, &ProjectionError{Coordinate: in[i], Err: fmt.Errorf("non-finite coordinate")}
		}
	}
	e := &Entity{kind: kind, dims: dims, projector: p}
	if isPlanar {
		e.coords = in
	} else {
		if p == nil {
			return nil, &InvalidCRSError{Err: fmt.Errorf("geodetic input needs a projector")}
		}
		e.geodetic = in
		e.coords = make([]Coordinate, len(in))
		for i, c := range in {
			var err error
			if e.coords[i], err = p.Forward(c); err != nil {
				return nil, err
			}
		}
	}

	e.xy = newProjection(XY, e.coords)
	if dims == 3 {
		e.spatial = &spatialProjections{
			xz: newProjection(XZ, e.coords),
			yz: newProjection(YZ, e.coords),
		}
	}
	return e, nil
}

// Kind returns whether e is a point or a polyline.
func (e *Entity) Kind() Kind { return e.kind }

// Dims returns 2 or 3.
func (e *Entity) Dims() int { return e.dims }

// Coordinates returns a copy of the planar coordinates of e.
func (e *Entity) Coordinates() []Coordinate {
	return append([]Coordinate(nil), e.coords...)
}

// Geodetic returns a copy of the coordinates e was created from, or nil
// if e was created from planar coordinates.
func (e *Entity) Geodetic() []Coordinate {
	if e.geodetic == nil {
		return nil
	}
	return append([]Coordinate(nil), e.geodetic...)
}

// Projector returns the projector e was created with, which may be nil.
func (e *Entity) Projector() *Projector { return e.projector }

// Projection returns the projection of e onto plane p. It reports false
// for the XZ and YZ planes of a two-dimensional entity.
func (e *Entity) Projection(p Plane) (*Projection, bool) {
	switch p {
	case XY:
		return e.xy, true
	case XZ, YZ:
		if e.spatial == nil {
			return nil, false
		}
		if p == XZ {
			return e.spatial.xz, true
		}
		return e.spatial.yz, true
	}
	return nil, false
}

// Bounds returns the planar XY extent of e.
func (e *Entity) Bounds() *geom.Bounds { return e.xy.path.Bounds() }

// Intersects reports whether e and o intersect, using DefaultEngine.
func (e *Entity) Intersects(o *Entity) (bool, error) {
	return DefaultEngine.Intersects(e, o)
}

// Intersection returns the points where e and o intersect, using
// DefaultEngine. If geodetic is true the points are converted back to
// longitude and latitude.
func (e *Entity) Intersection(o *Entity, geodetic bool) ([]Coordinate, error) {
	return DefaultEngine.Intersection(e, o, geodetic)
}
