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

// Package planar computes intersections between points and polylines in the
// plane. Every vertex carries a third coordinate W that takes no part in the
// intersection test; at each intersection W is linearly interpolated along
// the segments involved.
package planar

import (
	"math"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"
)

// Vertex is a point in the plane carrying an extra coordinate W.
type Vertex struct {
	geom.Point
	W float64
}

// V returns a new Vertex.
func V(x, y, w float64) Vertex {
	return Vertex{Point: geom.Point{X: x, Y: y}, W: w}
}

// Path is either a single point or an open polyline.
type Path struct {
	vertices []Vertex
	bounds   *geom.Bounds
	segments *rtree.Rtree
}

// NewPath creates a Path from v. One vertex makes a point, two or more make
// a polyline. It panics if v is empty.
func NewPath(v ...Vertex) *Path {
	if len(v) == 0 {
		panic("planar: a path needs at least one vertex")
	}
	p := &Path{
		vertices: make([]Vertex, len(v)),
		bounds:   geom.NewBounds(),
	}
	copy(p.vertices, v)
	for _, vv := range p.vertices {
		p.bounds.Extend(vv.Bounds())
	}
	if len(p.vertices) > 1 {
		p.segments = rtree.NewTree(25, 50)
		for i := 0; i < len(p.vertices)-1; i++ {
			p.segments.Insert(newSegment(p.vertices[i], p.vertices[i+1]))
		}
	}
	return p
}

// IsPoint reports whether p holds a single vertex.
func (p *Path) IsPoint() bool { return len(p.vertices) == 1 }

// Vertices returns a copy of the vertices of p.
func (p *Path) Vertices() []Vertex {
	o := make([]Vertex, len(p.vertices))
	copy(o, p.vertices)
	return o
}

// Bounds gives the planar extent of p.
func (p *Path) Bounds() *geom.Bounds { return p.bounds.Copy() }

// Intersects reports whether p and o share at least one point, where
// points closer than tol are considered to coincide.
func (p *Path) Intersects(o *Path, tol float64) bool {
	_, empty := p.Intersection(o, tol).(Empty)
	return !empty
}

// Intersection returns the intersection of p and o. Points closer than tol
// are considered to coincide. The result is Empty, Point, MultiPoint,
// LineString (a collinear overlap) or a Collection mixing points and
// overlaps.
func (p *Path) Intersection(o *Path, tol float64) Geometry {
	if !grow(p.bounds, tol).Overlaps(o.bounds) {
		return Empty{}
	}
	c := &collector{tol: tol}
	switch {
	case p.IsPoint() && o.IsPoint():
		a, b := p.vertices[0], o.vertices[0]
		if dist(a.Point, b.Point) <= tol {
			c.addPoint(Vertex{Point: mid(a.Point, b.Point), W: (a.W + b.W) / 2})
		}
	case p.IsPoint():
		c.pointOnPath(p.vertices[0], o)
	case o.IsPoint():
		c.pointOnPath(o.vertices[0], p)
	default:
		for i := 0; i < len(p.vertices)-1; i++ {
			s := newSegment(p.vertices[i], p.vertices[i+1])
			for _, t := range o.segments.SearchIntersect(grow(s.Bounds(), tol)) {
				c.segments(s, t.(*segment))
			}
		}
	}
	return c.geometry()
}

// pointOnPath adds q if it lies on any segment of p.
func (c *collector) pointOnPath(q Vertex, p *Path) {
	for _, s := range p.segments.SearchIntersect(rtree.ToRect(q.Point, c.tol)) {
		if s.(*segment).distance(q.Point) <= c.tol {
			c.addPoint(q)
			return
		}
	}
}

// grow returns a copy of b extended by tol on every side.
func grow(b *geom.Bounds, tol float64) *geom.Bounds {
	o := b.Copy()
	o.Min.X -= tol
	o.Min.Y -= tol
	o.Max.X += tol
	o.Max.Y += tol
	return o
}

func dist(p, q geom.Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

func mid(p, q geom.Point) geom.Point {
	return geom.Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}
