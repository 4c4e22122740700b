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

package planar

import (
	"math"
	"sort"
)

// Geometry is the result of an intersection. It is one of Empty, Point,
// MultiPoint, LineString or Collection.
type Geometry interface {
	geometry()
}

// Empty is an empty intersection.
type Empty struct{}

// Point is an intersection at a single vertex.
type Point struct {
	Vertex
}

// MultiPoint is an intersection at several separate vertices.
type MultiPoint []Vertex

// LineString is a stretch where two paths overlap. Its vertices may share
// the same planar location when the overlap extends only along W.
type LineString []Vertex

// Collection holds overlaps together with separate points.
type Collection []Geometry

func (Empty) geometry()      {}
func (Point) geometry()      {}
func (MultiPoint) geometry() {}
func (LineString) geometry() {}
func (Collection) geometry() {}

// collector accumulates intersection pieces, merging points that are
// within tol of each other.
type collector struct {
	tol    float64
	points []Vertex
	lines  []LineString
}

func (c *collector) same(a, b Vertex) bool {
	return math.Abs(a.X-b.X) <= c.tol && math.Abs(a.Y-b.Y) <= c.tol && math.Abs(a.W-b.W) <= c.tol
}

func (c *collector) addPoint(v Vertex) {
	for _, p := range c.points {
		if c.same(p, v) {
			return
		}
	}
	c.points = append(c.points, v)
}

func (c *collector) addLine(l LineString) {
	for _, have := range c.lines {
		if (c.same(have[0], l[0]) && c.same(have[1], l[1])) ||
			(c.same(have[0], l[1]) && c.same(have[1], l[0])) {
			return
		}
	}
	c.lines = append(c.lines, l)
}

// geometry assembles the collected pieces. Points that coincide with the
// end of an overlap are dropped.
func (c *collector) geometry() Geometry {
	var points []Vertex
outer:
	for _, p := range c.points {
		for _, l := range c.lines {
			if c.same(p, l[0]) || c.same(p, l[len(l)-1]) {
				continue outer
			}
		}
		points = append(points, p)
	}
	sortVertices(points)
	sort.Slice(c.lines, func(i, j int) bool { return vertexLess(c.lines[i][0], c.lines[j][0]) })

	switch {
	case len(c.lines) == 0 && len(points) == 0:
		return Empty{}
	case len(c.lines) == 0 && len(points) == 1:
		return Point{Vertex: points[0]}
	case len(c.lines) == 0:
		return MultiPoint(points)
	case len(c.lines) == 1 && len(points) == 0:
		return c.lines[0]
	}
	o := make(Collection, 0, len(c.lines)+len(points))
	for _, l := range c.lines {
		o = append(o, l)
	}
	for _, p := range points {
		o = append(o, Point{Vertex: p})
	}
	return o
}

func vertexLess(a, b Vertex) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.W < b.W
}

func sortVertices(v []Vertex) {
	sort.Slice(v, func(i, j int) bool { return vertexLess(v[i], v[j]) })
}
