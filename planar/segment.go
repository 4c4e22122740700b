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

	"github.com/ctessum/geom"
	"github.com/twpayne/go-geom/xy"
	"github.com/twpayne/go-geom/xy/lineintersection"
	"github.com/twpayne/go-geom/xy/lineintersector"
)

// segment is one edge of a Path. The embedded LineString makes it
// indexable by the R-tree.
type segment struct {
	geom.LineString
	a, b Vertex
}

func newSegment(a, b Vertex) *segment {
	return &segment{LineString: geom.LineString{a.Point, b.Point}, a: a, b: b}
}

func (s *segment) length() float64 { return dist(s.a.Point, s.b.Point) }

// degenerate reports whether s collapses to a point in the plane, which
// happens when the segment runs parallel to the omitted axis.
func (s *segment) degenerate(tol float64) bool { return s.length() <= tol }

// at returns the vertex at parameter u along s, with W interpolated.
func (s *segment) at(u float64) Vertex {
	return Vertex{
		Point: geom.Point{X: s.a.X + u*(s.b.X-s.a.X), Y: s.a.Y + u*(s.b.Y-s.a.Y)},
		W:     s.a.W + u*(s.b.W-s.a.W),
	}
}

// project returns the parameter of the point on s closest to p.
func (s *segment) project(p geom.Point) float64 {
	dx, dy := s.b.X-s.a.X, s.b.Y-s.a.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return 0
	}
	return math.Max(0, math.Min(1, ((p.X-s.a.X)*dx+(p.Y-s.a.Y)*dy)/l2))
}

// distance returns the distance from p to the closest point on s.
func (s *segment) distance(p geom.Point) float64 {
	return xy.DistanceFromPointToLine(coord(p), coord(s.a.Point), coord(s.b.Point))
}

// span returns the range of W along s.
func (s *segment) span() interval {
	return newInterval(s.a.W, s.b.W)
}

// less orders segments lexicographically so that the intersection of a
// pair is computed identically regardless of argument order.
func (s *segment) less(t *segment) bool {
	x := [6]float64{s.a.X, s.a.Y, s.a.W, s.b.X, s.b.Y, s.b.W}
	y := [6]float64{t.a.X, t.a.Y, t.a.W, t.b.X, t.b.Y, t.b.W}
	for i := range x {
		if x[i] != y[i] {
			return x[i] < y[i]
		}
	}
	return false
}

func coord(p geom.Point) []float64 { return []float64{p.X, p.Y} }

type interval struct{ lo, hi float64 }

func newInterval(a, b float64) interval {
	return interval{lo: math.Min(a, b), hi: math.Max(a, b)}
}

// carry returns the W value shared by two intervals: the midpoint of their
// overlap, or the midpoint of the gap between them if they are disjoint.
func carry(a, b interval) float64 {
	lo, hi := math.Max(a.lo, b.lo), math.Min(a.hi, b.hi)
	return (lo + hi) / 2
}

// segments adds the intersection of s and t to c.
func (c *collector) segments(s, t *segment) {
	if t.less(s) {
		s, t = t, s
	}
	ds, dt := s.degenerate(c.tol), t.degenerate(c.tol)
	switch {
	case ds && dt:
		if dist(s.a.Point, t.a.Point) > c.tol {
			return
		}
		c.stack(mid(s.a.Point, t.a.Point), s.span(), t.span())
	case ds:
		c.pierce(s, t)
	case dt:
		c.pierce(t, s)
	default:
		c.cross(s, t)
	}
}

// stack adds the intersection at p of two segments that both have a range
// of W values there. An overlap of the ranges wider than the tolerance is
// itself an overlap.
func (c *collector) stack(p geom.Point, a, b interval) {
	lo, hi := math.Max(a.lo, b.lo), math.Min(a.hi, b.hi)
	if hi-lo > c.tol {
		c.addLine(LineString{{Point: p, W: lo}, {Point: p, W: hi}})
		return
	}
	c.addPoint(Vertex{Point: p, W: carry(a, b)})
}

// pierce adds the intersection of degenerate segment d with segment t.
func (c *collector) pierce(d, t *segment) {
	if t.distance(d.a.Point) > c.tol {
		return
	}
	on := t.at(t.project(d.a.Point))
	c.stack(mid(d.a.Point, on.Point), d.span(), interval{lo: on.W, hi: on.W})
}

// cross adds the intersection of two segments with non-zero length.
// Endpoints within the tolerance of the other segment count as touching,
// and if two of them are further apart than the tolerance the segments
// overlap between them.
func (c *collector) cross(s, t *segment) {
	var near []geom.Point
	for _, e := range [...]struct {
		p     geom.Point
		other *segment
	}{{s.a.Point, t}, {s.b.Point, t}, {t.a.Point, s}, {t.b.Point, s}} {
		if e.other.distance(e.p) <= c.tol {
			near = append(near, e.p)
		}
	}
	if len(near) > 1 {
		lo, hi := near[0], near[0]
		for _, p := range near[1:] {
			if u := s.project(p); u < s.project(lo) {
				lo = p
			} else if u > s.project(hi) {
				hi = p
			}
		}
		if dist(lo, hi) > c.tol {
			c.addLine(LineString{c.join(s, t, lo), c.join(s, t, hi)})
			return
		}
	}

	r := lineintersector.LineIntersectsLine(lineintersector.RobustLineIntersector{},
		coord(s.a.Point), coord(s.b.Point), coord(t.a.Point), coord(t.b.Point))
	switch r.Type() {
	case lineintersection.PointIntersection:
		p := r.Intersection()[0]
		c.addPoint(c.join(s, t, geom.Point{X: p[0], Y: p[1]}))
	case lineintersection.CollinearIntersection:
		ends := r.Intersection()
		p, q := geom.Point{X: ends[0][0], Y: ends[0][1]}, geom.Point{X: ends[1][0], Y: ends[1][1]}
		if dist(p, q) <= c.tol {
			c.addPoint(c.join(s, t, mid(p, q)))
			return
		}
		if s.project(q) < s.project(p) {
			p, q = q, p
		}
		c.addLine(LineString{c.join(s, t, p), c.join(s, t, q)})
	default:
		if len(near) > 0 {
			c.addPoint(c.join(s, t, near[0]))
		}
	}
}

// join returns the vertex at p with W averaged between s and t.
func (c *collector) join(s, t *segment, p geom.Point) Vertex {
	return Vertex{Point: p, W: (s.at(s.project(p)).W + t.at(t.project(p)).W) / 2}
}
