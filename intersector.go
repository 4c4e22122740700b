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

	"github.com/spatialmodel/geoshape/planar"
)

// ResultKind tells which variant a Result holds.
type ResultKind int

const (
	// EmptyResult means the projections do not meet.
	EmptyResult ResultKind = iota
	// SingleResult means the projections meet at one point.
	SingleResult
	// MultiResult means the projections meet at several separate points.
	MultiResult
	// OverlapResult means the projections overlap along one or more
	// stretches, possibly in addition to separate points.
	OverlapResult
)

func (k ResultKind) String() string {
	switch k {
	case EmptyResult:
		return "Empty"
	case SingleResult:
		return "Single"
	case MultiResult:
		return "Multi"
	case OverlapResult:
		return "Overlap"
	default:
		return fmt.Sprintf("ResultKind(%d)", int(k))
	}
}

// Result is the intersection of two projections onto the same plane.
// Points and overlap vertices are in plane-local order.
type Result struct {
	Plane    Plane
	Kind     ResultKind
	Points   []planar.Vertex
	Overlaps []planar.LineString
}

// intersectPlane intersects a and b, which must be on the same plane.
func intersectPlane(a, b *Projection, tol float64) Result {
	if a.Plane != b.Plane {
		panic(fmt.Errorf("geoshape: intersecting %v projection with %v projection", a.Plane, b.Plane))
	}
	r := Result{Plane: a.Plane}
	r.classify(a.path.Intersection(b.path, tol))
	switch {
	case len(r.Overlaps) > 0:
		r.Kind = OverlapResult
	case len(r.Points) == 1:
		r.Kind = SingleResult
	case len(r.Points) > 1:
		r.Kind = MultiResult
	}
	return r
}

func (r *Result) classify(g planar.Geometry) {
	switch g := g.(type) {
	case planar.Empty:
	case planar.Point:
		r.Points = append(r.Points, g.Vertex)
	case planar.MultiPoint:
		r.Points = append(r.Points, g...)
	case planar.LineString:
		r.Overlaps = append(r.Overlaps, g)
	case planar.Collection:
		for _, gg := range g {
			r.classify(gg)
		}
	default:
		panic(fmt.Errorf("geoshape: unsupported planar geometry %T", g))
	}
}

// candidates returns the points of r as join candidates. Each overlap
// contributes its end vertices. Under OverlapReject an overlap is an error.
func (r Result) candidates(policy OverlapPolicy) ([]Candidate, error) {
	rel, err := r.relation(policy)
	if err != nil {
		return nil, err
	}
	o := make([]Candidate, 0, len(rel.Points)+2*len(rel.Stretches))
	o = append(o, rel.Points...)
	for _, s := range rel.Stretches {
		o = append(o, s[0], s[1])
	}
	return o, nil
}

// relation converts r for JoinRelations.
func (r Result) relation(policy OverlapPolicy) (Relation, error) {
	if len(r.Overlaps) > 0 && policy == OverlapReject {
		return Relation{}, &UnhandledOverlapError{Plane: r.Plane, Overlaps: r.Overlaps}
	}
	var rel Relation
	for _, v := range r.Points {
		rel.Points = append(rel.Points, candidate(v))
	}
	for _, l := range r.Overlaps {
		for i := 0; i < len(l)-1; i++ {
			rel.Stretches = append(rel.Stretches, Stretch{candidate(l[i]), candidate(l[i+1])})
		}
	}
	return rel, nil
}

func candidate(v planar.Vertex) Candidate {
	return Candidate{U: v.X, V: v.Y, W: v.W}
}

func (c Candidate) vertex() planar.Vertex {
	return planar.V(c.U, c.V, c.W)
}
