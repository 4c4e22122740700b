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
	"math"

	"gonum.org/v1/gonum/floats"
)

// Candidate is an intersection point found on one plane, in that plane's
// local order: (x, y, z) on XY, (x, z, y) on XZ and (y, z, x) on YZ. W is
// the carried coordinate.
type Candidate struct {
	U, V, W float64
}

// Stretch is a piece along which two projections overlap, in plane-local
// order. W varies linearly from one end to the other.
type Stretch [2]Candidate

// Relation holds what one plane reports about an intersection: discrete
// candidates and overlapping stretches.
type Relation struct {
	Points    []Candidate
	Stretches []Stretch
}

type bucketKey struct{ u, v float64 }

// candidateIndex buckets the points of a Relation by (U, V) at the
// tolerance scale.
type candidateIndex struct {
	eps       float64
	buckets   map[bucketKey][]Candidate
	stretches []Stretch
}

func bucket(v, eps float64) float64 {
	if eps == 0 {
		return v
	}
	return math.Floor(v / eps)
}

// reach is the number of neighboring buckets to search on each side.
func reach(eps float64) float64 {
	if eps == 0 {
		return 0
	}
	return 1
}

func newCandidateIndex(r Relation, eps float64) *candidateIndex {
	idx := &candidateIndex{
		eps:       eps,
		buckets:   make(map[bucketKey][]Candidate),
		stretches: r.Stretches,
	}
	for _, c := range r.Points {
		k := bucketKey{u: bucket(c.U, eps), v: bucket(c.V, eps)}
		idx.buckets[k] = append(idx.buckets[k], c)
	}
	return idx
}

func (idx *candidateIndex) equal(a, b Candidate) bool {
	return floats.EqualWithinAbs(a.U, b.U, idx.eps) &&
		floats.EqualWithinAbs(a.V, b.V, idx.eps) &&
		floats.EqualWithinAbs(a.W, b.W, idx.eps)
}

// contains reports whether q matches a point of the index or lies on one
// of its stretches, within the tolerance.
func (idx *candidateIndex) contains(q Candidate) bool {
	u, v := bucket(q.U, idx.eps), bucket(q.V, idx.eps)
	r := reach(idx.eps)
	for du := -r; du <= r; du++ {
		for dv := -r; dv <= r; dv++ {
			for _, c := range idx.buckets[bucketKey{u: u + du, v: v + dv}] {
				if idx.equal(c, q) {
					return true
				}
			}
		}
	}
	for _, s := range idx.stretches {
		if s.contains(q, idx.eps) {
			return true
		}
	}
	return false
}

// contains reports whether q lies on s within eps.
func (s Stretch) contains(q Candidate, eps float64) bool {
	a, b := s[0], s[1]
	du, dv := b.U-a.U, b.V-a.V
	l2 := du*du + dv*dv
	if l2 <= eps*eps {
		// The stretch only extends along W.
		lo, hi := math.Min(a.W, b.W), math.Max(a.W, b.W)
		return math.Hypot(q.U-a.U, q.V-a.V) <= eps && q.W >= lo-eps && q.W <= hi+eps
	}
	t := ((q.U-a.U)*du + (q.V-a.V)*dv) / l2
	t = math.Max(0, math.Min(1, t))
	u, v, w := a.U+t*du, a.V+t*dv, a.W+t*(b.W-a.W)
	return math.Hypot(q.U-u, q.V-v) <= eps && floats.EqualWithinAbs(q.W, w, eps)
}

// Join returns the three-dimensional points consistent with the candidates
// of all three planes: (x, y, z) is kept if xy holds (x, y, z), xz holds
// (x, z, y) and yz holds (y, z, x), where values within epsilon of each
// other are equal. An epsilon of 0 requires exact equality.
func Join(xy, xz, yz []Candidate, epsilon float64) []Coordinate {
	return JoinRelations(Relation{Points: xy}, Relation{Points: xz}, Relation{Points: yz}, epsilon)
}

// JoinRelations is like Join, but a plane may also report stretches along
// which the projections overlap. A point on a stretch matches that plane.
// Candidates are tried in plane order, points before stretch ends, and a
// point within epsilon of one already accepted is skipped.
func JoinRelations(xy, xz, yz Relation, epsilon float64) []Coordinate {
	rel := [3]Relation{xy, xz, yz}
	var idx [3]*candidateIndex
	for i, r := range rel {
		idx[i] = newCandidateIndex(r, epsilon)
	}
	accepted := newPointSet(epsilon)
	var o []Coordinate
	try := func(p Plane, c Candidate) {
		q := p.restore(c.vertex())
		for _, pp := range Planes {
			if !idx[pp].contains(candidate(pp.permute(q))) {
				return
			}
		}
		if accepted.add(q) {
			o = append(o, q)
		}
	}
	for _, p := range Planes {
		for _, c := range rel[p].Points {
			try(p, c)
		}
	}
	for _, p := range Planes {
		for _, s := range rel[p].Stretches {
			try(p, s[0])
			try(p, s[1])
		}
	}
	return o
}

type pointKey struct{ x, y, z float64 }

// pointSet holds points that are pairwise further apart than eps.
type pointSet struct {
	eps     float64
	buckets map[pointKey][]Coordinate
}

func newPointSet(eps float64) *pointSet {
	return &pointSet{eps: eps, buckets: make(map[pointKey][]Coordinate)}
}

// add adds p unless the set holds a point within eps of it, and reports
// whether p was added.
func (s *pointSet) add(p Coordinate) bool {
	k := pointKey{x: bucket(p.X, s.eps), y: bucket(p.Y, s.eps), z: bucket(p.Z, s.eps)}
	r := reach(s.eps)
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			for dz := -r; dz <= r; dz++ {
				for _, q := range s.buckets[pointKey{x: k.x + dx, y: k.y + dy, z: k.z + dz}] {
					if floats.EqualWithinAbs(p.X, q.X, s.eps) &&
						floats.EqualWithinAbs(p.Y, q.Y, s.eps) &&
						floats.EqualWithinAbs(p.Z, q.Z, s.eps) {
						return false
					}
				}
			}
		}
	}
	s.buckets[k] = append(s.buckets[k], p)
	return true
}

// Dedup removes points that are within epsilon of an earlier point in
// (X, Y, Z) order, and returns the remaining points in that order.
func Dedup(points []Coordinate, epsilon float64) []Coordinate {
	if len(points) == 0 {
		return nil
	}
	sorted := append([]Coordinate(nil), points...)
	sortCoordinates(sorted)
	s := newPointSet(epsilon)
	o := make([]Coordinate, 0, len(sorted))
	for _, p := range sorted {
		if s.add(p) {
			o = append(o, p)
		}
	}
	return o
}
