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
	"context"
	"fmt"
	"math"
	"runtime"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// DefaultEpsilon is the default tolerance, in planar units, below which
// coordinates are considered equal.
const DefaultEpsilon = 1e-6

// OverlapPolicy decides what happens when two projections overlap along a
// stretch rather than meeting at discrete points.
type OverlapPolicy int

const (
	// OverlapEndpoints lets overlapping stretches take part in the join.
	// Where the entities overlap in space, the ends of the overlap are
	// reported.
	OverlapEndpoints OverlapPolicy = iota
	// OverlapReject fails with an UnhandledOverlapError.
	OverlapReject
)

func (p OverlapPolicy) String() string {
	switch p {
	case OverlapEndpoints:
		return "endpoints"
	case OverlapReject:
		return "reject"
	default:
		return fmt.Sprintf("OverlapPolicy(%d)", int(p))
	}
}

// ParseOverlapPolicy parses the name of an OverlapPolicy.
func ParseOverlapPolicy(s string) (OverlapPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "endpoints", "":
		return OverlapEndpoints, nil
	case "reject":
		return OverlapReject, nil
	}
	return 0, fmt.Errorf("geoshape: invalid overlap policy %q", s)
}

// EngineConfig configures an Engine.
type EngineConfig struct {
	// Epsilon is the tolerance used by the planar intersections, the join
	// across planes and the removal of duplicate points. Zero means exact
	// floating-point equality.
	Epsilon float64

	// Overlap is the policy for overlapping projections.
	Overlap OverlapPolicy

	// Log receives debugging output. If nil, the standard logrus logger
	// is used.
	Log logrus.FieldLogger
}

// Engine computes intersections between entities. It is safe for
// concurrent use.
type Engine struct {
	epsilon float64
	overlap OverlapPolicy
	log     logrus.FieldLogger
}

// DefaultEngine is an Engine using DefaultEpsilon and OverlapEndpoints.
var DefaultEngine = &Engine{
	epsilon: DefaultEpsilon,
	overlap: OverlapEndpoints,
	log:     logrus.StandardLogger(),
}

// NewEngine creates an Engine. A nil config gives the same Engine as
// DefaultEngine.
func NewEngine(c *EngineConfig) (*Engine, error) {
	if c == nil {
		c = &EngineConfig{Epsilon: DefaultEpsilon}
	}
	if math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon < 0 {
		return nil, fmt.Errorf("geoshape: invalid epsilon %g", c.Epsilon)
	}
	switch c.Overlap {
	case OverlapEndpoints, OverlapReject:
	default:
		return nil, fmt.Errorf("geoshape: invalid overlap policy %v", c.Overlap)
	}
	e := &Engine{epsilon: c.Epsilon, overlap: c.Overlap, log: c.Log}
	if e.log == nil {
		e.log = logrus.StandardLogger()
	}
	return e, nil
}

// Epsilon returns the tolerance of e.
func (e *Engine) Epsilon() float64 { return e.epsilon }

// Intersection returns the points where a and b intersect, sorted by
// (X, Y, Z). If either entity is two-dimensional, the XY projections are
// intersected directly and the results are two-dimensional. Otherwise a
// point is only reported if the projections onto all three planes agree
// on it. If geodetic is true the points are converted back to the source
// reference system of a's projector.
func (e *Engine) Intersection(a, b *Entity, geodetic bool) ([]Coordinate, error) {
	var points []Coordinate
	var err error
	if a.spatial == nil || b.spatial == nil {
		points, err = e.flat(a, b)
	} else {
		points, err = e.spatial(a, b)
	}
	if err != nil || len(points) == 0 || !geodetic {
		return points, err
	}

	p, err := outputProjector(a, b)
	if err != nil {
		return nil, err
	}
	for i, c := range points {
		if points[i], err = p.Inverse(c); err != nil {
			return nil, err
		}
	}
	return points, nil
}

// flat intersects the XY projections of a and b.
func (e *Engine) flat(a, b *Entity) ([]Coordinate, error) {
	r := intersectPlane(a.xy, b.xy, e.epsilon)
	e.logResult(r)
	c, err := r.candidates(e.overlap)
	if err != nil {
		return nil, err
	}
	points := make([]Coordinate, len(c))
	for i, cc := range c {
		points[i] = Coordinate{X: cc.U, Y: cc.V}
	}
	return Dedup(points, e.epsilon), nil
}

// spatial intersects the projections of a and b onto all three planes and
// joins the results.
func (e *Engine) spatial(a, b *Entity) ([]Coordinate, error) {
	pairs := [3][2]*Projection{
		{a.xy, b.xy},
		{a.spatial.xz, b.spatial.xz},
		{a.spatial.yz, b.spatial.yz},
	}
	var results [3]Result
	for i, p := range pairs {
		results[i] = intersectPlane(p[0], p[1], e.epsilon)
		e.logResult(results[i])
		if results[i].Kind == EmptyResult {
			return nil, nil
		}
	}
	var rel [3]Relation
	for i, r := range results {
		var err error
		if rel[i], err = r.relation(e.overlap); err != nil {
			return nil, err
		}
	}
	joined := JoinRelations(rel[XY], rel[XZ], rel[YZ], e.epsilon)
	e.log.WithFields(logrus.Fields{
		"xy":     len(rel[XY].Points) + len(rel[XY].Stretches),
		"xz":     len(rel[XZ].Points) + len(rel[XZ].Stretches),
		"yz":     len(rel[YZ].Points) + len(rel[YZ].Stretches),
		"joined": len(joined),
	}).Debug("geoshape: joined planar candidates")
	return Dedup(joined, e.epsilon), nil
}

func (e *Engine) logResult(r Result) {
	e.log.WithFields(logrus.Fields{
		"plane":    r.Plane,
		"kind":     r.Kind,
		"points":   len(r.Points),
		"overlaps": len(r.Overlaps),
	}).Debug("geoshape: planar intersection")
}

// outputProjector returns the projector used to convert results of a and b
// back to geodetic coordinates.
func outputProjector(a, b *Entity) (*Projector, error) {
	p := a.projector
	if p == nil {
		p = b.projector
	}
	if p == nil {
		return nil, &InvalidCRSError{Err: fmt.Errorf("geodetic output needs a projector")}
	}
	if a.projector != nil && b.projector != nil && !a.projector.sameTarget(b.projector) {
		return nil, &InvalidCRSError{
			CRS: b.projector.Target,
			Err: fmt.Errorf("entities are projected to different reference systems (%s and %s)", a.projector.Target, b.projector.Target),
		}
	}
	return p, nil
}

// Intersects reports whether a and b have at least one intersection point.
func (e *Engine) Intersects(a, b *Entity) (bool, error) {
	p, err := e.Intersection(a, b, false)
	return len(p) > 0, err
}

// PairResult holds the intersection of entities I and J, I < J.
type PairResult struct {
	I, J   int
	Points []Coordinate
}

// Pairwise intersects every unordered pair of entities concurrently and
// returns the pairs that intersect, ordered by I and then J. It stops at the
// first error or when ctx is canceled.
func (e *Engine) Pairwise(ctx context.Context, entities []*Entity, geodetic bool) ([]PairResult, error) {
	var pairs []PairResult
	for i := range entities {
		for j := i + 1; j < len(entities); j++ {
			pairs = append(pairs, PairResult{I: i, J: j})
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	nprocs := runtime.GOMAXPROCS(0)
	var wg sync.WaitGroup
	var once sync.Once
	var firstErr error
	wg.Add(nprocs)
	for pp := 0; pp < nprocs; pp++ {
		go func(pp int) {
			defer wg.Done()
			for ii := pp; ii < len(pairs); ii += nprocs {
				if ctx.Err() != nil {
					return
				}
				p := &pairs[ii]
				points, err := e.Intersection(entities[p.I], entities[p.J], geodetic)
				if err != nil {
					once.Do(func() {
						firstErr = fmt.Errorf("geoshape: intersecting entities %d and %d: %w", p.I, p.J, err)
						cancel()
					})
					return
				}
				p.Points = points
			}
		}(pp)
	}
	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	o := pairs[:0]
	for _, p := range pairs {
		if len(p.Points) > 0 {
			o = append(o, p)
		}
	}
	return o, nil
}
