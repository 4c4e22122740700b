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
	"math"
	"sync"

	"github.com/ctessum/geom/proj"
	"github.com/golang/groupcache/lru"
	"github.com/spatialmodel/geoshape/internal/hash"
)

// geographicDef is the longitude/latitude system that transforms pass
// through when one side is a projection the proj package lacks.
const geographicDef = "+proj=longlat +ellps=WGS84 +datum=WGS84 +no_defs"

// Projector transforms coordinates between a source reference system,
// usually geographic, and a planar target reference system. Only the
// horizontal components are transformed; Z passes through unchanged.
// A Projector is immutable and safe for concurrent use.
type Projector struct {
	// Source and Target are the definitions the Projector was created
	// with.
	Source, Target string

	target           string // resolved target definition
	geographic       bool   // whether the source is longitude/latitude
	forward, inverse proj.Transformer
}

// NewProjector creates a Projector from source to target. Each definition
// may be an EPSG code ("EPSG:4326"), a proj4 string or a WKT string.
func NewProjector(source, target string) (*Projector, error) {
	srcSR, _, err := parseCRS(source)
	if err != nil {
		return nil, err
	}
	dstSR, dstDef, err := parseCRS(target)
	if err != nil {
		return nil, err
	}
	return newProjector(source, target, srcSR, dstSR, dstDef)
}

func newProjector(source, target string, srcSR, dstSR *proj.SR, dstDef string) (*Projector, error) {
	p := &Projector{
		Source:     source,
		Target:     target,
		target:     dstDef,
		geographic: srcSR.Name == "longlat",
	}
	var err error
	if srcSR.Name != laeaName && dstSR.Name != laeaName {
		if p.forward, err = srcSR.NewTransform(dstSR); err != nil {
			return nil, &InvalidCRSError{CRS: target, Err: err}
		}
		if p.inverse, err = dstSR.NewTransform(srcSR); err != nil {
			return nil, &InvalidCRSError{CRS: source, Err: err}
		}
		return p, nil
	}

	srcTo, srcFrom, err := throughGeographic(srcSR, source)
	if err != nil {
		return nil, err
	}
	dstTo, dstFrom, err := throughGeographic(dstSR, target)
	if err != nil {
		return nil, err
	}
	p.forward = chain(srcTo, dstFrom)
	p.inverse = chain(dstTo, srcFrom)
	return p, nil
}

// throughGeographic returns transforms from sr to WGS84 longitude/latitude
// degrees and back.
func throughGeographic(sr *proj.SR, def string) (to, from proj.Transformer, err error) {
	if sr.Name == laeaName {
		from, to, err = laea(sr)
		if err != nil {
			return nil, nil, &InvalidCRSError{CRS: def, Err: err}
		}
		return to, from, nil
	}
	geographic, err := proj.Parse(geographicDef)
	if err != nil {
		return nil, nil, &InvalidCRSError{CRS: def, Err: err}
	}
	if to, err = sr.NewTransform(geographic); err != nil {
		return nil, nil, &InvalidCRSError{CRS: def, Err: err}
	}
	if from, err = geographic.NewTransform(sr); err != nil {
		return nil, nil, &InvalidCRSError{CRS: def, Err: err}
	}
	return to, from, nil
}

func chain(a, b proj.Transformer) proj.Transformer {
	return func(x, y float64) (float64, float64, error) {
		x, y, err := a(x, y)
		if err != nil {
			return math.NaN(), math.NaN(), err
		}
		return b(x, y)
	}
}

// Forward projects c from the source to the target reference system.
func (p *Projector) Forward(c Coordinate) (Coordinate, error) {
	if p.geographic && (c.Y < -90 || c.Y > 90) {
		return Coordinate{}, &ProjectionError{Coordinate: c, Err: fmt.Errorf("latitude out of range")}
	}
	return p.transform(p.forward, c)
}

// Inverse projects c from the target back to the source reference system.
func (p *Projector) Inverse(c Coordinate) (Coordinate, error) {
	return p.transform(p.inverse, c)
}

func (p *Projector) transform(t proj.Transformer, c Coordinate) (Coordinate, error) {
	if !c.finite() {
		return Coordinate{}, &ProjectionError{Coordinate: c, Err: fmt.Errorf("non-finite coordinate")}
	}
	x, y, err := t(c.X, c.Y)
	if err != nil {
		return Coordinate{}, &ProjectionError{Coordinate: c, Err: err}
	}
	o := Coordinate{X: x, Y: y, Z: c.Z}
	if !o.finite() {
		return Coordinate{}, &ProjectionError{Coordinate: c, Err: fmt.Errorf("transform produced a non-finite result")}
	}
	return o, nil
}

// sameTarget reports whether p and p2 project into the same reference
// system.
func (p *Projector) sameTarget(p2 *Projector) bool {
	return p == p2 || p.target == p2.target
}

// ProjectorCache shares Projectors among entities so that each pair of
// reference systems is only set up once. It is safe for concurrent use.
type ProjectorCache struct {
	mu    sync.Mutex
	cache *lru.Cache
}

// NewProjectorCache creates a cache holding at most maxEntries Projectors.
func NewProjectorCache(maxEntries int) *ProjectorCache {
	return &ProjectorCache{cache: lru.New(maxEntries)}
}

// DefaultProjectors is the cache used by DefaultProjector.
var DefaultProjectors = NewProjectorCache(16)

// Get returns the Projector from source to target, creating it if it is
// not already cached. Definitions are compared after parsing, so different
// spellings of the same reference systems share one Projector.
func (c *ProjectorCache) Get(source, target string) (*Projector, error) {
	srcSR, _, err := parseCRS(source)
	if err != nil {
		return nil, err
	}
	dstSR, dstDef, err := parseCRS(target)
	if err != nil {
		return nil, err
	}
	key := hash.Hash([2]*proj.SR{srcSR, dstSR})

	c.mu.Lock()
	defer c.mu.Unlock()
	if p, ok := c.cache.Get(key); ok {
		return p.(*Projector), nil
	}
	p, err := newProjector(source, target, srcSR, dstSR, dstDef)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, p)
	return p, nil
}

// DefaultProjector returns the shared Projector from DefaultSourceCRS to
// DefaultTargetCRS.
func DefaultProjector() (*Projector, error) {
	return DefaultProjectors.Get(DefaultSourceCRS, DefaultTargetCRS)
}
