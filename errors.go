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
	"fmt"

	"github.com/spatialmodel/geoshape/planar"
)

// ErrShortPolyline is returned when a polyline has fewer than two
// coordinates.
var ErrShortPolyline = errors.New("geoshape: a polyline needs at least two coordinates")

// DimensionMismatchError reports a coordinate whose number of components is
// not 2 or 3, or differs from the first coordinate of the same entity.
type DimensionMismatchError struct {
	// Index is the position of the offending coordinate.
	Index int
	// Want is the number of components of the first coordinate, or 0 if
	// the first coordinate itself is invalid.
	Want int
	Have int
}

func (e *DimensionMismatchError) Error() string {
	if e.Want == 0 {
		return fmt.Sprintf("geoshape: coordinate %d has %d components; want 2 or 3", e.Index, e.Have)
	}
	return fmt.Sprintf("geoshape: coordinate %d has %d components but the entity is %d-dimensional",
		e.Index, e.Have, e.Want)
}

// InvalidCRSError reports a coordinate reference system definition that
// cannot be resolved, or a pair of reference systems that cannot be used
// together.
type InvalidCRSError struct {
	CRS string
	Err error
}

func (e *InvalidCRSError) Error() string {
	return fmt.Sprintf("geoshape: invalid coordinate reference system %q: %v", e.CRS, e.Err)
}

func (e *InvalidCRSError) Unwrap() error { return e.Err }

// ProjectionError reports a coordinate that is non-finite or outside the
// domain of a transform.
type ProjectionError struct {
	Coordinate Coordinate
	Err        error
}

func (e *ProjectionError) Error() string {
	return fmt.Sprintf("geoshape: projecting %v: %v", e.Coordinate, e.Err)
}

func (e *ProjectionError) Unwrap() error { return e.Err }

// UnhandledOverlapError is returned under OverlapReject when the
// projections of two entities overlap along a stretch instead of
// meeting at discrete points.
type UnhandledOverlapError struct {
	Plane    Plane
	Overlaps []planar.LineString
}

func (e *UnhandledOverlapError) Error() string {
	return fmt.Sprintf("geoshape: %d overlapping stretch(es) on the %v plane", len(e.Overlaps), e.Plane)
}
