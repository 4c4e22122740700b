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
	"sort"
)

// Coordinate is a position in planar (x, y, z) or geodetic
// (longitude, latitude, altitude) coordinates. Z is zero for
// two-dimensional data.
type Coordinate struct {
	X, Y, Z float64
}

// Slice returns the first dims components of c.
func (c Coordinate) Slice(dims int) []float64 {
	if dims == 2 {
		return []float64{c.X, c.Y}
	}
	return []float64{c.X, c.Y, c.Z}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%g, %g, %g)", c.X, c.Y, c.Z)
}

func (c Coordinate) finite() bool {
	for _, v := range [3]float64{c.X, c.Y, c.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// coordinateFromSlice converts v, which must have 2 or 3 elements.
func coordinateFromSlice(v []float64) Coordinate {
	c := Coordinate{X: v[0], Y: v[1]}
	if len(v) > 2 {
		c.Z = v[2]
	}
	return c
}

func coordinateLess(a, b Coordinate) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Z < b.Z
}

// sortCoordinates sorts c by X, then Y, then Z.
func sortCoordinates(c []Coordinate) {
	sort.Slice(c, func(i, j int) bool { return coordinateLess(c[i], c[j]) })
}
