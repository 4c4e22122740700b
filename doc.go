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

// Package geoshape finds where points and polylines in three-dimensional
// space intersect. Geodetic input is projected to planar coordinates, each
// entity is projected onto the XY, XZ and YZ planes, and the intersections
// found independently on each plane are joined into the set of points that
// are consistent on all three.
package geoshape

// Version gives the version number.
const Version = "0.1.0"
