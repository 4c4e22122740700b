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

	"github.com/ctessum/geom/proj"
)

const (
	deg2rad = math.Pi / 180
	rad2deg = 180 / math.Pi
)

// laeaName is the proj name of the Lambert azimuthal equal-area
// projection, which the proj package does not implement.
const laeaName = "laea"

// laea returns the spherical Lambert azimuthal equal-area transforms for
// sr. forward takes longitude and latitude in degrees and returns
// projected coordinates; inverse does the opposite.
func laea(sr *proj.SR) (forward, inverse proj.Transformer, err error) {
	if math.IsNaN(sr.A) || sr.A <= 0 {
		return nil, nil, fmt.Errorf("laea: missing sphere radius")
	}
	if !math.IsNaN(sr.B) && math.Abs(sr.A-sr.B) > 1e-9*sr.A {
		return nil, nil, fmt.Errorf("laea: only the spherical form is supported")
	}
	r := sr.A
	lat0, lon0 := orZero(sr.Lat0), orZero(sr.Long0)
	x0, y0 := orZero(sr.X0), orZero(sr.Y0)
	toMeter := sr.ToMeter
	if math.IsNaN(toMeter) || toMeter == 0 {
		toMeter = 1
	}
	sinLat0, cosLat0 := math.Sincos(lat0)

	forward = func(lon, lat float64) (float64, float64, error) {
		sinPhi, cosPhi := math.Sincos(lat * deg2rad)
		sinLam, cosLam := math.Sincos(lon*deg2rad - lon0)
		d := 1 + sinLat0*sinPhi + cosLat0*cosPhi*cosLam
		if d < 1e-12 {
			return math.NaN(), math.NaN(), fmt.Errorf("laea: point is antipodal to the projection center")
		}
		k := math.Sqrt(2 / d)
		x := r * k * cosPhi * sinLam
		y := r * k * (cosLat0*sinPhi - sinLat0*cosPhi*cosLam)
		return (x + x0) / toMeter, (y + y0) / toMeter, nil
	}

	inverse = func(x, y float64) (float64, float64, error) {
		x = x*toMeter - x0
		y = y*toMeter - y0
		rho := math.Hypot(x, y)
		if rho < 1e-12 {
			return lon0 * rad2deg, lat0 * rad2deg, nil
		}
		s := rho / (2 * r)
		if s > 1 {
			return math.NaN(), math.NaN(), fmt.Errorf("laea: point is outside the projection domain")
		}
		c := 2 * math.Asin(s)
		sinC, cosC := math.Sincos(c)
		phi := math.Asin(clamp(cosC*sinLat0+y*sinC*cosLat0/rho, -1, 1))
		lam := lon0 + math.Atan2(x*sinC, rho*cosLat0*cosC-y*sinLat0*sinC)
		return wrapLongitude(lam * rad2deg), phi * rad2deg, nil
	}
	return forward, inverse, nil
}

func orZero(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// wrapLongitude maps lon into [-180, 180].
func wrapLongitude(lon float64) float64 {
	if lon >= -180 && lon <= 180 {
		return lon
	}
	lon = math.Mod(lon+180, 360)
	if lon < 0 {
		lon += 360
	}
	return lon - 180
}
