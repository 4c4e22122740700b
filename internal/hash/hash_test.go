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

package hash

import (
	"math"
	"testing"
)

type definition struct {
	Name   string
	Lat0   float64
	sphere bool
	datum  *datum
}

type datum struct{ code string }

type named string

func (n named) String() string { return "crs:" + string(n) }

func TestHash(t *testing.T) {
	def := func(lat0 float64, sphere bool, code string) [2]*definition {
		return [2]*definition{
			{Name: "longlat", Lat0: math.NaN(), datum: &datum{code: "WGS84"}},
			{Name: "laea", Lat0: lat0, sphere: sphere, datum: &datum{code: code}},
		}
	}
	a := Hash(def(45, true, "none"))
	if b := Hash(def(45, true, "none")); a != b {
		t.Errorf("equal values hash differently: %s != %s", a, b)
	}
	if len(a) != 32 {
		t.Errorf("key %s has length %d", a, len(a))
	}
	for name, v := range map[string][2]*definition{
		"exported field":   def(40, true, "none"),
		"unexported field": def(45, false, "none"),
		"pointer target":   def(45, true, "WGS84"),
	} {
		if Hash(v) == a {
			t.Errorf("%s: different values hash the same", name)
		}
	}
	if have := Hash(named("4326")); have != "crs:4326" {
		t.Errorf("Stringer key = %q", have)
	}
}
