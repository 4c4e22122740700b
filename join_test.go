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
	"reflect"
	"testing"

	"github.com/kr/pretty"
)

func TestJoin(t *testing.T) {
	tests := []struct {
		name       string
		xy, xz, yz []Candidate
		epsilon    float64
		want       []Coordinate
	}{
		{
			name:    "exact",
			xy:      []Candidate{{1, 2, 3}},
			xz:      []Candidate{{1, 3, 2}},
			yz:      []Candidate{{2, 3, 1}},
			epsilon: 0,
			want:    []Coordinate{{X: 1, Y: 2, Z: 3}},
		},
		{
			name: "xz disagrees",
			xy:   []Candidate{{1, 2, 3}},
			xz:   []Candidate{{1, 3, 2.5}},
			yz:   []Candidate{{2, 3, 1}},
		},
		{
			name: "yz disagrees",
			xy:   []Candidate{{1, 2, 3}},
			xz:   []Candidate{{1, 3, 2}},
			yz:   []Candidate{{2, 4, 1}},
		},
		{
			name: "empty plane",
			xy:   []Candidate{{1, 2, 3}},
			xz:   []Candidate{{1, 3, 2}},
		},
		{
			// Cartesian product: only one combination is consistent.
			name:    "multiple candidates",
			xy:      []Candidate{{0, 0, 0}, {0, 0, 5}, {1, 1, 1}},
			xz:      []Candidate{{0, 0, 0}, {1, 1, 7}},
			yz:      []Candidate{{0, 0, 0}, {1, 1, 1}, {0, 5, 0}},
			epsilon: 1e-6,
			want:    []Coordinate{{}},
		},
		{
			name:    "within epsilon",
			xy:      []Candidate{{1, 2, 3}},
			xz:      []Candidate{{1 + 4e-7, 3 - 4e-7, 2}},
			yz:      []Candidate{{2, 3 + 9e-7, 1 - 2e-7}},
			epsilon: 1e-6,
			want:    []Coordinate{{X: 1, Y: 2, Z: 3}},
		},
		{
			// Exact equality rejects interpolation noise.
			name: "noise without epsilon",
			xy:   []Candidate{{1, 2, 3}},
			xz:   []Candidate{{1 + 4e-7, 3, 2}},
			yz:   []Candidate{{2, 3, 1}},
		},
		{
			name:    "across bucket boundary",
			xy:      []Candidate{{0.99e-6, 0, 0}},
			xz:      []Candidate{{1.01e-6, 0, 0}},
			yz:      []Candidate{{0, 0, 1.01e-6}},
			epsilon: 1e-6,
			want:    []Coordinate{{X: 0.99e-6}},
		},
		{
			name:    "beyond epsilon",
			xy:      []Candidate{{1, 2, 3}},
			xz:      []Candidate{{1, 3, 2 + 2e-6}},
			yz:      []Candidate{{2, 3, 1}},
			epsilon: 1e-6,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			have := Join(test.xy, test.xz, test.yz, test.epsilon)
			if !reflect.DeepEqual(have, test.want) {
				t.Error(pretty.Diff(have, test.want))
			}
		})
	}
}

func TestJoinRelations(t *testing.T) {
	tests := []struct {
		name       string
		xy, xz, yz Relation
		want       []Coordinate
	}{
		{
			// (0,0,0)-(2,2,2) and (2,0,0)-(0,2,2) are collinear on YZ.
			name: "point on stretch",
			xy:   Relation{Points: []Candidate{{1, 1, 1}}},
			xz:   Relation{Points: []Candidate{{1, 1, 1}}},
			yz:   Relation{Stretches: []Stretch{{{0, 0, 1}, {2, 2, 1}}}},
			want: []Coordinate{{X: 1, Y: 1, Z: 1}},
		},
		{
			name: "point off stretch in W",
			xy:   Relation{Points: []Candidate{{1, 1, 1}}},
			xz:   Relation{Points: []Candidate{{1, 1, 1}}},
			yz:   Relation{Stretches: []Stretch{{{0, 0, 0}, {2, 2, 0}}}},
		},
		{
			name: "collinear in space",
			xy:   Relation{Stretches: []Stretch{{{1, 0, 0}, {2, 0, 0}}}},
			xz:   Relation{Stretches: []Stretch{{{1, 0, 0}, {2, 0, 0}}}},
			yz:   Relation{Stretches: []Stretch{{{0, 0, 1}, {0, 0, 2}}}},
			want: []Coordinate{{X: 1}, {X: 2}},
		},
		{
			name: "point inside degenerate stretch",
			xy:   Relation{Points: []Candidate{{1.5, 0, 0}}},
			xz:   Relation{Points: []Candidate{{1.5, 0, 0}}},
			yz:   Relation{Stretches: []Stretch{{{0, 0, 1}, {0, 0, 2}}}},
			want: []Coordinate{{X: 1.5}},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			have := JoinRelations(test.xy, test.xz, test.yz, 1e-6)
			if !reflect.DeepEqual(have, test.want) {
				t.Error(pretty.Diff(have, test.want))
			}
		})
	}
}

func TestDedup(t *testing.T) {
	tests := []struct {
		name    string
		in      []Coordinate
		epsilon float64
		want    []Coordinate
	}{
		{name: "empty"},
		{
			name: "exact",
			in:   []Coordinate{{X: 1}, {X: 0}, {X: 1}, {X: 1, Z: 1e-9}},
			want: []Coordinate{{X: 0}, {X: 1}, {X: 1, Z: 1e-9}},
		},
		{
			name:    "tolerance",
			in:      []Coordinate{{X: 1, Z: 1e-9}, {X: 0}, {X: 1}, {X: 1 + 2e-6}},
			epsilon: 1e-6,
			want:    []Coordinate{{X: 0}, {X: 1}, {X: 1 + 2e-6}},
		},
		{
			name:    "bucket boundary",
			in:      []Coordinate{{Y: 1.01e-6}, {Y: 0.99e-6}},
			epsilon: 1e-6,
			want:    []Coordinate{{Y: 0.99e-6}},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			have := Dedup(test.in, test.epsilon)
			if !reflect.DeepEqual(have, test.want) {
				t.Error(pretty.Diff(have, test.want))
			}
		})
	}
}
