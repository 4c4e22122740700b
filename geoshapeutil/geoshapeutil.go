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

package geoshapeutil

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/geoshape"
)

// Intersect intersects the geometries in GeoJSON files a and b and writes
// their intersection points as a GeoJSON MultiPoint to outputFile, or to
// stdout if outputFile is empty.
func Intersect(a, b, outputFile string, stdout io.Writer) error {
	if a == "" || b == "" {
		return fmt.Errorf("geoshape: two geometry files are required (--A and --B)")
	}
	if err := checkOutputFile(outputFile); err != nil {
		return err
	}
	log, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	e, err := newEngine(log)
	if err != nil {
		return err
	}
	p, err := projector("", "")
	if err != nil {
		return err
	}
	planar := Cfg.GetBool("Planar")
	var entities [2]*geoshape.Entity
	for i, path := range []string{a, b} {
		coords, err := readGeometry(path)
		if err != nil {
			return err
		}
		if entities[i], err = newEntity(coords, p, planar); err != nil {
			return fmt.Errorf("geoshape: geometry %s: %v", path, err)
		}
	}

	points, err := e.Intersection(entities[0], entities[1], Cfg.GetBool("Geodetic"))
	if err != nil {
		return err
	}
	dims := 3
	if entities[0].Dims() == 2 || entities[1].Dims() == 2 {
		dims = 2
	}
	log.WithFields(logrus.Fields{
		"a":      a,
		"b":      b,
		"points": len(points),
	}).Info("geoshape: intersected geometries")
	return writeOutput(outputFile, stdout, multiPoint(points, dims))
}

// Scene is a set of named entities read from a TOML file. SourceCRS and
// TargetCRS override the corresponding options when set, and Planar marks
// the coordinates as planar in addition to the Planar option.
type Scene struct {
	SourceCRS, TargetCRS string
	Planar               bool
	Entity               []SceneEntity
}

// SceneEntity is a named point (one coordinate) or polyline.
type SceneEntity struct {
	Name        string
	Coordinates [][]float64
}

// PairOutput is the intersection of two scene entities.
type PairOutput struct {
	A, B   string
	Points [][]float64
}

// loadScene reads a Scene from a TOML file.
func loadScene(path string) (*Scene, error) {
	if path == "" {
		return nil, fmt.Errorf("geoshape: a scene file is required (--Scene)")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("geoshape: opening scene: %v", err)
	}
	defer f.Close()
	s := new(Scene)
	if _, err := toml.DecodeReader(f, s); err != nil {
		return nil, fmt.Errorf("geoshape: decoding scene %s: %v", path, err)
	}
	if len(s.Entity) < 2 {
		return nil, fmt.Errorf("geoshape: scene %s has %d entities; need at least 2", path, len(s.Entity))
	}
	return s, nil
}

// Batch intersects every pair of entities in the TOML scene file and
// writes the pairs that intersect as JSON to outputFile, or to stdout if
// outputFile is empty.
func Batch(ctx context.Context, scene, outputFile string, stdout io.Writer) error {
	if err := checkOutputFile(outputFile); err != nil {
		return err
	}
	s, err := loadScene(scene)
	if err != nil {
		return err
	}
	log, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	e, err := newEngine(log)
	if err != nil {
		return err
	}
	p, err := projector(s.SourceCRS, s.TargetCRS)
	if err != nil {
		return err
	}
	planar := s.Planar || Cfg.GetBool("Planar")
	entities := make([]*geoshape.Entity, len(s.Entity))
	for i, se := range s.Entity {
		if entities[i], err = newEntity(se.Coordinates, p, planar); err != nil {
			return fmt.Errorf("geoshape: entity %q: %v", se.Name, err)
		}
	}

	pairs, err := e.Pairwise(ctx, entities, Cfg.GetBool("Geodetic"))
	if err != nil {
		return err
	}
	o := make([]PairOutput, len(pairs))
	for i, pr := range pairs {
		dims := 3
		if entities[pr.I].Dims() == 2 || entities[pr.J].Dims() == 2 {
			dims = 2
		}
		o[i] = PairOutput{A: s.Entity[pr.I].Name, B: s.Entity[pr.J].Name}
		for _, c := range pr.Points {
			o[i].Points = append(o[i].Points, c.Slice(dims))
		}
	}
	log.WithFields(logrus.Fields{
		"scene":        scene,
		"entities":     len(entities),
		"intersecting": len(o),
	}).Info("geoshape: intersected scene")
	return writeOutput(outputFile, stdout, o)
}
