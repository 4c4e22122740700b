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
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/geojson"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/geoshape"
	"github.com/spf13/cast"
)

// newLogger creates a logger from the LogLevel and LogFile options. The
// returned function closes the log file, if there is one.
func newLogger() (*logrus.Logger, func() error, error) {
	level, err := logrus.ParseLevel(Cfg.GetString("LogLevel"))
	if err != nil {
		return nil, nil, fmt.Errorf("geoshape: invalid LogLevel: %v", err)
	}
	log := logrus.New()
	log.Level = level
	log.Formatter = &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
		DisableSorting:  true,
	}
	closer := func() error { return nil }
	if f := os.ExpandEnv(Cfg.GetString("LogFile")); f != "" {
		w, err := os.Create(f)
		if err != nil {
			return nil, nil, fmt.Errorf("geoshape: creating log file: %v", err)
		}
		log.Out = w
		closer = w.Close
	}
	return log, closer, nil
}

// newEngine creates an Engine from the Epsilon and OverlapPolicy options.
func newEngine(log logrus.FieldLogger) (*geoshape.Engine, error) {
	policy, err := geoshape.ParseOverlapPolicy(Cfg.GetString("OverlapPolicy"))
	if err != nil {
		return nil, err
	}
	// Environment variables arrive as strings.
	epsilon, err := cast.ToFloat64E(Cfg.Get("Epsilon"))
	if err != nil {
		return nil, fmt.Errorf("geoshape: invalid Epsilon: %v", err)
	}
	return geoshape.NewEngine(&geoshape.EngineConfig{
		Epsilon: epsilon,
		Overlap: policy,
		Log:     log,
	})
}

// projector returns the shared Projector between the given reference
// systems, falling back to the SourceCRS and TargetCRS options.
func projector(source, target string) (*geoshape.Projector, error) {
	if source == "" {
		source = Cfg.GetString("SourceCRS")
	}
	if target == "" {
		target = Cfg.GetString("TargetCRS")
	}
	return geoshape.DefaultProjectors.Get(source, target)
}

// newEntity creates a point from a single coordinate and a polyline
// otherwise.
func newEntity(coords [][]float64, p *geoshape.Projector, planar bool) (*geoshape.Entity, error) {
	switch len(coords) {
	case 0:
		return nil, fmt.Errorf("geoshape: entity has no coordinates")
	case 1:
		return geoshape.NewPoint(coords[0], p, planar)
	default:
		return geoshape.NewPolyline(coords, p, planar)
	}
}

// readGeometry reads the coordinates of a GeoJSON Point or LineString,
// which may have two or three components.
func readGeometry(path string) ([][]float64, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("geoshape: reading geometry: %v", err)
	}
	var g geojson.Geometry
	if err := json.Unmarshal(b, &g); err != nil {
		return nil, fmt.Errorf("geoshape: decoding geometry %s: %v", path, err)
	}
	if flat, err := geojson.FromGeoJSON(&g); err == nil {
		switch t := flat.(type) {
		case geom.Point:
			return [][]float64{{t.X, t.Y}}, nil
		case geom.LineString:
			o := make([][]float64, len(t))
			for i, p := range t {
				o[i] = []float64{p.X, p.Y}
			}
			return o, nil
		}
	}
	// Three-dimensional geometries are decoded here.
	switch g.Type {
	case "Point":
		c, err := coordinates(g.Coordinates)
		if err != nil {
			return nil, fmt.Errorf("geoshape: geometry %s: %v", path, err)
		}
		return [][]float64{c}, nil
	case "LineString":
		a, ok := g.Coordinates.([]interface{})
		if !ok || len(a) == 0 {
			return nil, fmt.Errorf("geoshape: geometry %s: %v", path, geojson.InvalidGeometryError{})
		}
		o := make([][]float64, len(a))
		for i, v := range a {
			if o[i], err = coordinates(v); err != nil {
				return nil, fmt.Errorf("geoshape: geometry %s: %v", path, err)
			}
		}
		return o, nil
	default:
		return nil, fmt.Errorf("geoshape: geometry %s: %v", path, geojson.UnsupportedGeometryError{Type: g.Type})
	}
}

func coordinates(v interface{}) ([]float64, error) {
	a, ok := v.([]interface{})
	if !ok || len(a) < 2 || len(a) > 3 {
		return nil, geojson.InvalidGeometryError{}
	}
	o := make([]float64, len(a))
	for i, e := range a {
		if o[i], ok = e.(float64); !ok {
			return nil, geojson.InvalidGeometryError{}
		}
	}
	return o, nil
}

// multiPoint converts points to a GeoJSON MultiPoint with dims components
// per point.
func multiPoint(points []geoshape.Coordinate, dims int) *geojson.Geometry {
	c := make([][]float64, len(points))
	for i, p := range points {
		c[i] = p.Slice(dims)
	}
	return &geojson.Geometry{Type: "MultiPoint", Coordinates: c}
}

// checkOutputFile makes sure that the directory of the output file exists.
// An empty path means standard output.
func checkOutputFile(f string) error {
	if f == "" {
		return nil
	}
	if _, err := os.Stat(filepath.Dir(f)); err != nil {
		return fmt.Errorf("geoshape: the OutputFile directory doesn't exist: %v", err)
	}
	return nil
}

// writeOutput encodes v as JSON to path, or to stdout if path is empty.
func writeOutput(path string, stdout io.Writer, v interface{}) error {
	w := stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("geoshape: creating output file: %v", err)
		}
		defer f.Close()
		w = f
	}
	e := json.NewEncoder(w)
	if err := e.Encode(v); err != nil {
		return fmt.Errorf("geoshape: writing output: %v", err)
	}
	return nil
}
