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

// Package geoshapeutil provides the command-line interface to geoshape.
package geoshapeutil

import (
	"context"
	"fmt"
	"os"

	"github.com/lnashier/viper"
	"github.com/spatialmodel/geoshape"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

type option struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

var options []option

func init() {
	// Options are the configuration options available to geoshape.
	options = []option{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "SourceCRS",
			usage: `
              SourceCRS is the reference system of geodetic input coordinates,
              as an EPSG code, a proj4 string or a WKT string.`,
			defaultVal: geoshape.DefaultSourceCRS,
			flagsets:   []*pflag.FlagSet{intersectCmd.Flags(), batchCmd.Flags()},
		},
		{
			name: "TargetCRS",
			usage: `
              TargetCRS is the planar reference system that intersections are
              computed in, as an EPSG code, a proj4 string or a WKT string.`,
			defaultVal: geoshape.DefaultTargetCRS,
			flagsets:   []*pflag.FlagSet{intersectCmd.Flags(), batchCmd.Flags()},
		},
		{
			name: "Epsilon",
			usage: `
              Epsilon is the distance, in planar units, below which coordinates
              are considered equal. Zero requires exact equality.`,
			defaultVal: geoshape.DefaultEpsilon,
			flagsets:   []*pflag.FlagSet{intersectCmd.Flags(), batchCmd.Flags()},
		},
		{
			name: "OverlapPolicy",
			usage: `
              OverlapPolicy is what to do when two entities overlap along a
              stretch: "endpoints" reports the ends of the stretch and
              "reject" fails.`,
			defaultVal: geoshape.OverlapEndpoints.String(),
			flagsets:   []*pflag.FlagSet{intersectCmd.Flags(), batchCmd.Flags()},
		},
		{
			name: "Planar",
			usage: `
              Planar specifies that input coordinates are already in the
              target reference system and should not be projected.`,
			shorthand:  "p",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{intersectCmd.Flags(), batchCmd.Flags()},
		},
		{
			name: "Geodetic",
			usage: `
              Geodetic specifies that intersection points should be converted
              back to the source reference system.`,
			shorthand:  "g",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{intersectCmd.Flags(), batchCmd.Flags()},
		},
		{
			name: "A",
			usage: `
              A is the path to a GeoJSON file holding the first Point or
              LineString geometry.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{intersectCmd.Flags()},
		},
		{
			name: "B",
			usage: `
              B is the path to a GeoJSON file holding the second Point or
              LineString geometry.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{intersectCmd.Flags()},
		},
		{
			name: "Scene",
			usage: `
              Scene is the path to a TOML file listing the entities to
              intersect with each other.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{batchCmd.Flags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the path to write results to. If it is empty,
              results are written to standard output.`,
			shorthand:  "o",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{intersectCmd.Flags(), batchCmd.Flags()},
		},
		{
			name: "LogFile",
			usage: `
              LogFile is the path to write log messages to. If it is empty,
              messages are written to standard error.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "LogLevel",
			usage: `
              LogLevel is the minimum level of log messages to write: one of
              panic, fatal, error, warning, info or debug.`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("GEOSHAPE")
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch v := option.defaultVal.(type) {
			case string:
				set.StringP(option.name, option.shorthand, v, option.usage)
			case bool:
				set.BoolP(option.name, option.shorthand, v, option.usage)
			case float64:
				set.Float64P(option.name, option.shorthand, v, option.usage)
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(intersectCmd)
	Root.AddCommand(batchCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(os.ExpandEnv(cfgpath))
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("geoshape: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "geoshape",
	Short: "Find where points and polylines intersect in three dimensions.",
	Long: `geoshape finds the points where point and polyline geometries intersect.
Geometries may be two- or three-dimensional and may be given in geodetic
(longitude, latitude, altitude) or planar coordinates.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'GEOSHAPE_var' where 'var' is the
name of the variable to be set.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of geoshape.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("geoshape v%s\n", geoshape.Version)
	},
	DisableAutoGenTag: true,
}

var intersectCmd = &cobra.Command{
	Use:   "intersect [A B]",
	Short: "Intersect two GeoJSON geometries.",
	Long: `intersect reads two GeoJSON Point or LineString geometries, given with the
--A and --B flags or as arguments, and writes the points where they intersect
as a GeoJSON MultiPoint. Coordinates may have two or three components.`,
	Args: cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, b := Cfg.GetString("A"), Cfg.GetString("B")
		if len(args) == 2 {
			a, b = args[0], args[1]
		} else if len(args) == 1 {
			return fmt.Errorf("geoshape: intersect needs both geometries")
		}
		return Intersect(os.ExpandEnv(a), os.ExpandEnv(b), os.ExpandEnv(Cfg.GetString("OutputFile")), cmd.OutOrStdout())
	},
	DisableAutoGenTag: true,
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Intersect every pair of entities in a scene.",
	Long: `batch reads a TOML scene file listing named entities and writes, as JSON,
every pair of entities that intersect together with their intersection points.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Batch(context.Background(), os.ExpandEnv(Cfg.GetString("Scene")),
			os.ExpandEnv(Cfg.GetString("OutputFile")), cmd.OutOrStdout())
	},
	DisableAutoGenTag: true,
}
