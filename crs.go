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
	"strconv"
	"strings"

	"github.com/ctessum/geom/proj"
)

// Default reference systems: WGS84 longitude/latitude projected to the US
// National Atlas equal-area projection.
const (
	DefaultSourceCRS = "EPSG:4326"
	DefaultTargetCRS = "EPSG:2163"
)

// epsgDefs maps the supported EPSG codes to proj4 definitions.
var epsgDefs = map[int]string{
	4326: "+proj=longlat +ellps=WGS84 +datum=WGS84 +no_defs",
	4269: "+proj=longlat +datum=NAD83 +no_defs",
	3857: "+proj=merc +a=6378137 +b=6378137 +lat_ts=0.0 +lon_0=0.0 +x_0=0.0 +y_0=0 +k=1.0 +units=m +nadgrids=@null +no_defs",
	2163: "+proj=laea +lat_0=45 +lon_0=-100 +x_0=0 +y_0=0 +a=6370997 +b=6370997 +units=m +no_defs",
	5070: "+proj=aea +lat_1=29.5 +lat_2=45.5 +lat_0=23 +lon_0=-96 +x_0=0 +y_0=0 +datum=NAD83 +units=m +no_defs",
}

// resolveCRS turns an EPSG code, proj4 string or WKT string into the
// definition understood by the proj package.
func resolveCRS(def string) (string, error) {
	def = strings.TrimSpace(def)
	if len(def) < 5 || !strings.EqualFold(def[:5], "epsg:") {
		return def, nil
	}
	code, err := strconv.Atoi(strings.TrimSpace(def[5:]))
	if err != nil {
		return "", &InvalidCRSError{CRS: def, Err: fmt.Errorf("malformed EPSG code")}
	}
	if d, ok := epsgDefs[code]; ok {
		return d, nil
	}
	switch {
	case code > 32600 && code <= 32660:
		return fmt.Sprintf("+proj=utm +zone=%d +datum=WGS84 +units=m +no_defs", code-32600), nil
	case code > 32700 && code <= 32760:
		return fmt.Sprintf("+proj=utm +zone=%d +south +datum=WGS84 +units=m +no_defs", code-32700), nil
	}
	return "", &InvalidCRSError{CRS: def, Err: fmt.Errorf("unsupported EPSG code %d", code)}
}

// parseCRS resolves and parses a reference system definition.
func parseCRS(def string) (*proj.SR, string, error) {
	resolved, err := resolveCRS(def)
	if err != nil {
		return nil, "", err
	}
	if resolved == "" {
		return nil, "", &InvalidCRSError{CRS: def, Err: fmt.Errorf("empty definition")}
	}
	sr, err := proj.Parse(resolved)
	if err != nil {
		return nil, "", &InvalidCRSError{CRS: def, Err: err}
	}
	if sr.Name != laeaName {
		// Unknown projection names only surface here.
		if _, _, err := sr.Transformers(); err != nil {
			return nil, "", &InvalidCRSError{CRS: def, Err: err}
		}
	}
	return sr, resolved, nil
}
