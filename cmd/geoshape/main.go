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

// Command geoshape is a command-line interface for finding where points and
// polylines intersect.
package main

import (
	"fmt"
	"os"

	"github.com/spatialmodel/geoshape/geoshapeutil"
)

func main() {
	if err := geoshapeutil.Root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
