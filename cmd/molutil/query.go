// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-molindex/indices"
)

var queryCommand = &cli.Command{
	Name:      "query",
	Usage:     "Query catalogs for a molecule key",
	ArgsUsage: "KEY [PATH...]",
	Action: func(c *cli.Context) error {
		if c.NArg() < 1 {
			return fmt.Errorf("%w: missing molecule key", ErrMolutil)
		}
		moleculeKey := c.Args().First()

		catalogs, errs := openCatalogs(c, c.Args().Tail())
		for _, err := range errs {
			fmt.Fprintln(os.Stderr, err)
		}

		found := false
		for _, catalog := range catalogs {
			rec, err := catalog.Lookup(moleculeKey)
			if err != nil {
				if errors.Is(err, indices.ErrKeyNotFound) {
					continue
				}
				fmt.Fprintln(os.Stderr, err)
				continue
			}
			found = true

			fmt.Fprintf(c.App.Writer, "Catalog:   %s\n", catalog.Path())
			fmt.Fprintf(c.App.Writer, "Collision: %s\n", rec.CollisFile)
			fmt.Fprintf(c.App.Writer, "Radiative: %s\n", rec.RadiatFile)
			if rec.HasIndicesFile() {
				fmt.Fprintf(c.App.Writer, "Indices:   %s\n", rec.IndicesFile)
			} else {
				fmt.Fprintf(c.App.Writer, "Indices:   (none)\n")
			}

			if key, err := indices.ParseKey(rec.MoleculeKey); err == nil {
				fmt.Fprintf(c.App.Writer, "Molecule:  %s (ny_low=%d ny_up=%d nline=%d)\n",
					key.Molecule, key.NyLow, key.NyUp, key.NLine)
			}
			fmt.Fprintln(c.App.Writer)
		}

		if !found {
			return fmt.Errorf("%w: %q", ErrNotFound, moleculeKey)
		}
		return nil
	},
}
