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
	"fmt"
	"os"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"
)

var listCommand = &cli.Command{
	Name:      "list",
	Usage:     "List the contents of each catalog",
	ArgsUsage: "[PATH...]",
	Action: func(c *cli.Context) error {
		catalogs, errs := openCatalogs(c, c.Args().Slice())
		for _, err := range errs {
			fmt.Fprintln(os.Stderr, err)
		}

		for _, catalog := range catalogs {
			t, err := catalog.Indices()
			if err != nil {
				errs = append(errs, err)
				fmt.Fprintln(os.Stderr, err)
				continue
			}

			fmt.Fprintln(c.App.Writer, catalog.Path())
			tbl := table.New("MOLECULE", "COLLIS", "RADIAT", "INDICES").WithWriter(c.App.Writer)
			for _, key := range t.Keys() {
				rec, err := t.Lookup(key)
				if err != nil {
					// Keys came from the table itself.
					return err
				}
				tbl.AddRow(rec.MoleculeKey, rec.CollisFile, rec.RadiatFile, rec.IndicesFile)
			}
			tbl.Print()
			fmt.Fprintln(c.App.Writer)
		}

		if len(errs) > 0 {
			return cli.Exit("", ExitCodeUnknownError)
		}
		return nil
	},
}
