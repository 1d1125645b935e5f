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

package molindex

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/ianlewis/go-molindex/indices"
	"github.com/ianlewis/go-molindex/molecule"
)

// indicesBase is the base name of the index table file.
const indicesBase = "Indices.dat"

// moleculeBase is the base name of the molecule definition table file.
const moleculeBase = "Molecule.dat"

// ErrNoMoleculeTable indicates that no Molecule.dat file was found next to
// the catalog's Indices.dat file.
var ErrNoMoleculeTable = errors.New("no molecule table")

// Catalog is a handle on a data directory's reference tables. Tables are
// loaded lazily, at most once, and are immutable once loaded so a Catalog
// is safe for concurrent use.
type Catalog struct {
	indicesPath  string
	moleculePath string

	indicesOnce sync.Once
	indices     *indices.Table
	indicesErr  error

	moleculeOnce sync.Once
	molecule     *molecule.Table
	moleculeErr  error
}

// Open opens a catalog from the given Indices.dat file path. The file may
// be gzip or dictzip compressed with a corresponding .gz or .dz extension.
// A Molecule.dat file is looked for next to the index table but is not
// required; Molecules reports its absence.
func Open(path string) (*Catalog, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("opening catalog %q: %w", path, err)
	}

	return &Catalog{
		indicesPath:  path,
		moleculePath: findMoleculePath(path),
	}, nil
}

// OpenAll opens all catalogs under a directory. This function will return
// all successfully opened catalogs along with any errors that occurred.
func OpenAll(path string) ([]*Catalog, []error) {
	var catalogs []*Catalog
	var errs []error
	if err := filepath.WalkDir(path, func(path string, info fs.DirEntry, err error) error {
		// Walking the file path will ignore errors.
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if !info.IsDir() && isIndicesFile(info.Name()) {
			c, err := Open(path)
			if err != nil {
				errs = append(errs, err)
				return nil
			}
			catalogs = append(catalogs, c)
		}
		return nil
	}); err != nil {
		errs = append(errs, err)
		return nil, errs
	}
	return catalogs, errs
}

// Path returns the path of the catalog's index table.
func (c *Catalog) Path() string {
	return c.indicesPath
}

// Indices returns the catalog's index table, loading it on first use.
func (c *Catalog) Indices() (*indices.Table, error) {
	c.indicesOnce.Do(func() {
		c.indices, c.indicesErr = indices.Open(c.indicesPath)
	})
	return c.indices, c.indicesErr
}

// Molecules returns the catalog's molecule definition table, loading it on
// first use. It fails with ErrNoMoleculeTable if the catalog has no
// Molecule.dat file.
func (c *Catalog) Molecules() (*molecule.Table, error) {
	c.moleculeOnce.Do(func() {
		if c.moleculePath == "" {
			c.moleculeErr = fmt.Errorf("%w: %q", ErrNoMoleculeTable, filepath.Dir(c.indicesPath))
			return
		}
		c.molecule, c.moleculeErr = molecule.Open(c.moleculePath)
	})
	return c.molecule, c.moleculeErr
}

// Lookup returns the index record for the given molecule key.
func (c *Catalog) Lookup(moleculeKey string) (*indices.Record, error) {
	t, err := c.Indices()
	if err != nil {
		return nil, err
	}
	return t.Lookup(moleculeKey)
}

// HasIndicesFile reports whether the given molecule key references a
// spectral index file.
func (c *Catalog) HasIndicesFile(moleculeKey string) (bool, error) {
	t, err := c.Indices()
	if err != nil {
		return false, err
	}
	return t.HasIndicesFile(moleculeKey)
}

// UseIndicesDat reports whether the index table applies to the given
// molecule designation. The modeling code only consults Indices.dat for a
// molecule whose definition sets USE_INDICES_DAT.
func (c *Catalog) UseIndicesDat(typeShort string) (bool, error) {
	t, err := c.Molecules()
	if err != nil {
		return false, err
	}
	def, err := t.Lookup(typeShort)
	if err != nil {
		return false, err
	}
	return def.UseIndicesDat, nil
}

// isIndicesFile reports whether name is an index table file name, allowing
// for compressed variants.
func isIndicesFile(name string) bool {
	for _, ext := range []string{"", ".gz", ".GZ", ".dz", ".DZ"} {
		if name == indicesBase+ext {
			return true
		}
	}
	return false
}

// findMoleculePath looks for a molecule definition table next to the index
// table.
func findMoleculePath(indicesPath string) string {
	dir := filepath.Dir(indicesPath)

	exts := []string{"", ".gz", ".GZ", ".dz", ".DZ"}
	for _, ext := range exts {
		path := filepath.Join(dir, moleculeBase+ext)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
