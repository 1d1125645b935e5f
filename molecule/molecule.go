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

// Package molecule implements reading Molecule.dat files.
//
// A Molecule.dat file defines the molecules known to the modeling code.
// Each data row has exactly six fields:
//  1. TYPE_SHORT: the molecule designation, e.g. 1H1H16O. This is the
//     lookup key and the first component of Indices.dat molecule keys.
//  2. MOLEC_TYPE: the full molecule designation.
//  3. NAME_SHORT: the short display name, e.g. H2O.
//  4. NAME_PLOT: the plot label.
//  5. SPEC_INDICES: the spectral index mode as an integer.
//  6. USE_INDICES_DAT: 1 when the Indices.dat table should be consulted
//     for the molecule, 0 otherwise.
//
// Comment and blank line rules are the same as for Indices.dat.
package molecule

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ianlewis/go-molindex/internal/folding"
)

// ErrMalformedRow indicates a data row whose field count is not exactly six
// or whose numeric fields cannot be parsed.
var ErrMalformedRow = errors.New("malformed row")

// ErrDuplicateKey indicates that a molecule designation appears more than
// once in a table.
var ErrDuplicateKey = errors.New("duplicate molecule")

// ErrNotFound indicates that a molecule designation is not present in the
// table.
var ErrNotFound = errors.New("molecule not found")

// definitionFields is the number of fields in a Molecule.dat data row.
const definitionFields = 6

// Definition is a single Molecule.dat data row.
type Definition struct {
	// TypeShort is the molecule designation, unique within a table.
	TypeShort string

	// MolecType is the full molecule designation.
	MolecType string

	// NameShort is the short display name.
	NameShort string

	// NamePlot is the plot label.
	NamePlot string

	// SpecIndices is the spectral index mode.
	SpecIndices int

	// UseIndicesDat reports whether the Indices.dat table applies to the
	// molecule.
	UseIndicesDat bool
}

// Table is an immutable in-memory Molecule.dat table. Once built it is safe
// for concurrent readers.
type Table struct {
	definitions map[string]*Definition

	// typeShorts preserves file order for listing.
	typeShorts []string
}

// New builds a table by reading all definitions from r. The caller retains
// ownership of the reader.
func New(r io.Reader) (*Table, error) {
	t := &Table{
		definitions: map[string]*Definition{},
	}

	line := 0
	s := bufio.NewScanner(bufio.NewReader(r))
	for s.Scan() {
		line++

		fields, err := folding.Fields(s.Text())
		if err != nil {
			return nil, fmt.Errorf("folding line %d: %w", line, err)
		}
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		def, err := parseDefinition(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if _, ok := t.definitions[def.TypeShort]; ok {
			return nil, fmt.Errorf("%w: line %d: %q", ErrDuplicateKey, line, def.TypeShort)
		}
		t.definitions[def.TypeShort] = def
		t.typeShorts = append(t.typeShorts, def.TypeShort)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading molecule table: %w", err)
	}

	return t, nil
}

// Open reads a table from the file at path. Tables compressed with gzip or
// dictzip are recognized by a .gz or .dz extension.
func Open(path string) (*Table, error) {
	var r io.ReadCloser
	r, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer r.Close()

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".gz" || ext == ".dz" {
		// dictzip files are valid gzip streams.
		r, err = gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
		defer r.Close()
	}

	t, err := New(r)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return t, nil
}

// Lookup returns the definition for the given molecule designation.
func (t *Table) Lookup(typeShort string) (*Definition, error) {
	def, ok := t.definitions[typeShort]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, typeShort)
	}
	return def, nil
}

// Len returns the number of definitions in the table.
func (t *Table) Len() int {
	return len(t.definitions)
}

// TypeShorts returns the molecule designations in file order.
func (t *Table) TypeShorts() []string {
	typeShorts := make([]string, len(t.typeShorts))
	copy(typeShorts, t.typeShorts)
	return typeShorts
}

func parseDefinition(fields []string) (*Definition, error) {
	if len(fields) != definitionFields {
		return nil, fmt.Errorf("%w: got %d fields, want %d",
			ErrMalformedRow, len(fields), definitionFields)
	}

	specIndices, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("%w: bad SPEC_INDICES %q", ErrMalformedRow, fields[4])
	}

	useIndicesDat, err := strconv.Atoi(fields[5])
	if err != nil || (useIndicesDat != 0 && useIndicesDat != 1) {
		return nil, fmt.Errorf("%w: bad USE_INDICES_DAT %q", ErrMalformedRow, fields[5])
	}

	return &Definition{
		TypeShort:     fields[0],
		MolecType:     fields[1],
		NameShort:     fields[2],
		NamePlot:      fields[3],
		SpecIndices:   specIndices,
		UseIndicesDat: useIndicesDat == 1,
	}, nil
}
