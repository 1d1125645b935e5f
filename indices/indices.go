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

package indices

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrDuplicateKey indicates that a molecule key appears more than once in a
// table. The file format does not define which occurrence should win, so
// duplicates are rejected rather than silently resolved.
var ErrDuplicateKey = errors.New("duplicate molecule key")

// ErrKeyNotFound indicates that a molecule key is not present in the table.
var ErrKeyNotFound = errors.New("molecule key not found")

// Table is an immutable in-memory Indices.dat table. Once built it is safe
// for concurrent readers.
type Table struct {
	records map[string]*Record

	// keys preserves file order for listing.
	keys []string
}

// New builds a table by reading all records from r. The caller retains
// ownership of the reader.
func New(r io.ReadCloser) (*Table, error) {
	t := &Table{
		records: map[string]*Record{},
	}

	s := NewScanner(r)
	for s.Scan() {
		rec := s.Record()
		if _, ok := t.records[rec.MoleculeKey]; ok {
			return nil, fmt.Errorf("%w: line %d: %q", ErrDuplicateKey, s.Line(), rec.MoleculeKey)
		}
		t.records[rec.MoleculeKey] = rec
		t.keys = append(t.keys, rec.MoleculeKey)
	}
	if err := s.Err(); err != nil {
		return nil, err
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

// Lookup returns the record for the given molecule key. Keys are matched
// exactly.
func (t *Table) Lookup(moleculeKey string) (*Record, error) {
	rec, ok := t.records[moleculeKey]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, moleculeKey)
	}
	return rec, nil
}

// HasIndicesFile reports whether the given molecule key references a
// spectral index file.
func (t *Table) HasIndicesFile(moleculeKey string) (bool, error) {
	rec, err := t.Lookup(moleculeKey)
	if err != nil {
		return false, err
	}
	return rec.HasIndicesFile(), nil
}

// Len returns the number of records in the table.
func (t *Table) Len() int {
	return len(t.records)
}

// Keys returns the molecule keys in file order.
func (t *Table) Keys() []string {
	keys := make([]string, len(t.keys))
	copy(keys, t.keys)
	return keys
}
