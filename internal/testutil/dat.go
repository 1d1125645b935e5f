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

// Package testutil provides test fixtures for reference table files.
package testutil

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/ianlewis/go-dictzip"
)

// Compression is the compression applied to a table fixture.
type Compression int

const (
	// NoCompression writes the table as plain text.
	NoCompression Compression = iota

	// Gzip compresses the table with gzip.
	Gzip

	// DictZip compresses the table with dictzip.
	DictZip
)

// Ext returns the file extension suffix for the compression.
func (c Compression) Ext() string {
	switch c {
	case Gzip:
		return ".gz"
	case DictZip:
		return ".dz"
	case NoCompression:
	}
	return ""
}

// WriteTable writes a table fixture with the given base name into dir and
// returns its path.
func WriteTable(t *testing.T, dir, base, contents string, compression Compression) string {
	t.Helper()

	path := filepath.Join(dir, base+compression.Ext())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	switch compression {
	case Gzip:
		z := gzip.NewWriter(f)
		defer z.Close()
		if _, err := z.Write([]byte(contents)); err != nil {
			t.Fatal(err)
		}
	case DictZip:
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		defer z.Close()
		if _, err := z.Write([]byte(contents)); err != nil {
			t.Fatal(err)
		}
	case NoCompression:
		if _, err := f.WriteString(contents); err != nil {
			t.Fatal(err)
		}
	}

	return path
}

// WriteIndices writes an Indices.dat fixture into dir and returns its path.
func WriteIndices(t *testing.T, dir, contents string, compression Compression) string {
	t.Helper()
	return WriteTable(t, dir, "Indices.dat", contents, compression)
}

// WriteMolecules writes a Molecule.dat fixture into dir and returns its
// path.
func WriteMolecules(t *testing.T, dir, contents string, compression Compression) string {
	t.Helper()
	return WriteTable(t, dir, "Molecule.dat", contents, compression)
}
