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

package indices_test

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ianlewis/go-molindex/indices"
	"github.com/ianlewis/go-molindex/internal/testutil"
)

const testTable = `# MOLECULE COLLIS RADIAT INDICES
1H1H16O_45_45_648   o-H2O-H2_collis_nu0_nu2_faure.dat   o-H2O_radiat_nu0_nu2_faure.dat   sphinx_indices_o-H2O-H2_collis_nu0_nu2_faure.dat

12C16O_61_122_420   12C16O_JLOW60_v_2_collis.dat   12C16O_JLOW60_v_2_radiat.dat   0
`

// TestNew tests indices.New.
func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		contents string

		len  int
		keys []string
		err  error
	}{
		{
			name:     "well-formed table",
			contents: testTable,

			len:  2,
			keys: []string{"1H1H16O_45_45_648", "12C16O_61_122_420"},
		},
		{
			name:     "empty table",
			contents: "# only comments\n\n",

			len:  0,
			keys: []string{},
		},
		{
			name: "duplicate key",
			contents: strings.Join([]string{
				"1H1H16O_45_45_648 a.dat b.dat c.dat",
				"1H1H16O_45_45_648 d.dat e.dat f.dat",
			}, "\n"),

			err: indices.ErrDuplicateKey,
		},
		{
			name:     "malformed row",
			contents: "1H1H16O_45_45_648 a.dat b.dat c.dat extra\n",

			err: indices.ErrMalformedRow,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			table, err := indices.New(io.NopCloser(strings.NewReader(test.contents)))
			if diff := cmp.Diff(test.err, err, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("indices.New (-want, +got):\n%s", diff)
			}
			if err != nil {
				return
			}

			if diff := cmp.Diff(test.len, table.Len()); diff != "" {
				t.Fatalf("Table.Len (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.keys, table.Keys(), cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("Table.Keys (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestTable_Lookup tests Table.Lookup.
func TestTable_Lookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		moleculeKey string

		expected *indices.Record
		err      error
	}{
		{
			name:        "record with indices file",
			moleculeKey: "1H1H16O_45_45_648",

			expected: &indices.Record{
				MoleculeKey: "1H1H16O_45_45_648",
				CollisFile:  "o-H2O-H2_collis_nu0_nu2_faure.dat",
				RadiatFile:  "o-H2O_radiat_nu0_nu2_faure.dat",
				IndicesFile: "sphinx_indices_o-H2O-H2_collis_nu0_nu2_faure.dat",
			},
		},
		{
			name:        "record without indices file",
			moleculeKey: "12C16O_61_122_420",

			expected: &indices.Record{
				MoleculeKey: "12C16O_61_122_420",
				CollisFile:  "12C16O_JLOW60_v_2_collis.dat",
				RadiatFile:  "12C16O_JLOW60_v_2_radiat.dat",
				IndicesFile: "0",
			},
		},
		{
			name:        "absent key",
			moleculeKey: "28Si16O_60_60_2000",

			err: indices.ErrKeyNotFound,
		},
		{
			name:        "no partial match",
			moleculeKey: "1H1H16O",

			err: indices.ErrKeyNotFound,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			table, err := indices.New(io.NopCloser(strings.NewReader(testTable)))
			if err != nil {
				t.Fatalf("indices.New: %v", err)
			}

			rec, err := table.Lookup(test.moleculeKey)
			if diff := cmp.Diff(test.err, err, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("Table.Lookup (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.expected, rec); diff != "" {
				t.Fatalf("Table.Lookup (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestTable_HasIndicesFile tests Table.HasIndicesFile.
func TestTable_HasIndicesFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		moleculeKey string

		expected bool
		err      error
	}{
		{
			name:        "indices file present",
			moleculeKey: "1H1H16O_45_45_648",

			expected: true,
		},
		{
			name:        "sentinel zero",
			moleculeKey: "12C16O_61_122_420",

			expected: false,
		},
		{
			name:        "absent key",
			moleculeKey: "28Si16O_60_60_2000",

			expected: false,
			err:      indices.ErrKeyNotFound,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			table, err := indices.New(io.NopCloser(strings.NewReader(testTable)))
			if err != nil {
				t.Fatalf("indices.New: %v", err)
			}

			hasIndices, err := table.HasIndicesFile(test.moleculeKey)
			if diff := cmp.Diff(test.err, err, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("Table.HasIndicesFile (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.expected, hasIndices); diff != "" {
				t.Fatalf("Table.HasIndicesFile (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestOpen tests indices.Open with plain and compressed tables.
func TestOpen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		compression testutil.Compression
	}{
		{
			name:        "plain",
			compression: testutil.NoCompression,
		},
		{
			name:        "gzip",
			compression: testutil.Gzip,
		},
		{
			name:        "dictzip",
			compression: testutil.DictZip,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			path := testutil.WriteIndices(t, t.TempDir(), testTable, test.compression)

			table, err := indices.Open(path)
			if err != nil {
				t.Fatalf("indices.Open: %v", err)
			}

			if diff := cmp.Diff(2, table.Len()); diff != "" {
				t.Fatalf("Table.Len (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestOpen_notFound tests indices.Open on a missing file.
func TestOpen_notFound(t *testing.T) {
	t.Parallel()

	if _, err := indices.Open(filepath.Join(t.TempDir(), "Indices.dat")); err == nil {
		t.Fatal("indices.Open: expected error, got nil")
	}
}
