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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ianlewis/go-molindex/internal/folding"
)

// ErrMalformedRow indicates a data row whose field count is not exactly
// four.
var ErrMalformedRow = errors.New("malformed row")

// recordFields is the number of fields in an Indices.dat data row.
const recordFields = 4

// NoIndicesFile is the sentinel value of the INDICES field meaning that no
// spectral index file exists for the molecule. It is compared as a string;
// the field is never parsed as a number.
const NoIndicesFile = "0"

// Record is a single Indices.dat data row. All fields hold the values from
// the file verbatim.
type Record struct {
	// MoleculeKey is the molecule key, unique within a table.
	MoleculeKey string

	// CollisFile is the collision rate dataset filename.
	CollisFile string

	// RadiatFile is the radiative transition dataset filename.
	RadiatFile string

	// IndicesFile is the spectral index dataset filename, or NoIndicesFile.
	IndicesFile string
}

// HasIndicesFile reports whether the record references a spectral index
// file rather than the NoIndicesFile sentinel.
func (r *Record) HasIndicesFile() bool {
	return r.IndicesFile != NoIndicesFile
}

// Scanner scans an Indices.dat stream from start to end, one data row at a
// time. Comment and blank lines are skipped.
type Scanner struct {
	r   io.ReadCloser
	s   *bufio.Scanner
	rec *Record

	// line is the 1-based line number of the current record.
	line int
	err  error
}

// NewScanner returns a new scanner that reads records from r. The Scanner
// assumes ownership of the reader and should be closed with the Close
// method.
func NewScanner(r io.ReadCloser) *Scanner {
	return &Scanner{
		r: r,
		s: bufio.NewScanner(bufio.NewReader(r)),
	}
}

// Scan advances the scanner to the next data row. It returns false when the
// scan stops, either by reaching the end of the input or on the first
// malformed row or read error.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}

	for s.s.Scan() {
		s.line++

		fields, err := folding.Fields(s.s.Text())
		if err != nil {
			s.err = fmt.Errorf("folding line %d: %w", s.line, err)
			return false
		}
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if len(fields) != recordFields {
			s.err = fmt.Errorf("%w: line %d: got %d fields, want %d",
				ErrMalformedRow, s.line, len(fields), recordFields)
			return false
		}

		s.rec = &Record{
			MoleculeKey: fields[0],
			CollisFile:  fields[1],
			RadiatFile:  fields[2],
			IndicesFile: fields[3],
		}
		return true
	}

	s.err = s.s.Err()
	return false
}

// Record returns the current data row.
func (s *Scanner) Record() *Record {
	return s.rec
}

// Line returns the line number of the current data row.
func (s *Scanner) Line() int {
	return s.line
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	return s.err
}

// Close closes the underlying reader.
func (s *Scanner) Close() error {
	if err := s.r.Close(); err != nil {
		return fmt.Errorf("closing indices file: %w", err)
	}
	return nil
}
