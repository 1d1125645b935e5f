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

// Package indices implements reading Indices.dat files.
//
// An Indices.dat file maps a molecule key to the filenames of the datasets
// the modeling code needs for that molecule. The file is plain text and
// column-aligned for human readability but is parsed by splitting on
// whitespace runs, not by column position.
//
// Each data row has exactly four fields:
//  1. The molecule key: the molecule designation joined with the lower and
//     upper level counts and the line count, e.g. 1H1H16O_45_45_648.
//  2. The collision rate dataset filename.
//  3. The radiative transition dataset filename.
//  4. The spectral index dataset filename, or the literal value 0 when no
//     spectral index file exists for the molecule.
//
// Lines whose first non-whitespace character is '#' are comments. Blank
// lines separate logical groups of molecules and carry no meaning.
//
// The referenced filenames are resolved against the modeling code's data
// directories by the caller. This package never opens them.
package indices
