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

// Package molindex implements a library for reading the GASTRoNOoM
// molecular data reference tables in pure Go.
//
// A data directory contains two reference tables:
//  1. An Indices.dat file that maps a molecule key to the filenames of the
//     collision rate, radiative transition, and spectral index datasets for
//     that molecule.
//  2. A Molecule.dat file that defines the molecules themselves, including
//     whether the Indices.dat table applies to each molecule at all.
//
// The datasets referenced by Indices.dat live in parallel data directories
// maintained by the modeling code. Locating and reading those datasets is
// the caller's responsibility; this package only answers which filenames
// apply to a molecule.
package molindex
