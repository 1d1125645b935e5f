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
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidKey indicates that a molecule key does not have the expected
// <molecule>_<ny_low>_<ny_up>_<nline> form.
var ErrInvalidKey = errors.New("invalid molecule key")

// Key is a parsed molecule key. Keys are built by joining the molecule
// designation with the excitation level and line counts the molecule was
// modeled with.
type Key struct {
	// Molecule is the molecule designation, e.g. 1H1H16O.
	Molecule string

	// NyLow is the number of levels in the lower vibrational state.
	NyLow int

	// NyUp is the number of levels in the upper vibrational state.
	NyUp int

	// NLine is the number of radiative transitions.
	NLine int
}

// String returns the key in its file form.
func (k *Key) String() string {
	return strings.Join([]string{
		k.Molecule,
		strconv.Itoa(k.NyLow),
		strconv.Itoa(k.NyUp),
		strconv.Itoa(k.NLine),
	}, "_")
}

// ParseKey parses a molecule key. The molecule designation may itself
// contain underscores, so the three trailing integer fields are taken from
// the right.
func ParseKey(moleculeKey string) (*Key, error) {
	parts := strings.Split(moleculeKey, "_")
	if len(parts) < 4 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKey, moleculeKey)
	}

	counts := make([]int, 3)
	for i, p := range parts[len(parts)-3:] {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %q: bad count %q", ErrInvalidKey, moleculeKey, p)
		}
		counts[i] = n
	}

	molecule := strings.Join(parts[:len(parts)-3], "_")
	if molecule == "" {
		return nil, fmt.Errorf("%w: %q: empty molecule", ErrInvalidKey, moleculeKey)
	}

	return &Key{
		Molecule: molecule,
		NyLow:    counts[0],
		NyUp:     counts[1],
		NLine:    counts[2],
	}, nil
}
