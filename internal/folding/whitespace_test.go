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

package folding

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/transform"
)

// TestWhitespaceFolder tests WhitespaceFolder via transform.String.
func TestWhitespaceFolder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string

		expected string
	}{
		{
			name: "leading whitespace",
			src:  " \t　foo",

			expected: "foo",
		},
		{
			name: "trailing whitespace",
			src:  "foo \t　",

			expected: "foo",
		},
		{
			name: "whitespace spans",
			src:  "foo \t bar\t\tbaz",

			expected: "foo bar baz",
		},
		{
			name: "all whitespace",
			src:  " \t \t ",

			expected: "",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			folded, _, err := transform.String(&WhitespaceFolder{}, test.src)
			if err != nil {
				t.Fatalf("transform.String: %v", err)
			}
			if diff := cmp.Diff(test.expected, folded); diff != "" {
				t.Fatalf("transform.String (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestFields tests Fields.
func TestFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		row  string

		expected []string
	}{
		{
			name: "aligned row",
			row:  "12C16O_61_122_420   12C16O_JLOW60_v_2_collis.dat\t12C16O_JLOW60_v_2_radiat.dat   0",

			expected: []string{
				"12C16O_61_122_420",
				"12C16O_JLOW60_v_2_collis.dat",
				"12C16O_JLOW60_v_2_radiat.dat",
				"0",
			},
		},
		{
			name: "blank row",
			row:  "   \t ",

			expected: nil,
		},
		{
			name: "empty row",
			row:  "",

			expected: nil,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			fields, err := Fields(test.row)
			if err != nil {
				t.Fatalf("Fields: %v", err)
			}
			if diff := cmp.Diff(test.expected, fields); diff != "" {
				t.Fatalf("Fields (-want, +got):\n%s", diff)
			}
		})
	}
}
