// Title Verification Service
// Copyright (c) 2026 The Title Verification Service Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Title Verification Service.
//
// Title Verification Service is free software: you can redistribute it and/or
// modify it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Title Verification Service is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Title Verification Service.  If not, see <http://www.gnu.org/licenses/>.

package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        string
		b        string
		expected float64
		reason   string
	}{
		{
			name:     "identical strings",
			a:        "daily news",
			b:        "daily news",
			expected: 1,
			reason:   "Ratio(a, a) must be exactly 1",
		},
		{
			name:     "both empty",
			a:        "",
			b:        "",
			expected: 1,
			reason:   "degenerate case: nothing to edit",
		},
		{
			name:     "one substitution",
			a:        "abc",
			b:        "abd",
			expected: 5.0 / 6.0,
			reason:   "(3+3-1)/(3+3)",
		},
		{
			name:     "completely disjoint",
			a:        "aaa",
			b:        "bbb",
			expected: 0.5,
			reason:   "(3+3-3)/(3+3): substitution-only distance floors at 0.5 for equal lengths",
		},
		{
			name:     "empty versus non-empty",
			a:        "",
			b:        "abcd",
			expected: 0,
			reason:   "(0+4-4)/(0+4)",
		},
		{
			name:     "exactly at 0.8",
			a:        "aaaaabbbbb",
			b:        "aaaaabcccc",
			expected: 0.8,
			reason:   "(10+10-4)/(10+10)",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.expected, Ratio(tt.a, tt.b), 1e-12, tt.reason)
		})
	}
}

func TestRatio_Symmetric(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"daily news", "daily mews"},
		{"the hindu times", "the hindoo times"},
		{"", "x"},
	}
	for _, pair := range pairs {
		assert.Equal(t, Ratio(pair[0], pair[1]), Ratio(pair[1], pair[0]))
	}
}
