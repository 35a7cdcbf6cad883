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
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

// Ratio returns the normalized lexical similarity between two strings in
// [0, 1], defined as (len(a) + len(b) - levenshtein(a, b)) / (len(a) + len(b))
// over characters. It is symmetric, and Ratio(a, a) == 1 for any a.
func Ratio(a, b string) float64 {
	la := utf8.RuneCountInString(a)
	lb := utf8.RuneCountInString(b)
	if la+lb == 0 {
		return 1
	}
	dist := edlib.LevenshteinDistance(a, b)
	return float64(la+lb-dist) / float64(la+lb)
}
