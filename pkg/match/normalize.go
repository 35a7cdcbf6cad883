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

// Package match holds the pure string-level matching primitives used on both
// sides of the pipeline: canonicalization, phonetic encoding, and lexical
// similarity. Everything in this package is deterministic and safe for
// concurrent use.
package match

import "strings"

// Normalize canonicalizes a raw title for all downstream comparison stages.
// Leading/trailing whitespace is trimmed and the result is lowercased. An
// empty or whitespace-only input normalizes to the empty string.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
