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
	"github.com/antzucaro/matchr"
)

// PhoneticCodes holds the phonetic keys derived from a normalized title.
// Metaphone is the primary Double Metaphone code and MetaphoneAlt the
// secondary; both participate in matching so spelling variants that only
// agree on the alternate pronunciation are still caught.
type PhoneticCodes struct {
	Soundex      string
	Metaphone    string
	MetaphoneAlt string
}

// EncodePhonetic derives the Soundex and Metaphone codes for a normalized
// title. Codes are compared by equality only, so the exact algorithm output
// is preserved as-is. An empty input yields empty codes, which never match.
func EncodePhonetic(normalized string) PhoneticCodes {
	if normalized == "" {
		return PhoneticCodes{}
	}
	primary, secondary := matchr.DoubleMetaphone(normalized)
	return PhoneticCodes{
		Soundex:      matchr.Soundex(normalized),
		Metaphone:    primary,
		MetaphoneAlt: secondary,
	}
}

// PhoneticEqual reports whether two code sets collide. Either code family
// alone is sufficient: equal Soundex codes OR any overlap between the
// metaphone codes counts as a match. Empty codes never match anything.
func PhoneticEqual(a, b PhoneticCodes) bool {
	if a.Soundex != "" && a.Soundex == b.Soundex {
		return true
	}
	return metaphoneOverlap(a, b)
}

func metaphoneOverlap(a, b PhoneticCodes) bool {
	for _, ca := range []string{a.Metaphone, a.MetaphoneAlt} {
		if ca == "" {
			continue
		}
		if ca == b.Metaphone || (b.MetaphoneAlt != "" && ca == b.MetaphoneAlt) {
			return true
		}
	}
	return false
}
