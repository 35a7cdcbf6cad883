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

package verify

// MatchDetail is one scanned candidate in the audit trail: the candidate's
// display metadata, its lexical similarity to the query, whether its phonetic
// codes collide, and its embedding-space distance.
type MatchDetail struct {
	Metadata        map[string]string `json:"metadata,omitempty"`
	Title           string            `json:"title"`
	SimilarityScore float64           `json:"similarity_score"`
	Distance        float64           `json:"distance"`
	PhoneticMatch   bool              `json:"phonetic_match"`
}

// Result is the verification verdict. Rejections are first-class results,
// not errors. DetailedReport lists scanned candidates in retrieval order
// (ascending embedding distance).
type Result struct {
	Reason         string        `json:"reason"`
	Suggestion     string        `json:"suggestion,omitempty"`
	SimilarTitles  []string      `json:"similar_titles,omitempty"`
	DetailedReport []MatchDetail `json:"detailed_report,omitempty"`
	Probability    float64       `json:"probability"`
	Verified       bool          `json:"verified"`
}
