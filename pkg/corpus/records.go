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

// Package corpus loads the registered-titles dataset and builds the
// immutable, searchable corpus snapshot used by the verification pipeline.
package corpus

import (
	"github.com/AshCoder07/Title-verification/pkg/match"
)

// DatasetRow is one row of the registered titles CSV, mapped by header name.
type DatasetRow struct {
	TitleName      string `csv:"Title Name"`
	HindiTitle     string `csv:"Hindi Title"`
	OwnerName      string `csv:"Owner Name"`
	State          string `csv:"State"`
	RegistrationNo string `csv:"Regn No."`
	District       string `csv:"District"`
	Periodicity    string `csv:"Periodity"`
}

// metadata collects the row's display-only fields. These are carried through
// the pipeline unmodified and surface only in match reports.
func (r DatasetRow) metadata() map[string]string {
	md := make(map[string]string)
	for key, val := range map[string]string{
		"owner":           r.OwnerName,
		"state":           r.State,
		"registration_no": r.RegistrationNo,
		"district":        r.District,
		"periodicity":     r.Periodicity,
	} {
		if val != "" {
			md[key] = val
		}
	}
	return md
}

// TitleRecord is one corpus entry with all derived representations fixed at
// build time. Records are immutable once the corpus is built.
type TitleRecord struct {
	Metadata           map[string]string
	RawTitle           string
	RawTitleTranslated string
	NormalizedTitle    string
	Phonetic           match.PhoneticCodes
	Embedding          []float32
}
