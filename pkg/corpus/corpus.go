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

package corpus

import (
	"fmt"
	"strings"

	"github.com/AshCoder07/Title-verification/pkg/corpus/index"
	"github.com/AshCoder07/Title-verification/pkg/corpus/vectorizer"
	"github.com/AshCoder07/Title-verification/pkg/match"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Corpus is one immutable snapshot of the registered titles: the records with
// all derived codes and embeddings, the frozen vocabulary, and the similarity
// index built over every embedding. A Corpus is built exactly once and never
// mutated; absorbing new registrations means building a fresh Corpus and
// swapping it in atomically.
type Corpus struct {
	Vectorizer *vectorizer.Vectorizer
	Index      *index.Flat
	Records    []TitleRecord
	ID         uuid.UUID
}

// Build constructs a complete snapshot from dataset rows: normalization,
// phonetic codes, TF-IDF vocabulary fit over title plus translated title, one
// embedding per record, and the flat index. Rows without a usable title are
// skipped. An empty row set yields a valid empty corpus.
func Build(rows []DatasetRow) (*Corpus, error) {
	records := make([]TitleRecord, 0, len(rows))
	docs := make([]string, 0, len(rows))

	for _, row := range rows {
		normalized := match.Normalize(row.TitleName)
		if normalized == "" {
			continue
		}
		records = append(records, TitleRecord{
			RawTitle:           strings.TrimSpace(row.TitleName),
			RawTitleTranslated: strings.TrimSpace(row.HindiTitle),
			NormalizedTitle:    normalized,
			Phonetic:           match.EncodePhonetic(normalized),
			Metadata:           row.metadata(),
		})
		docs = append(docs, normalized+" "+match.Normalize(row.HindiTitle))
	}

	vec := vectorizer.Fit(docs)
	idx := index.NewFlat(vec.Size())
	for i := range records {
		embedding := vec.Transform(docs[i])
		records[i].Embedding = embedding
		if err := idx.Add(embedding); err != nil {
			return nil, fmt.Errorf("failed to index record %q: %w", records[i].RawTitle, err)
		}
	}

	c := &Corpus{
		ID:         uuid.New(),
		Records:    records,
		Vectorizer: vec,
		Index:      idx,
	}
	log.Info().
		Str("snapshot", c.ID.String()).
		Int("records", len(records)).
		Int("vocabulary", vec.Size()).
		Msg("built corpus snapshot")
	return c, nil
}
