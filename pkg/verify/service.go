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

// Package verify implements the verification decision pipeline: content
// rules, phonetic collision detection, lexical similarity and vector-space
// retrieval, fused into a single verdict with an audit trail.
package verify

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/AshCoder07/Title-verification/pkg/corpus"
	"github.com/AshCoder07/Title-verification/pkg/match"
	"github.com/rs/zerolog/log"
)

// ErrCorpusNotReady is returned when verification is attempted before a
// corpus snapshot has been built. It indicates a startup ordering bug, not a
// transient condition.
var ErrCorpusNotReady = errors.New("corpus not built")

// Options are the fusion policy knobs, resolved once at construction from
// config.
type Options struct {
	// SimilarityThreshold is the duplication cutoff; candidates scoring
	// strictly above it are collected as similar titles.
	SimilarityThreshold float64
	// TopK is the retrieval breadth of the nearest-neighbor search.
	TopK int
	// FlatRejectProbability reports phonetic rejections with probability 1
	// when true, or 1 - max similarity seen so far when false.
	FlatRejectProbability bool
}

// Service decides whether proposed titles conflict with the registered
// corpus. It holds the current corpus snapshot behind an atomic pointer:
// every Verify call reads one consistent, fully built snapshot, and Swap
// replaces it without blocking in-flight queries.
type Service struct {
	snapshot atomic.Pointer[corpus.Corpus]
	rules    *RuleSet
	opts     Options
}

// New creates a Service over an initial corpus snapshot.
func New(c *corpus.Corpus, rules *RuleSet, opts Options) *Service {
	s := &Service{rules: rules, opts: opts}
	if c != nil {
		s.snapshot.Store(c)
	}
	return s
}

// Snapshot returns the current corpus snapshot, or nil before the first
// build.
func (s *Service) Snapshot() *corpus.Corpus {
	return s.snapshot.Load()
}

// Swap atomically replaces the corpus snapshot and returns the previous one.
// Verifications already in flight keep reading the snapshot they started
// with.
func (s *Service) Swap(c *corpus.Corpus) *corpus.Corpus {
	old := s.snapshot.Swap(c)
	oldID := "none"
	if old != nil {
		oldID = old.ID.String()
	}
	log.Info().
		Str("old", oldID).
		Str("new", c.ID.String()).
		Msg("swapped corpus snapshot")
	return old
}

// Verify runs the full decision pipeline on a raw proposed title.
//
// Content rules reject immediately with probability 1 and an empty report.
// Otherwise the title is projected into the frozen vector space and the
// nearest candidates are scanned in ascending distance order: the first
// phonetic collision rejects on the spot with the partial report, while
// lexical scores above the threshold accumulate into a similarity rejection
// after the scan. A clean scan accepts with probability 1 - max similarity.
func (s *Service) Verify(rawTitle string) (Result, error) {
	normalized := match.Normalize(rawTitle)

	if rej := s.rules.Evaluate(normalized); rej != nil {
		return Result{
			Verified:       false,
			Probability:    1,
			Reason:         rej.Reason,
			Suggestion:     rej.Suggestion,
			DetailedReport: []MatchDetail{},
		}, nil
	}

	c := s.snapshot.Load()
	if c == nil {
		return Result{}, ErrCorpusNotReady
	}

	queryVec := c.Vectorizer.Transform(normalized)
	hits, err := c.Index.Query(queryVec, s.opts.TopK)
	if err != nil {
		return Result{}, fmt.Errorf("similarity query failed: %w", err)
	}

	queryCodes := match.EncodePhonetic(normalized)

	maxSimilarity := 0.0
	report := make([]MatchDetail, 0, len(hits))
	var similarTitles []string

	for _, hit := range hits {
		record := c.Records[hit.Index]

		score := match.Ratio(normalized, record.NormalizedTitle)
		if score > maxSimilarity {
			maxSimilarity = score
		}

		phonetic := match.PhoneticEqual(queryCodes, record.Phonetic)
		report = append(report, MatchDetail{
			Title:           record.RawTitle,
			Metadata:        record.Metadata,
			SimilarityScore: score,
			PhoneticMatch:   phonetic,
			Distance:        float64(hit.Distance),
		})

		// First phonetic hit in distance order wins; no further
		// candidates are examined.
		if phonetic {
			probability := 1.0
			if !s.opts.FlatRejectProbability {
				probability = 1 - maxSimilarity
			}
			return Result{
				Verified:       false,
				Probability:    probability,
				Reason:         fmt.Sprintf("Phonetically similar to existing title %q", record.RawTitle),
				DetailedReport: report,
			}, nil
		}

		if score > s.opts.SimilarityThreshold {
			similarTitles = append(similarTitles, record.RawTitle)
		}
	}

	probability := 1 - maxSimilarity

	if len(similarTitles) > 0 {
		return Result{
			Verified:       false,
			Probability:    probability,
			Reason:         fmt.Sprintf("Similar to existing titles: %s", strings.Join(similarTitles, ", ")),
			SimilarTitles:  similarTitles,
			DetailedReport: report,
		}, nil
	}

	return Result{
		Verified:       true,
		Probability:    probability,
		Reason:         "No conflicting titles found",
		DetailedReport: report,
	}, nil
}
