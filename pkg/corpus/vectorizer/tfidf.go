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

// Package vectorizer projects titles into a TF-IDF vector space over a
// vocabulary fixed at corpus build time. The vocabulary never grows after
// Fit; terms unknown to the fitted vocabulary contribute zero weight.
package vectorizer

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// tokenPattern matches word tokens of at least two characters, the same
// boundary rule the corpus was originally indexed with.
var tokenPattern = regexp.MustCompile(`\b\w\w+\b`)

// Vectorizer is a frozen TF-IDF vector space. It is immutable after Fit and
// safe for concurrent Transform calls.
type Vectorizer struct {
	vocab map[string]int
	terms []string
	idf   []float32
}

// Tokenize lowercases the input and splits it into vocabulary-eligible
// tokens, dropping English stopwords.
func Tokenize(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		if stopwords[tok] {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// Fit builds the vocabulary and inverse document frequencies from the full
// document set. Smoothed IDF is used so terms appearing in every document
// still carry a small positive weight. An empty document set produces an
// empty (zero-dimension) vector space, which is valid: every Transform then
// returns an empty vector.
func Fit(docs []string) *Vectorizer {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, tok := range Tokenize(doc) {
			if !seen[tok] {
				seen[tok] = true
				df[tok]++
			}
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	v := &Vectorizer{
		vocab: make(map[string]int, len(terms)),
		terms: terms,
		idf:   make([]float32, len(terms)),
	}
	n := float64(len(docs))
	for i, term := range terms {
		v.vocab[term] = i
		v.idf[i] = float32(math.Log((1+n)/(1+float64(df[term]))) + 1)
	}
	return v
}

// Transform projects text into the fitted vector space as an L2-normalized
// float32 vector of dimension Size(). Terms outside the frozen vocabulary
// are ignored; a text with no known terms maps to the zero vector.
func (v *Vectorizer) Transform(text string) []float32 {
	vec := make([]float32, len(v.terms))
	for _, tok := range Tokenize(text) {
		if i, ok := v.vocab[tok]; ok {
			vec[i]++
		}
	}

	var sumSq float64
	for i := range vec {
		vec[i] *= v.idf[i]
		sumSq += float64(vec[i]) * float64(vec[i])
	}
	if sumSq > 0 {
		norm := float32(math.Sqrt(sumSq))
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// Size returns the vector space dimension, equal to the vocabulary size.
func (v *Vectorizer) Size() int {
	return len(v.terms)
}

// Terms returns the vocabulary in column order.
func (v *Vectorizer) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}
