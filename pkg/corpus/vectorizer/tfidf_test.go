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

package vectorizer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "drops stopwords",
			input:    "the hindu times",
			expected: []string{"hindu", "times"},
		},
		{
			name:     "lowercases",
			input:    "Daily News",
			expected: []string{"daily", "news"},
		},
		{
			name:     "drops single characters",
			input:    "a b news",
			expected: []string{"news"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}

func TestFit_VocabularyFixedAndSorted(t *testing.T) {
	t.Parallel()

	v := Fit([]string{"daily news", "morning news", "the morning chronicle"})

	assert.Equal(t, []string{"chronicle", "daily", "morning", "news"}, v.Terms())
	assert.Equal(t, 4, v.Size())
}

func TestFit_EmptyDocs(t *testing.T) {
	t.Parallel()

	v := Fit(nil)
	assert.Equal(t, 0, v.Size())
	assert.Empty(t, v.Transform("anything at all"))
}

func TestTransform_FrozenVocabulary(t *testing.T) {
	t.Parallel()

	v := Fit([]string{"daily news", "morning chronicle"})
	before := v.Size()

	vec := v.Transform("entirely unknown terms")
	assert.Len(t, vec, before, "transform output dimension equals vocabulary size")
	assert.Equal(t, before, v.Size(), "vocabulary must not grow after fit")
	for i, w := range vec {
		assert.Zerof(t, w, "unknown terms must contribute zero weight (dim %d)", i)
	}
}

func TestTransform_L2Normalized(t *testing.T) {
	t.Parallel()

	v := Fit([]string{"daily news", "morning news", "coastal gazette"})
	vec := v.Transform("daily news")

	var sumSq float64
	for _, w := range vec {
		sumSq += float64(w) * float64(w)
	}
	assert.InDelta(t, 1.0, sumSq, 1e-5, "non-zero vectors are unit length")
}

func TestTransform_RarerTermsWeighMore(t *testing.T) {
	t.Parallel()

	// "news" appears in two documents, "daily" in one only.
	v := Fit([]string{"daily news", "morning news"})
	vec := v.Transform("daily news")

	terms := v.Terms()
	var daily, news float32
	for i, term := range terms {
		switch term {
		case "daily":
			daily = vec[i]
		case "news":
			news = vec[i]
		}
	}
	require.NotZero(t, daily)
	require.NotZero(t, news)
	assert.Greater(t, daily, news, "IDF must weight the rarer term higher")
}

func TestTransform_Deterministic(t *testing.T) {
	t.Parallel()

	v := Fit([]string{"daily news", "morning chronicle", "coastal gazette"})
	a := v.Transform("daily chronicle")
	b := v.Transform("daily chronicle")
	assert.Equal(t, a, b)

	for _, w := range a {
		assert.False(t, math.IsNaN(float64(w)))
	}
}
