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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	rows := []DatasetRow{
		{TitleName: "Daily News", HindiTitle: "Dainik Samachar", OwnerName: "A Owner"},
		{TitleName: " The Hindu Times ", HindiTitle: "Hindu Samay"},
		{TitleName: "Morning Chronicle"},
	}

	c, err := Build(rows)
	require.NoError(t, err)

	require.Len(t, c.Records, 3)
	assert.NotEqual(t, "", c.ID.String())

	first := c.Records[0]
	assert.Equal(t, "Daily News", first.RawTitle)
	assert.Equal(t, "daily news", first.NormalizedTitle)
	assert.NotEmpty(t, first.Phonetic.Soundex)
	assert.NotEmpty(t, first.Phonetic.Metaphone)
	assert.Equal(t, "A Owner", first.Metadata["owner"])

	second := c.Records[1]
	assert.Equal(t, "The Hindu Times", second.RawTitle, "raw title is trimmed")
	assert.Equal(t, "the hindu times", second.NormalizedTitle)

	// Every embedding shares the vocabulary dimension.
	dim := c.Vectorizer.Size()
	require.Positive(t, dim)
	for _, rec := range c.Records {
		assert.Len(t, rec.Embedding, dim)
	}
	assert.Equal(t, len(c.Records), c.Index.Len())
}

func TestBuild_VocabularyIncludesTranslatedTitles(t *testing.T) {
	t.Parallel()

	c, err := Build([]DatasetRow{
		{TitleName: "daily news", HindiTitle: "dainik samachar"},
	})
	require.NoError(t, err)

	assert.Contains(t, c.Vectorizer.Terms(), "dainik",
		"translated title terms join the vocabulary")
}

func TestBuild_SkipsBlankTitles(t *testing.T) {
	t.Parallel()

	c, err := Build([]DatasetRow{
		{TitleName: "daily news"},
		{TitleName: "   "},
	})
	require.NoError(t, err)
	require.Len(t, c.Records, 1)
}

func TestBuild_EmptyRows(t *testing.T) {
	t.Parallel()

	c, err := Build(nil)
	require.NoError(t, err)

	assert.Empty(t, c.Records)
	assert.Equal(t, 0, c.Vectorizer.Size())
	assert.Equal(t, 0, c.Index.Len())
}

func TestBuild_DistinctSnapshotIDs(t *testing.T) {
	t.Parallel()

	rows := []DatasetRow{{TitleName: "daily news"}}
	a, err := Build(rows)
	require.NoError(t, err)
	b, err := Build(rows)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID, "each build is a distinct snapshot")
}
