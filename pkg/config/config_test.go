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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(t *testing.T) *Instance {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(CfgEnv, filepath.Join(dir, CfgFile))

	cfg, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)
	return cfg
}

func TestNewConfig_WritesDefaults(t *testing.T) {
	cfg := newTestConfig(t)

	assert.Equal(t, 5000, cfg.APIPort())
	assert.Equal(t, "dataset.csv", cfg.DatasetPath())

	vc := cfg.Verification()
	assert.InDelta(t, 0.8, vc.SimilarityThreshold, 1e-12)
	assert.Equal(t, 10, vc.TopK)
	assert.True(t, vc.FlatRejectProbability)

	rc := cfg.Rules()
	assert.Equal(t, 3, rc.MinTitleLength)
	assert.True(t, rc.CheckMinLength)
	assert.True(t, rc.CheckCharset)
	assert.True(t, rc.CheckWords)
	assert.True(t, rc.CheckAffixes)
	assert.Contains(t, rc.DisallowedWords, "police")
	assert.Contains(t, rc.DisallowedPrefixes, "deadly")
	assert.Contains(t, rc.DisallowedSuffixes, "terror")

	// The default file was persisted to disk.
	_, err := os.Stat(os.Getenv(CfgEnv))
	assert.NoError(t, err)
}

func TestConfig_SaveAndReload(t *testing.T) {
	cfg := newTestConfig(t)

	cfg.SetDatasetPath("/data/titles.csv")
	require.NoError(t, cfg.Save())
	require.NoError(t, cfg.Load())

	assert.Equal(t, "/data/titles.csv", cfg.DatasetPath())
}

func TestConfig_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, CfgFile)
	t.Setenv(CfgEnv, cfgPath)

	custom := `config_schema = 1

[verification]
similarity_threshold = 0.9
top_k = 5
flat_reject_probability = false

[rules]
min_title_length = 5
check_affixes = false
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(custom), 0o600))

	cfg, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)

	vc := cfg.Verification()
	assert.InDelta(t, 0.9, vc.SimilarityThreshold, 1e-12)
	assert.Equal(t, 5, vc.TopK)
	assert.False(t, vc.FlatRejectProbability)

	rc := cfg.Rules()
	assert.Equal(t, 5, rc.MinTitleLength)
	assert.False(t, rc.CheckAffixes)
	assert.Equal(t, 5000, cfg.APIPort(), "unset fields keep defaults")
}

func TestConfig_RulesReturnsCopies(t *testing.T) {
	cfg := newTestConfig(t)

	rc := cfg.Rules()
	rc.DisallowedWords[0] = "mutated"

	assert.NotContains(t, cfg.Rules().DisallowedWords, "mutated",
		"accessor must hand out copies of slices")
}
