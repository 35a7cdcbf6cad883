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
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
)

const (
	SchemaVersion = 1
	CfgEnv        = "TITLEVERIFY_CFG"
	CfgFile       = "config.toml"
	LogFile       = "titleverify.log"

	APIRequestTimeout = 30 * time.Second
)

type Values struct {
	Service      Service      `toml:"service,omitempty"`
	Verification Verification `toml:"verification,omitempty"`
	Rules        Rules        `toml:"rules,omitempty"`
	ConfigSchema int          `toml:"config_schema"`
	DebugLogging bool         `toml:"debug_logging"`
}

type Service struct {
	DatasetPath    string   `toml:"dataset_path,omitempty"`
	AllowedOrigins []string `toml:"allowed_origins,omitempty,multiline"`
	APIPort        int      `toml:"api_port"`
}

type Verification struct {
	// SimilarityThreshold is the duplication cutoff: candidates scoring
	// strictly above it are reported as similar titles.
	SimilarityThreshold float64 `toml:"similarity_threshold"`
	// TopK is the retrieval breadth of the nearest-neighbor search.
	TopK int `toml:"top_k"`
	// FlatRejectProbability selects the phonetic-rejection probability
	// convention: a flat 1 when true, 1 - max similarity when false.
	FlatRejectProbability bool `toml:"flat_reject_probability"`
}

type Rules struct {
	DisallowedWords    []string `toml:"disallowed_words,omitempty,multiline"`
	DisallowedPrefixes []string `toml:"disallowed_prefixes,omitempty,multiline"`
	DisallowedSuffixes []string `toml:"disallowed_suffixes,omitempty,multiline"`
	MinTitleLength     int      `toml:"min_title_length"`
	CheckMinLength     bool     `toml:"check_min_length"`
	CheckCharset       bool     `toml:"check_charset"`
	CheckWords         bool     `toml:"check_words"`
	CheckAffixes       bool     `toml:"check_affixes"`
}

var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
	Service: Service{
		APIPort:        5000,
		DatasetPath:    "dataset.csv",
		AllowedOrigins: []string{"https://*", "http://*"},
	},
	Verification: Verification{
		SimilarityThreshold:   0.8,
		TopK:                  10,
		FlatRejectProbability: true,
	},
	Rules: Rules{
		MinTitleLength: 3,
		CheckMinLength: true,
		CheckCharset:   true,
		CheckWords:     true,
		CheckAffixes:   true,
		DisallowedWords: []string{
			"police", "crime", "corruption", "cbi", "cid", "army",
		},
		DisallowedPrefixes: []string{
			"deadly", "brutal", "violent", "killer", "extreme",
		},
		DisallowedSuffixes: []string{
			"massacre", "terror", "attack", "warfare", "assassin",
		},
	},
}

// Instance is the runtime configuration handle. Values are guarded by a
// mutex so settings can be reloaded while requests are in flight.
type Instance struct {
	cfgPath  string
	vals     Values
	defaults Values
	mu       sync.RWMutex
}

//nolint:gocritic // config struct copied for immutability
func NewConfig(configDir string, defaults Values) (*Instance, error) {
	cfgPath := os.Getenv(CfgEnv)
	log.Debug().Msgf("env config path: %s", cfgPath)

	if cfgPath == "" {
		cfgPath = filepath.Join(configDir, CfgFile)
	}

	cfg := Instance{
		cfgPath:  cfgPath,
		vals:     defaults,
		defaults: defaults,
	}

	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		log.Info().Msg("saving new default config to disk")

		err := os.MkdirAll(filepath.Dir(cfgPath), 0o750)
		if err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		if err := cfg.Save(); err != nil {
			return nil, err
		}
	}

	if err := cfg.Load(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Instance) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return fmt.Errorf("config path not set")
	}

	data, err := os.ReadFile(c.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	vals := c.defaults
	if err := toml.Unmarshal(data, &vals); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if vals.ConfigSchema != SchemaVersion {
		log.Warn().
			Int("schema", vals.ConfigSchema).
			Int("expected", SchemaVersion).
			Msg("config schema version mismatch")
	}

	c.vals = vals
	return nil
}

func (c *Instance) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return fmt.Errorf("config path not set")
	}

	data, err := toml.Marshal(c.vals)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.cfgPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (c *Instance) APIPort() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Service.APIPort
}

func (c *Instance) DatasetPath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Service.DatasetPath
}

func (c *Instance) SetDatasetPath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Service.DatasetPath = path
}

func (c *Instance) AllowedOrigins() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	origins := make([]string, len(c.vals.Service.AllowedOrigins))
	copy(origins, c.vals.Service.AllowedOrigins)
	return origins
}

func (c *Instance) Verification() Verification {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Verification
}

func (c *Instance) Rules() Rules {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rules := c.vals.Rules
	rules.DisallowedWords = append([]string(nil), rules.DisallowedWords...)
	rules.DisallowedPrefixes = append([]string(nil), rules.DisallowedPrefixes...)
	rules.DisallowedSuffixes = append([]string(nil), rules.DisallowedSuffixes...)
	return rules
}

func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}
