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

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"golang.org/x/text/encoding/charmap"
)

// Loader reads the registered titles dataset from a filesystem. The fs is
// injected so tests can use an in-memory filesystem.
type Loader struct {
	fs   afero.Fs
	path string
}

// NewLoader creates a Loader for the dataset at path.
func NewLoader(fs afero.Fs, path string) *Loader {
	return &Loader{fs: fs, path: path}
}

// Load reads and parses the dataset CSV. The source file is Latin-1 encoded,
// so it is decoded to UTF-8 before parsing. Rows without a title are
// malformed and dropped here, at load time, with a warning.
func (l *Loader) Load() ([]DatasetRow, error) {
	file, err := l.fs.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close dataset file")
		}
	}()

	reader := charmap.ISO8859_1.NewDecoder().Reader(file)

	rows := make([]DatasetRow, 0)
	if err := gocsv.Unmarshal(reader, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dataset CSV: %w", err)
	}

	valid := rows[:0]
	dropped := 0
	for _, row := range rows {
		if strings.TrimSpace(row.TitleName) == "" {
			dropped++
			continue
		}
		valid = append(valid, row)
	}
	if dropped > 0 {
		log.Warn().Int("dropped", dropped).Msg("dropped dataset rows with empty title")
	}

	log.Info().Int("rows", len(valid)).Str("path", l.path).Msg("loaded title dataset")
	return valid, nil
}
