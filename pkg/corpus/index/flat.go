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

// Package index implements an exact brute-force nearest-neighbor index over
// flat float32 vectors. Exactness matters for a compliance decision and the
// corpus is small enough for a linear scan, so no approximation is used.
package index

import (
	"fmt"
	"sort"
)

// Result is a single nearest-neighbor hit: the squared Euclidean distance
// from the query and the position of the stored vector.
type Result struct {
	Distance float32
	Index    int
}

// Flat stores vectors of a fixed dimension and answers k-NN queries by
// scanning all of them. It must not be mutated after the build phase;
// concurrent Query calls are safe on a frozen index.
type Flat struct {
	vectors [][]float32
	dim     int
}

// NewFlat creates an empty index for vectors of the given dimension.
func NewFlat(dim int) *Flat {
	return &Flat{dim: dim}
}

// Add appends a vector to the index. Only called during the build phase.
func (f *Flat) Add(vec []float32) error {
	if len(vec) != f.dim {
		return fmt.Errorf("vector dimension %d does not match index dimension %d", len(vec), f.dim)
	}
	f.vectors = append(f.vectors, vec)
	return nil
}

// Len returns the number of stored vectors.
func (f *Flat) Len() int {
	return len(f.vectors)
}

// Query returns up to k stored vectors nearest to vec by squared Euclidean
// distance, ascending. Ties are broken by insertion order so results are
// deterministic. Fewer than k results are returned when the index holds
// fewer vectors.
func (f *Flat) Query(vec []float32, k int) ([]Result, error) {
	if len(vec) != f.dim {
		return nil, fmt.Errorf("query dimension %d does not match index dimension %d", len(vec), f.dim)
	}
	if k <= 0 || len(f.vectors) == 0 {
		return nil, nil
	}

	results := make([]Result, len(f.vectors))
	for i, stored := range f.vectors {
		var dist float32
		for j := range stored {
			d := vec[j] - stored[j]
			dist += d * d
		}
		results[i] = Result{Distance: dist, Index: i}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})

	if k > len(results) {
		k = len(results)
	}
	return results[:k], nil
}
