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

package api

// VerifyRequest is the body of POST /api/verify.
type VerifyRequest struct {
	Title string `json:"title" validate:"required"`
}

// ErrorResponse is the body of any non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse reports service status and the live corpus snapshot.
type HealthResponse struct {
	Status     string `json:"status"`
	SnapshotID string `json:"snapshot_id,omitempty"`
	Records    int    `json:"records"`
	Vocabulary int    `json:"vocabulary"`
}

// RebuildResponse reports the snapshot that replaced the previous corpus.
type RebuildResponse struct {
	SnapshotID string `json:"snapshot_id"`
	Records    int    `json:"records"`
	Vocabulary int    `json:"vocabulary"`
}
