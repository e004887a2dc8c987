/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package mapper provides deterministic, immutable mappings from apicem error
// kinds and provider error codes to transport-level statuses for HTTP and
// gRPC.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. override for the kind;
//  2. per-kind longest-prefix-match (LPM) on the error code;
//  3. per-kind default;
//  4. global fallback (500 / codes.Internal).
//
// Codes are compared in canonical form (see package code), so "task-timeout"
// and "TASK_TIMEOUT" resolve alike. Prefix rules are segment-aware: "NCND"
// matches "NCND_DISCOVERY" but not "NCNDX", and "*" matches exactly one
// segment:
//
//	WithHTTPPrefix(apicem.KindCall, "NCND", http.StatusServiceUnavailable)
//	WithHTTPPrefix(apicem.KindTask, "TASK_*_TIMEOUT", http.StatusGatewayTimeout)
//
// # Library defaults
//
// Base errors map to 500 / Internal, call errors to 502 / Unavailable and
// task errors to 502 / Aborted. Call errors whose code is a well-known HTTP
// status ("401", "404", "429", ...) keep that meaning, and TASK_TIMEOUT maps
// to 504 / DeadlineExceeded. All of this can be adjusted at build time, in
// code or from configuration (see LoadConfig).
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of how a (kind, code) pair was
// resolved. It is intended for inspection and logging, not for parsing.
//
// # Immutability
//
// All inputs are copied during New; a Mapper is safe to share across
// goroutines and requests.
package mapper
