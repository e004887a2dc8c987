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

package mapper

import (
	"net/http"

	"dirpx.dev/apicem"
	"google.golang.org/grpc/codes"
)

type prefixRule struct {
	// prefix is the raw code prefix (may contain "*"). It is normalized and
	// validated when the per-kind trie is built.
	prefix string
	// val is the numeric transport status to apply when this prefix matches.
	val int
}

type builder struct {
	// httpDefaults / grpcDefaults hold per-kind defaults (library + user).
	httpDefaults map[apicem.Kind]int
	grpcDefaults map[apicem.Kind]int

	// httpOverride / grpcOverride hold exact per-kind overrides.
	httpOverride map[apicem.Kind]int
	grpcOverride map[apicem.Kind]int

	// httpPrefixes / grpcPrefixes hold per-kind code rules in insertion
	// order; a later rule for the same prefix replaces an earlier one.
	httpPrefixes map[apicem.Kind][]prefixRule
	grpcPrefixes map[apicem.Kind][]prefixRule

	// global fallbacks used when a kind has no default at all.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

func newBuilder() *builder {
	return &builder{
		httpDefaults: make(map[apicem.Kind]int, len(defaultHTTP)),
		grpcDefaults: make(map[apicem.Kind]int, len(defaultGRPC)),

		httpOverride: make(map[apicem.Kind]int),
		grpcOverride: make(map[apicem.Kind]int),
		httpPrefixes: make(map[apicem.Kind][]prefixRule),
		grpcPrefixes: make(map[apicem.Kind][]prefixRule),

		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
}
