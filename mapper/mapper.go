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
	"fmt"
	"strings"

	"dirpx.dev/apicem"
	"dirpx.dev/apicem/apis"
	"dirpx.dev/apicem/code"
	"dirpx.dev/apicem/mapper/internal/segmenttrie"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// Build process overview:
//
//  1. Seed the builder with library defaults and built-in code rules.
//  2. Apply user-provided options (defaults, overrides, code rules).
//  3. Normalize and validate all code prefixes.
//  4. Build per-kind segment tries (HTTP & gRPC).
//  5. Freeze all maps into fresh copies.
//
// Errors returned from this function indicate invalid prefixes.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()

	// (1) Library defaults.
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = int(v)
	}
	for _, r := range defaultRules {
		b.httpPrefixes[r.kind] = append(b.httpPrefixes[r.kind], prefixRule{r.pattern, r.http})
		b.grpcPrefixes[r.kind] = append(b.grpcPrefixes[r.kind], prefixRule{r.pattern, int(r.grpc)})
	}

	// (2) User options.
	for _, opt := range opts {
		opt(b)
	}

	// (3) + (4) Per-kind tries.
	httpTrie, err := buildTries(b.httpPrefixes, "HTTP", func(v int) int { return v })
	if err != nil {
		return nil, err
	}
	grpcTrie, err := buildTries(b.grpcPrefixes, "gRPC", func(v int) codes.Code { return codes.Code(v) })
	if err != nil {
		return nil, err
	}

	// (5) Freeze.
	return &mapper{
		httpDefault:  freeze(b.httpDefaults, func(v int) int { return v }),
		grpcDefault:  freeze(b.grpcDefaults, func(v int) codes.Code { return codes.Code(v) }),
		httpOverride: freeze(b.httpOverride, func(v int) int { return v }),
		grpcOverride: freeze(b.grpcOverride, func(v int) codes.Code { return codes.Code(v) }),
		httpTrie:     httpTrie,
		grpcTrie:     grpcTrie,

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

// mapper combines per-kind defaults, per-kind overrides and per-kind code
// tries. Lookups are O(code depth) and safe for concurrent use.
type mapper struct {
	httpDefault map[apicem.Kind]int
	grpcDefault map[apicem.Kind]codes.Code

	httpOverride map[apicem.Kind]int
	grpcOverride map[apicem.Kind]codes.Code

	httpTrie map[apicem.Kind]*segmenttrie.Trie[int]
	grpcTrie map[apicem.Kind]*segmenttrie.Trie[codes.Code]

	fallbackHTTP int
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given kind and error code.
//
// Resolution order (highest to lowest):
//  1. per-kind override;
//  2. per-kind longest-prefix-match on the normalized error code;
//  3. per-kind default;
//  4. fallback (500).
func (m *mapper) HTTPStatus(k apicem.Kind, errorCode string) int {
	v, _, _ := resolve(k, code.Normalize(errorCode), m.httpOverride, m.httpTrie, m.httpDefault, m.fallbackHTTP)
	return v
}

// GRPCStatus resolves a gRPC status with the same precedence as HTTPStatus;
// the fallback is codes.Internal.
func (m *mapper) GRPCStatus(k apicem.Kind, errorCode string) codes.Code {
	v, _, _ := resolve(k, code.Normalize(errorCode), m.grpcOverride, m.grpcTrie, m.grpcDefault, m.fallbackGRPC)
	return v
}

// Status resolves both HTTP and gRPC using the same inputs.
func (m *mapper) Status(k apicem.Kind, errorCode string) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(k, errorCode),
		GRPC: m.GRPCStatus(k, errorCode),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a (kind, code) pair.
//
// Example output:
//
//	kind="call" code="NCND80010"
//	http: source=prefix pattern="NCND" -> 503
//	grpc: source=default -> UNAVAILABLE(14)
//
// source is one of override, prefix, default or fallback. The output is meant
// for humans and tests, not for machine parsing.
func (m *mapper) Explain(k apicem.Kind, errorCode string) string {
	c := code.Normalize(errorCode)
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "kind=%q code=%q\n", k, errorCode)

	hv, hsrc, hpat := resolve(k, c, m.httpOverride, m.httpTrie, m.httpDefault, m.fallbackHTTP)
	_, _ = fmt.Fprintln(&b, explainLine("http", hsrc, hpat, fmt.Sprintf("%d", hv)))

	gv, gsrc, gpat := resolve(k, c, m.grpcOverride, m.grpcTrie, m.grpcDefault, m.fallbackGRPC)
	_, _ = fmt.Fprint(&b, explainLine("grpc", gsrc, gpat, fmt.Sprintf("%s(%d)", strings.ToUpper(gv.String()), int(gv))))

	return b.String()
}

func explainLine(transport, source, pattern, val string) string {
	if source == "prefix" {
		return fmt.Sprintf("%s: source=prefix pattern=%q -> %s", transport, pattern, val)
	}
	return fmt.Sprintf("%s: source=%s -> %s", transport, source, val)
}

// resolve walks the four tiers for one transport and reports the value, the
// tier that produced it and, for prefix hits, the matched pattern.
func resolve[V any](
	k apicem.Kind,
	normalized string,
	override map[apicem.Kind]V,
	tries map[apicem.Kind]*segmenttrie.Trie[V],
	defaults map[apicem.Kind]V,
	fallback V,
) (val V, source, pattern string) {
	if v, ok := override[k]; ok {
		return v, "override", ""
	}
	if normalized != "" {
		if t, ok := tries[k]; ok {
			if v, ok, pat := t.MatchWithPattern(normalized); ok {
				return v, "prefix", pat
			}
		}
	}
	if v, ok := defaults[k]; ok {
		return v, "default", ""
	}
	return fallback, "fallback", ""
}

// buildTries compiles the per-kind rules of one transport into tries.
func buildTries[V any](rules map[apicem.Kind][]prefixRule, transport string, conv func(int) V) (map[apicem.Kind]*segmenttrie.Trie[V], error) {
	out := make(map[apicem.Kind]*segmenttrie.Trie[V], len(rules))
	for k, rs := range rules {
		if len(rs) == 0 {
			continue
		}
		t := segmenttrie.New[V]()
		for _, r := range rs {
			p := code.Normalize(r.prefix)
			if err := code.ValidatePattern(p); err != nil {
				return nil, fmt.Errorf("mapper: invalid %s code prefix %q for kind %q: %w", transport, r.prefix, k, err)
			}
			if err := t.Insert(p, conv(r.val)); err != nil {
				return nil, fmt.Errorf("mapper: cannot insert %s prefix %q for kind %q: %w", transport, p, k, err)
			}
		}
		out[k] = t
	}
	return out, nil
}
