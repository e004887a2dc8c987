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

package code

import (
	"errors"
	"strings"
)

// Separator splits a canonical code into segments.
const Separator = "_"

// Wildcard matches exactly one segment in a rule pattern.
const Wildcard = "*"

var (
	// ErrPatternInvalid is returned when a rule pattern is empty, has empty
	// segments, contains characters outside [A-Z0-9] or consists only of
	// wildcards.
	ErrPatternInvalid = errors.New("apicem: invalid code pattern")
)

// Normalize brings a provider code into canonical form. It never fails;
// callers that need a well-formed code should use Segments.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToUpper(s)
	s = strings.NewReplacer("-", Separator, ".", Separator).Replace(s)
	return s
}

// Segments normalizes s and splits it into segments. ok is false when the
// result has an empty segment or a character outside [A-Z0-9]. The empty
// code yields no segments and ok=true.
func Segments(s string) (segs []string, ok bool) {
	s = Normalize(s)
	if s == "" {
		return nil, true
	}
	segs = strings.Split(s, Separator)
	for _, seg := range segs {
		if !validSegment(seg) {
			return nil, false
		}
	}
	return segs, true
}

// ValidatePattern checks a normalized rule pattern. Every segment is either
// [A-Z0-9]+ or "*", and at least one segment is not "*": "NCND" and
// "NCND_*_TIMEOUT" are valid, "*" and "4*" are not.
func ValidatePattern(p string) error {
	if p == "" {
		return ErrPatternInvalid
	}
	allWild := true
	for _, seg := range strings.Split(p, Separator) {
		if seg == Wildcard {
			continue
		}
		if !validSegment(seg) {
			return ErrPatternInvalid
		}
		allWild = false
	}
	if allWild {
		return ErrPatternInvalid
	}
	return nil
}

// Equal reports whether two provider codes are the same after normalization.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// validSegment reports whether seg matches [A-Z0-9]+.
func validSegment(seg string) bool {
	if seg == "" {
		return false
	}
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			continue
		}
		return false
	}
	return true
}
