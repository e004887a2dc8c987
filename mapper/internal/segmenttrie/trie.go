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

// Package segmenttrie implements a longest-prefix-match index over
// '_'-separated provider error codes such as "NCND_DISCOVERY_TIMEOUT".
package segmenttrie

import (
	"errors"
	"strings"

	"dirpx.dev/apicem/code"
)

// Trie is a segment-aware prefix index for canonical provider codes.
// Each node represents one segment; the wildcard "*" matches exactly one
// segment. A deeper (more specific) rule wins over a shorter one.
type Trie[T any] struct {
	children map[string]*Trie[T]
	hasVal   bool
	val      T
	// pattern is the rule as inserted, kept for Explain().
	pattern string
}

var (
	// ErrInvalidPrefix is returned when inserting a prefix that fails
	// code.ValidatePattern.
	ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")
)

// New creates an empty trie ready for inserts.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert adds a canonical prefix to the trie and associates it with val.
//
// Examples:
//
//	"404"
//	"NCND"
//	"NCND_*_TIMEOUT"
//
// Inserting the same prefix twice replaces the value.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil {
		return ErrInvalidPrefix
	}
	if err := code.ValidatePattern(prefix); err != nil {
		return ErrInvalidPrefix
	}

	cur := t
	for _, s := range strings.Split(prefix, code.Separator) {
		child, exists := cur.children[s]
		if !exists {
			child = New[T]()
			cur.children[s] = child
		}
		cur = child
	}
	cur.hasVal = true
	cur.val = val
	cur.pattern = prefix
	return nil
}

// Match finds the value of the deepest prefix matching a canonical code.
// It returns the zero value and false when the code is malformed or nothing
// matches.
func (t *Trie[T]) Match(c string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(c)
	return v, ok
}

// MatchWithPattern is like Match but also returns the stored rule pattern.
// When an exact and a wildcard branch reach the same depth the exact branch
// wins, because it is explored first.
func (t *Trie[T]) MatchWithPattern(c string) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}
	bestDepth := -1
	var bestVal T
	var bestPat string

	var dfs func(n *Trie[T], off, depth int)
	dfs = func(n *Trie[T], off, depth int) {
		if n.hasVal && depth > bestDepth {
			bestDepth = depth
			bestVal = n.val
			bestPat = n.pattern
		}
		if off >= len(c) {
			return
		}
		// next segment is [off:i), [A-Z0-9]+
		i := off
		for i < len(c) && c[i] != '_' {
			ch := c[i]
			if !((ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9')) {
				return
			}
			i++
		}
		if i == off {
			return // empty segment
		}
		seg := c[off:i]
		nextOff := i
		if nextOff < len(c) {
			nextOff++ // skip '_'
			if nextOff == len(c) {
				return // trailing separator
			}
		}

		if next, ok := n.children[seg]; ok {
			dfs(next, nextOff, depth+1)
		}
		if next, ok := n.children[code.Wildcard]; ok {
			dfs(next, nextOff, depth+1)
		}
	}

	dfs(t, 0, 0)
	if bestDepth < 0 {
		return zero, false, ""
	}
	return bestVal, true, bestPat
}
