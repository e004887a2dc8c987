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

package apicem

import (
	"encoding"
	"errors"
	"strings"
)

// Kind tags which variant of the taxonomy an error value belongs to.
type Kind uint8

const (
	// KindBase is the generic APIC-EM client failure (*Error).
	KindBase Kind = iota
	// KindCall is a failed remote API call (*CallError).
	KindCall
	// KindTask is a failed asynchronous task (*TaskError).
	KindTask
)

// ErrKindInvalid is returned when text cannot be parsed as a Kind.
var ErrKindInvalid = errors.New("apicem: invalid kind")

var (
	_ encoding.TextMarshaler   = Kind(0)
	_ encoding.TextUnmarshaler = (*Kind)(nil)
)

var kindNames = [...]string{
	KindBase: "base",
	KindCall: "call",
	KindTask: "task",
}

// String returns the lowercase kind name: "base", "call" or "task".
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind is the inverse of Kind.String. Surrounding spaces and case are
// ignored.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return KindBase, ErrKindInvalid
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if int(k) >= len(kindNames) {
		return nil, ErrKindInvalid
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
