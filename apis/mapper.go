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

package apis

import (
	"dirpx.dev/apicem"
	"google.golang.org/grpc/codes"
)

// Mapper is an immutable, concurrency-safe view of the status mapping rules.
// It resolves an error kind and a provider error code into transport
// statuses for HTTP and gRPC.
type Mapper interface {
	// HTTPStatus returns the HTTP status for the given kind and error code.
	// If no code-specific rule exists, the mapper must fall back to the kind-level rule.
	HTTPStatus(k apicem.Kind, errorCode string) int

	// GRPCStatus returns the gRPC status code for the given kind and error code.
	GRPCStatus(k apicem.Kind, errorCode string) codes.Code

	// Status resolves both HTTP and gRPC in a single call, using the same matching logic.
	Status(k apicem.Kind, errorCode string) Status

	// Explain returns a human-readable description of which rule matched.
	Explain(k apicem.Kind, errorCode string) string
}

// Status represents a resolved pair of transport statuses for a single error.
type Status struct {
	HTTP int        // Resolved HTTP status code (net/http compatible).
	GRPC codes.Code // Resolved gRPC status code.
}

// StatusOf resolves the status of the first taxonomy error in err's chain.
// Errors outside the taxonomy resolve like a base error without a code.
func StatusOf(m Mapper, err error) Status {
	f, ok := apicem.AsFault(err)
	if !ok {
		return m.Status(apicem.KindBase, "")
	}
	// The code must belong to the same value as the kind, not to a cause.
	var c string
	if ce, ok := f.(CodedError); ok {
		c = ce.ErrorCode()
	}
	return m.Status(f.Kind(), c)
}
