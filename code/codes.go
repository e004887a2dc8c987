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

import "strconv"

// HTTP-style codes.
//
// The controller reports many call failures with the numeric HTTP status as
// the error code. These constants name the ones the client treats specially.
const (
	// BadRequest: the request was malformed or failed validation.
	BadRequest = "400"
	// Unauthorized: the service ticket is missing, invalid or expired.
	Unauthorized = "401"
	// Forbidden: the ticket is valid but lacks the required role.
	Forbidden = "403"
	// NotFound: the addressed resource does not exist.
	NotFound = "404"
	// Conflict: the resource is in a conflicting state.
	Conflict = "409"
	// TooManyRequests: the caller was rate limited.
	TooManyRequests = "429"
	// Internal: the controller failed internally.
	Internal = "500"
	// Unavailable: the controller (or one of its services) is down.
	Unavailable = "503"
	// GatewayTimeout: the controller timed out talking to a device or service.
	GatewayTimeout = "504"
)

// Symbolic codes produced by the client itself.
const (
	// TaskTimeout: a task did not finish within the polling budget.
	TaskTimeout = "TASK_TIMEOUT"
	// TaskFailed: a task finished with isError=true but without a code.
	TaskFailed = "TASK_FAILED"
)

// FromHTTPStatus renders an HTTP status as a provider code.
func FromHTTPStatus(status int) string {
	return strconv.Itoa(status)
}

// HTTPStatus parses an HTTP-style code. ok is false unless c is a three-digit
// number in the 100..599 range.
func HTTPStatus(c string) (status int, ok bool) {
	c = Normalize(c)
	if len(c) != 3 {
		return 0, false
	}
	n, err := strconv.Atoi(c)
	if err != nil || n < 100 || n > 599 {
		return 0, false
	}
	return n, true
}
