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

// ErrorView is a flat, serializable snapshot of a taxonomy error together
// with its resolved transport status.
//
// This is *not* the error type used internally; it is the shape we are
// comfortable logging or exposing. No redaction is applied: whatever the
// error carries is copied as-is.
type ErrorView struct {
	// Kind is "base", "call" or "task".
	Kind string `json:"kind"`

	// ErrorCode is the provider error code (call and task kinds only).
	ErrorCode string `json:"error_code,omitempty"`

	// Message is the human-readable message.
	Message string `json:"message,omitempty"`

	// Detail is the call detail text (call kind only).
	Detail string `json:"detail,omitempty"`

	// FailureReason is the task failure reason (task kind only).
	FailureReason string `json:"failure_reason,omitempty"`

	// Cause is the text of the wrapped cause, if any.
	Cause string `json:"cause,omitempty"`

	// HTTPStatus and GRPCCode are the resolved transport statuses. A value
	// of 0 means "not resolved".
	HTTPStatus int `json:"http_status,omitempty"`
	GRPCCode   int `json:"grpc_code,omitempty"`
}
