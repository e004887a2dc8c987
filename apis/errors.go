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

import "dirpx.dev/apicem"

// CodedError is an error that carries a provider error code.
//
// Implemented by *apicem.CallError and *apicem.TaskError. The code is the
// value reported by the controller, unmodified; callers that compare codes
// should use code.Equal.
type CodedError interface {
	error

	// ErrorCode returns the provider error code. May be empty.
	ErrorCode() string
}

// DetailedError is a failed remote call that exposes the provider's detail
// text.
type DetailedError interface {
	CodedError

	// Detail returns the additional detail text. May be empty.
	Detail() string
}

// FailedTask is a failed asynchronous task that exposes the failure reason.
type FailedTask interface {
	CodedError

	// FailureReason returns the reason reported by the task. May be empty.
	FailureReason() string
}

// CausedError represents an error that exposes its underlying cause.
//
// Implementations SHOULD return the direct, immediate cause of the error. If
// there is no underlying cause, they SHOULD return nil.
type CausedError interface {
	error

	// Cause returns the underlying error that triggered this error, if any.
	Cause() error
}

var (
	_ DetailedError = (*apicem.CallError)(nil)
	_ FailedTask    = (*apicem.TaskError)(nil)
	_ CausedError   = (*apicem.Error)(nil)
	_ CausedError   = (*apicem.CallError)(nil)
	_ CausedError   = (*apicem.TaskError)(nil)
)
