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

// Package apicem defines the error taxonomy of the APIC-EM API client.
//
// There are three kinds of error, all immutable once constructed:
//
//   - *Error: a generic failure carrying a message and an optional cause;
//   - *CallError: a failed remote API call, adding the provider error code
//     and a detail text;
//   - *TaskError: a failed asynchronous task, adding the provider error code
//     and the task's failure reason.
//
// CallError and TaskError are independent refinements of the base kind: a
// value is never both. Every kind implements the sealed Fault interface, so
// callers can dispatch with Kind() or a type switch, and every kind unwraps
// to its cause for errors.Is / errors.As.
//
// Construction never fails and stores its inputs verbatim:
//
//	err := apicem.WrapCall("404", "Not Found", "resource missing", transportErr)
//	if ce, ok := apicem.AsCall(err); ok {
//	    fmt.Println(ce.ErrorCode(), ce.Detail())
//	}
//
// Transport projections live in subpackages: mapper resolves HTTP/gRPC
// statuses, adapter defines the wire contract, and grpcx / httpx plug the
// taxonomy into servers and clients.
package apicem
