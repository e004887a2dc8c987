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

// Package adapter defines the wire contract of the apicem taxonomy.
//
// An error value is encoded as a google.rpc.ErrorInfo:
//
//	domain:   "apicem"
//	reason:   "base" | "call" | "task"
//	metadata: message, error_code, detail | failure_reason, cause
//
// Empty fields are omitted from the metadata. The cause travels as text only:
// decoding restores it as an opaque error with the same message, so
// errors.Is against the original cause value does not survive the trip.
//
// The same ErrorInfo is what grpcx attaches to gRPC statuses and what httpx
// writes into HTTP error bodies, so one decoder serves every transport.
package adapter
