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
	"net/http"

	"dirpx.dev/apicem"
	"dirpx.dev/apicem/code"
	"google.golang.org/grpc/codes"
)

// defaultHTTP holds the per-kind HTTP statuses used when no code rule
// matches. A failed call or task is a failure of the upstream controller, so
// both surface as 502 to our own callers.
var defaultHTTP = map[apicem.Kind]int{
	apicem.KindBase: http.StatusInternalServerError,
	apicem.KindCall: http.StatusBadGateway,
	apicem.KindTask: http.StatusBadGateway,
}

// defaultGRPC holds the per-kind gRPC statuses used when no code rule matches.
var defaultGRPC = map[apicem.Kind]codes.Code{
	apicem.KindBase: codes.Internal,
	apicem.KindCall: codes.Unavailable,
	apicem.KindTask: codes.Aborted,
}

// defaultRule is a built-in code rule seeded into the per-kind tries before
// user options are applied. A user rule with the same pattern replaces it.
type defaultRule struct {
	kind    apicem.Kind
	pattern string
	http    int
	grpc    codes.Code
}

var defaultRules = []defaultRule{
	// The controller echoes HTTP statuses as call error codes; keep the
	// caller-side meaning instead of collapsing them to 502.
	{apicem.KindCall, code.BadRequest, http.StatusBadRequest, codes.InvalidArgument},
	{apicem.KindCall, code.Unauthorized, http.StatusUnauthorized, codes.Unauthenticated},
	{apicem.KindCall, code.Forbidden, http.StatusForbidden, codes.PermissionDenied},
	{apicem.KindCall, code.NotFound, http.StatusNotFound, codes.NotFound},
	{apicem.KindCall, code.Conflict, http.StatusConflict, codes.Aborted},
	{apicem.KindCall, code.TooManyRequests, http.StatusTooManyRequests, codes.ResourceExhausted},
	{apicem.KindCall, code.Internal, http.StatusBadGateway, codes.Internal},
	{apicem.KindCall, code.Unavailable, http.StatusServiceUnavailable, codes.Unavailable},
	{apicem.KindCall, code.GatewayTimeout, http.StatusGatewayTimeout, codes.DeadlineExceeded},

	{apicem.KindTask, code.TaskTimeout, http.StatusGatewayTimeout, codes.DeadlineExceeded},
}
