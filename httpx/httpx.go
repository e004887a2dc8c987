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

// Package httpx plugs the apicem taxonomy into HTTP.
//
// Writer (and FiberErrorHandler for fiber apps) renders taxonomy errors as
// google.rpc.Status JSON carrying the adapter ErrorInfo, with the HTTP status
// resolved by an apis.Mapper. DecodeResponse does the reverse on the client
// side: it turns non-2xx responses into *apicem.CallError values.
package httpx

import (
	"net/http"

	"dirpx.dev/apicem/adapter"
	"dirpx.dev/apicem/apis"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/anypb"
)

// ContentType of the error bodies written by this package.
const ContentType = "application/json"

// Writer is a thin adapter that knows how to turn a taxonomy error into an
// HTTP response using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper
}

// Write serializes err and writes it to rw:
//
//	{"code":5,"message":"Not Found","details":[{"@type":"type.googleapis.com/google.rpc.ErrorInfo",
//	  "reason":"call","domain":"apicem","metadata":{"error_code":"404","message":"Not Found"}}]}
//
// No redaction is performed: whatever the error carries is exposed as-is.
// A nil err writes nothing.
func (w Writer) Write(rw http.ResponseWriter, err error) {
	if err == nil {
		return
	}
	status, body := w.Render(err)
	rw.Header().Set("Content-Type", ContentType)
	rw.WriteHeader(status)
	_, _ = rw.Write(body)
}

// Render returns the HTTP status and JSON body Write would produce.
func (w Writer) Render(err error) (int, []byte) {
	st := apis.StatusOf(w.Mapper, err)
	info := adapter.ToErrorInfo(err)

	msg := &spb.Status{
		Code:    int32(st.GRPC),
		Message: info.GetMetadata()[adapter.KeyMessage],
	}
	if detail, aerr := anypb.New(info); aerr == nil {
		msg.Details = []*anypb.Any{detail}
	}

	// protojson, not encoding/json: Any details need the type registry.
	b, merr := protojson.Marshal(msg)
	if merr != nil {
		return http.StatusInternalServerError, []byte(`{"code":13,"message":"internal"}`)
	}
	return st.HTTP, b
}
