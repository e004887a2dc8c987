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

package httpx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"dirpx.dev/apicem"
	"dirpx.dev/apicem/adapter"
	"dirpx.dev/apicem/code"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/protobuf/encoding/protojson"
)

// MaxErrorBody bounds how much of an error response body is read.
const MaxErrorBody = 1 << 20

// StatusError is the transport-level fault behind a failed HTTP call. It is
// the cause of the CallError returned by DecodeResponse.
type StatusError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *StatusError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("server returned %s", e.Status)
}

// IsNotFound reports whether the response was a 404.
func (e *StatusError) IsNotFound() bool { return e.StatusCode == http.StatusNotFound }

// IsUnauthorized reports whether the response was a 401, i.e. the service
// ticket must be renewed.
func (e *StatusError) IsUnauthorized() bool { return e.StatusCode == http.StatusUnauthorized }

// IsRateLimited reports whether the response was a 429.
func (e *StatusError) IsRateLimited() bool { return e.StatusCode == http.StatusTooManyRequests }

// envelope is the controller's error body:
//
//	{"response":{"errorCode":"NCND01001","message":"Invalid input","detail":"..."},"version":"1.0"}
type envelope struct {
	Response struct {
		ErrorCode string `json:"errorCode"`
		Message   string `json:"message"`
		Detail    string `json:"detail"`
	} `json:"response"`
}

// DecodeResponse returns nil for 2xx responses. Otherwise it reads (at most
// MaxErrorBody bytes of) the body and returns a taxonomy error whose cause is
// a *StatusError. The body is tried, in order, as:
//
//  1. google.rpc.Status JSON carrying an apicem ErrorInfo (as written by
//     Writer): the encoded CallError or TaskError is restored;
//  2. the controller error envelope;
//  3. anything else: the raw body becomes the detail.
//
// When the body does not name an error code, the numeric HTTP status is used.
// The caller still owns resp.Body and must close it.
func DecodeResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	data, rerr := io.ReadAll(io.LimitReader(resp.Body, MaxErrorBody))
	cause := &StatusError{StatusCode: resp.StatusCode, Status: resp.Status, Body: data}
	fallbackCode := code.FromHTTPStatus(resp.StatusCode)
	if rerr != nil {
		return apicem.WrapCall(fallbackCode, resp.Status, "", fmt.Errorf("read error body: %w", rerr))
	}

	if f, ok := decodeStatus(data); ok {
		switch f := f.(type) {
		case *apicem.TaskError:
			return apicem.WrapTask(f.ErrorCode(), f.Message(), f.FailureReason(), cause)
		case *apicem.CallError:
			return apicem.WrapCall(orDefault(f.ErrorCode(), fallbackCode), f.Message(), f.Detail(), cause)
		default:
			return apicem.WrapCall(fallbackCode, f.Message(), "", cause)
		}
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err == nil && (env.Response.ErrorCode != "" || env.Response.Message != "") {
		r := env.Response
		return apicem.WrapCall(orDefault(r.ErrorCode, fallbackCode), orDefault(r.Message, resp.Status), r.Detail, cause)
	}

	return apicem.WrapCall(fallbackCode, resp.Status, string(bytes.TrimSpace(data)), cause)
}

func decodeStatus(data []byte) (apicem.Fault, bool) {
	var st spb.Status
	if err := (protojson.UnmarshalOptions{DiscardUnknown: true}).Unmarshal(data, &st); err != nil {
		return nil, false
	}
	for _, d := range st.GetDetails() {
		var info errdetails.ErrorInfo
		if d.UnmarshalTo(&info) != nil {
			continue
		}
		if f, err := adapter.FromErrorInfo(&info); err == nil {
			return f, true
		}
	}
	return nil, false
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
