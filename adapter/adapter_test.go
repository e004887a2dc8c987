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

package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"dirpx.dev/apicem"
	"dirpx.dev/apicem/apis"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
)

func TestToErrorInfo_Call(t *testing.T) {
	info := ToErrorInfo(apicem.WrapCall("404", "Not Found", "resource missing", errors.New("http 404")))
	if info.GetDomain() != Domain || info.GetReason() != "call" {
		t.Fatalf("unexpected identity: %v", info)
	}
	want := map[string]string{
		KeyMessage:   "Not Found",
		KeyErrorCode: "404",
		KeyDetail:    "resource missing",
		KeyCause:     "http 404",
	}
	for k, v := range want {
		if info.GetMetadata()[k] != v {
			t.Fatalf("metadata[%s] = %q, want %q", k, info.GetMetadata()[k], v)
		}
	}
	if len(info.GetMetadata()) != len(want) {
		t.Fatalf("unexpected metadata: %v", info.GetMetadata())
	}
}

func TestToErrorInfo_OmitsEmpty(t *testing.T) {
	info := ToErrorInfo(apicem.EmptyTask())
	if info.GetReason() != "task" || len(info.GetMetadata()) != 0 {
		t.Fatalf("empty task must encode without metadata: %v", info)
	}
	if ToErrorInfo(nil) != nil {
		t.Fatal("nil error must encode to nil")
	}
}

func TestToErrorInfo_ForeignAndWrapped(t *testing.T) {
	info := ToErrorInfo(errors.New("boom"))
	if info.GetReason() != "base" || info.GetMetadata()[KeyMessage] != "boom" {
		t.Fatalf("foreign error must encode as base: %v", info)
	}
	wrapped := fmt.Errorf("sync: %w", apicem.Task("T1", "failed", "reason"))
	if got := ToErrorInfo(wrapped); got.GetReason() != "task" || got.GetMetadata()[KeyErrorCode] != "T1" {
		t.Fatalf("wrapped task must be found: %v", got)
	}
}

func TestToErrorInfo_EmptyCauseText(t *testing.T) {
	info := ToErrorInfo(apicem.WrapCall("500", "boom", "", errors.New("")))
	if c, ok := info.GetMetadata()[KeyCause]; !ok || c != "" {
		t.Fatalf("cause with empty text must be encoded: %v", info.GetMetadata())
	}
	f, err := FromErrorInfo(info)
	if err != nil {
		t.Fatalf("FromErrorInfo: %v", err)
	}
	if f.Cause() == nil {
		t.Fatal("cause with empty text must decode as non-nil")
	}
}

func TestReserved(t *testing.T) {
	for _, k := range []string{KeyMessage, KeyErrorCode, KeyDetail, KeyFailureReason, KeyCause} {
		if !Reserved(k) {
			t.Fatalf("Reserved(%q) = false", k)
		}
	}
	if Reserved("trace_id") {
		t.Fatal("Reserved(trace_id) = true")
	}
}

func TestRoundTrip(t *testing.T) {
	inner := errors.New("poll deadline exceeded")
	cases := []error{
		apicem.Empty(),
		apicem.Wrap("controller unreachable", inner),
		apicem.Call("404", "Not Found", "resource missing"),
		apicem.WrapTask("TASK_TIMEOUT", "Task did not complete", "exceeded 30s", inner),
	}
	codecs := []struct {
		name string
		enc  func(error) ([]byte, error)
		dec  func([]byte) (apicem.Fault, error)
	}{
		{"proto", Marshal, Unmarshal},
		{"json", MarshalJSON, UnmarshalJSON},
	}
	for _, c := range codecs {
		for _, in := range cases {
			t.Run(c.name+"/"+in.Error(), func(t *testing.T) {
				b, err := c.enc(in)
				if err != nil {
					t.Fatalf("encode: %v", err)
				}
				out, err := c.dec(b)
				if err != nil {
					t.Fatalf("decode: %v", err)
				}
				if out.Error() != in.Error() {
					t.Fatalf("Error() = %q, want %q", out.Error(), in.Error())
				}
				want := ToView(in, apis.Status{})
				if got := ToView(out, apis.Status{}); got != want {
					t.Fatalf("view mismatch:\n got %+v\nwant %+v", got, want)
				}
			})
		}
	}
}

func TestRoundTrip_CauseIsOpaque(t *testing.T) {
	inner := errors.New("dial tcp: refused")
	b, err := Marshal(apicem.WrapCall("503", "down", "", inner))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	out, err := Unmarshal(b)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out.Cause() == nil || out.Cause().Error() != inner.Error() {
		t.Fatalf("cause text lost: %v", out.Cause())
	}
	if errors.Is(out, inner) {
		t.Fatal("decoded cause must not be the original value")
	}
}

func TestFromErrorInfo_Foreign(t *testing.T) {
	cases := []*errdetails.ErrorInfo{
		nil,
		{Domain: "googleapis.com", Reason: "RATE_LIMIT_EXCEEDED"},
		{Domain: Domain, Reason: "exception"},
	}
	for _, info := range cases {
		if _, err := FromErrorInfo(info); !errors.Is(err, ErrForeignInfo) {
			t.Fatalf("FromErrorInfo(%v) err=%v, want ErrForeignInfo", info, err)
		}
	}
}

func TestUnmarshal_Garbage(t *testing.T) {
	if _, err := UnmarshalJSON([]byte("{not json")); err == nil {
		t.Fatal("UnmarshalJSON must fail on garbage")
	}
	if _, err := Unmarshal([]byte{0xff, 0xff, 0xff}); err == nil {
		t.Fatal("Unmarshal must fail on garbage")
	}
	if _, err := Marshal(nil); err == nil {
		t.Fatal("Marshal(nil) must fail")
	}
}

func TestToView(t *testing.T) {
	st := apis.Status{HTTP: http.StatusGatewayTimeout, GRPC: codes.DeadlineExceeded}
	v := ToView(apicem.WrapTask("TASK_TIMEOUT", "late", "exceeded 30s", errors.New("ctx deadline")), st)
	want := apis.ErrorView{
		Kind:          "task",
		ErrorCode:     "TASK_TIMEOUT",
		Message:       "late",
		FailureReason: "exceeded 30s",
		Cause:         "ctx deadline",
		HTTPStatus:    504,
		GRPCCode:      int(codes.DeadlineExceeded),
	}
	if v != want {
		t.Fatalf("ToView:\n got %+v\nwant %+v", v, want)
	}
	if (ToView(nil, st) != apis.ErrorView{}) {
		t.Fatal("nil error must give an empty view")
	}
}
