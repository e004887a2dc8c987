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

package apicem

import (
	"errors"
	"io"
	"testing"
)

func TestError_NoArgs(t *testing.T) {
	for _, e := range []*Error{Empty(), new(Error), {}} {
		if e.Message() != "" {
			t.Fatalf("Message() = %q, want empty", e.Message())
		}
		if e.Cause() != nil {
			t.Fatalf("Cause() = %v, want nil", e.Cause())
		}
		if e.Kind() != KindBase {
			t.Fatalf("Kind() = %v, want base", e.Kind())
		}
	}
}

func TestError_MessageAndCause(t *testing.T) {
	e := New("controller unreachable")
	if e.Message() != "controller unreachable" || e.Cause() != nil {
		t.Fatalf("New: got message=%q cause=%v", e.Message(), e.Cause())
	}

	root := errors.New("dial tcp: connection refused")
	w := Wrap("controller unreachable", root)
	if w.Cause() != root {
		t.Fatalf("Wrap: cause not preserved")
	}
	if !errors.Is(w, root) {
		t.Fatal("errors.Is failed")
	}
	if errors.Unwrap(w) != root {
		t.Fatal("Unwrap failed")
	}
}

func TestCallError_Fields(t *testing.T) {
	tests := []struct {
		name                  string
		code, message, detail string
	}{
		{"not found", "404", "Not Found", "resource missing"},
		{"padded values kept verbatim", "  NCND01001 ", " Bad request\n", "\tline1\nline2 "},
		{"empty strings", "", "", ""},
		{"unicode", "E42", "échec", "détail ✓"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Call(tt.code, tt.message, tt.detail)
			if e.ErrorCode() != tt.code || e.Message() != tt.message || e.Detail() != tt.detail {
				t.Fatalf("got (%q, %q, %q), want (%q, %q, %q)",
					e.ErrorCode(), e.Message(), e.Detail(), tt.code, tt.message, tt.detail)
			}
			if e.Cause() != nil {
				t.Fatalf("Cause() = %v, want nil", e.Cause())
			}
		})
	}
}

func TestCallError_Scenario(t *testing.T) {
	e := Call("404", "Not Found", "resource missing")
	if e.ErrorCode() != "404" || e.Message() != "Not Found" || e.Detail() != "resource missing" || e.Cause() != nil {
		t.Fatalf("unexpected fields: %+v", e)
	}
	if got, want := e.Error(), "call 404: Not Found: resource missing"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestTaskError_Scenario(t *testing.T) {
	inner := errors.New("poll deadline exceeded")
	e := WrapTask("TASK_TIMEOUT", "Task did not complete", "exceeded 30s", inner)

	if e.ErrorCode() != "TASK_TIMEOUT" {
		t.Fatalf("ErrorCode() = %q", e.ErrorCode())
	}
	if e.Message() != "Task did not complete" {
		t.Fatalf("Message() = %q", e.Message())
	}
	if e.FailureReason() != "exceeded 30s" {
		t.Fatalf("FailureReason() = %q", e.FailureReason())
	}
	if e.Cause() != inner {
		t.Fatal("cause not preserved")
	}
	if !errors.Is(e, inner) {
		t.Fatal("errors.Is failed")
	}
}

func TestTaskError_Fields(t *testing.T) {
	e := Task("NCTS00001", "Task failed", "device unreachable")
	if e.ErrorCode() != "NCTS00001" || e.Message() != "Task failed" || e.FailureReason() != "device unreachable" {
		t.Fatalf("unexpected fields: %+v", e)
	}
	if e.Cause() != nil {
		t.Fatal("cause must be nil")
	}
}

func TestZeroValues(t *testing.T) {
	c := EmptyCall()
	if c.ErrorCode() != "" || c.Message() != "" || c.Detail() != "" || c.Cause() != nil {
		t.Fatalf("EmptyCall not empty: %+v", c)
	}
	tk := EmptyTask()
	if tk.ErrorCode() != "" || tk.Message() != "" || tk.FailureReason() != "" || tk.Cause() != nil {
		t.Fatalf("EmptyTask not empty: %+v", tk)
	}
	var zc CallError
	if zc.Error() != "call: error" {
		t.Fatalf("zero CallError Error() = %q", zc.Error())
	}
}

func TestWrap_NilCause(t *testing.T) {
	e := WrapCall("500", "boom", "", nil)
	if e.Cause() != nil || errors.Unwrap(e) != nil {
		t.Fatal("nil cause must stay nil")
	}
}

func TestError_String(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"base", New("boom"), "boom"},
		{"base empty", Empty(), "apicem: error"},
		{"call no detail", Call("401", "Unauthorized", ""), "call 401: Unauthorized"},
		{"call no code", Call("", "Unauthorized", "token expired"), "call: Unauthorized: token expired"},
		{"task", Task("TASK_TIMEOUT", "Task did not complete", "exceeded 30s"), "task TASK_TIMEOUT: Task did not complete: exceeded 30s"},
		{"task without cause text", WrapTask("X1", "m", "", io.EOF), "task X1: m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNilReceivers(t *testing.T) {
	var e *Error
	var c *CallError
	var tk *TaskError
	if e.Error() != "<nil>" || c.Error() != "<nil>" || tk.Error() != "<nil>" {
		t.Fatal("nil receivers must print <nil>")
	}
	if e.Unwrap() != nil || c.Unwrap() != nil || tk.Unwrap() != nil {
		t.Fatal("nil receivers must unwrap to nil")
	}
}

func TestRefinementsAreIndependent(t *testing.T) {
	var c error = Call("1", "m", "d")
	var tk error = Task("1", "m", "r")

	if _, ok := c.(*TaskError); ok {
		t.Fatal("CallError must not be a TaskError")
	}
	if _, ok := tk.(*CallError); ok {
		t.Fatal("TaskError must not be a CallError")
	}
	if IsTask(c) || IsCall(tk) {
		t.Fatal("predicates crossed kinds")
	}
}
